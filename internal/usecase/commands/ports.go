package commands

import (
	"context"
	"time"

	"coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/domain/ledger"
	"coupon-ledger/internal/domain/targeting"

	"github.com/google/uuid"
)

// CouponSnapshot is the command-side read model of a campaign, sufficient to
// rebuild the domain entity for validation. It lives in the coupon domain
// package so the request DTOs can reference it without importing commands.
type CouponSnapshot = coupon.CouponSnapshot

// SendSnapshot is the command-side read model of one ledger record.
type SendSnapshot struct {
	ID       uuid.UUID
	CouponID uuid.UUID
	UserID   uuid.UUID
	SentAt   time.Time
	UsedAt   *time.Time
	Status   string
}

type CouponRepository interface {
	Create(ctx context.Context, c *coupon.Coupon) (uuid.UUID, error)
	Update(ctx context.Context, c *coupon.Coupon) error
	// Delete fails with KindForeignKeyViolated while send records reference
	// the coupon; the ledger is never silently orphaned.
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*CouponSnapshot, error)
}

// SendLedger is the append-mostly store of send records. Insert relies on the
// storage-level unique constraint on (coupon_id, user_id); a duplicate
// surfaces as KindDuplicateKey, which callers treat as a routine outcome.
type SendLedger interface {
	HasSend(ctx context.Context, couponID, userID uuid.UUID) (bool, error)
	Insert(ctx context.Context, rec *ledger.SendRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*SendSnapshot, error)
	// MarkUsed performs the sent -> used transition conditionally and reports
	// whether a row actually changed, so a lost race is distinguishable.
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) (bool, error)
	CountByCoupon(ctx context.Context, couponID uuid.UUID) (int64, error)
}

// UserDirectory is the read-only boundary to the platform's user store, used
// to snapshot recipient identity at send time.
type UserDirectory interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]targeting.Candidate, error)
}
