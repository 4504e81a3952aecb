package repository

import (
	"context"
	"time"

	"coupon-ledger/internal/domain/ledger"
	"coupon-ledger/internal/infra"
	"coupon-ledger/internal/infra/db"
	"coupon-ledger/internal/pkg/pgconv"
	"coupon-ledger/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SendLedgerRepository struct {
	db db.DBTX
}

func NewSendLedgerRepository(dbtx db.DBTX) *SendLedgerRepository {
	return &SendLedgerRepository{db: dbtx}
}

func (r *SendLedgerRepository) HasSend(ctx context.Context, couponID, userID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM coupon_sends WHERE coupon_id = $1 AND user_id = $2
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, couponID, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check existing send", err)
	}
	return exists, nil
}

// Insert appends one send record. The unique index on (coupon_id, user_id)
// is the authority on duplicates; a concurrent insert for the same pair comes
// back as KindDuplicateKey and exactly one row survives.
func (r *SendLedgerRepository) Insert(ctx context.Context, rec *ledger.SendRecord) error {
	const query = `
		INSERT INTO coupon_sends (id, coupon_id, user_id, user_name, user_email, sent_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		rec.ID(), rec.CouponID(), rec.UserID(),
		rec.UserName(), rec.UserEmail(),
		rec.SentAt(), rec.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert send record", err)
	}
	return nil
}

func (r *SendLedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.SendSnapshot, error) {
	const query = `
		SELECT id, coupon_id, user_id, sent_at, used_at, status
		FROM coupon_sends
		WHERE id = $1`

	var (
		s      commands.SendSnapshot
		usedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CouponID, &s.UserID, &s.SentAt, &usedAt, &s.Status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("send record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find send record by ID", err)
	}
	s.UsedAt = pgconv.TimePtrFromPgtype(usedAt)
	return &s, nil
}

// MarkUsed flips a record from sent to used only if it is still sent. The
// returned bool is false when another caller won the race or the record does
// not exist; the command layer decides which of those it is.
func (r *SendLedgerRepository) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) (bool, error) {
	const query = `
		UPDATE coupon_sends
		SET status = 'used', used_at = $2
		WHERE id = $1 AND status = 'sent'`

	tag, err := r.db.Exec(ctx, query, id, usedAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark send record used", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *SendLedgerRepository) CountByCoupon(ctx context.Context, couponID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM coupon_sends WHERE coupon_id = $1`, couponID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count sends", err)
	}
	return count, nil
}
