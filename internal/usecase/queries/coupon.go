package queries

import (
	"context"
	"time"

	"coupon-ledger/internal/infra"
	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound = errs.New("coupon not found")
	ErrInvalidCursor  = errs.New("invalid cursor")
)

type CouponReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID, now time.Time) (*CouponView, error)
	FindFirstPage(ctx context.Context, filters CouponFilters, now time.Time, limit int32) ([]*CouponListItem, error)
	FindKeyset(ctx context.Context, filters CouponFilters, now time.Time, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*CouponListItem, error)
}

type CouponQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	List(ctx context.Context, filters CouponFilters, cursor *Cursor, limit int) ([]*CouponListItem, *Cursor, error)
}

type couponQueriesImpl struct {
	store CouponReadStore
	clock clock.Clock
}

func NewCouponQueries(store CouponReadStore, clock clock.Clock) CouponQueries {
	return &couponQueriesImpl{store: store, clock: clock}
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	view, err := q.store.FindByID(ctx, id, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return view, nil
}

// List returns newest-first pages. The status filter matches effective status,
// so "expired" finds coupons past their end date even when stored as active.
func (q *couponQueriesImpl) List(ctx context.Context, filters CouponFilters, cursor *Cursor, limit int) ([]*CouponListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	now := q.clock.Now()

	var rows []*CouponListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindFirstPage(ctx, filters, now, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindKeyset(ctx, filters, now, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
