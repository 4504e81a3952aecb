package queries

import (
	"context"
	"time"

	"coupon-ledger/internal/infra"
	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSendNotFound = errs.New("send record not found")

type SendReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID, now time.Time) (*SendView, error)
	FindByCouponFirstPage(ctx context.Context, couponID uuid.UUID, now time.Time, limit int32) ([]*SendView, error)
	FindByCouponKeyset(ctx context.Context, couponID uuid.UUID, now time.Time, lastSentAt time.Time, lastID uuid.UUID, limit int32) ([]*SendView, error)
	AggregateUsage(ctx context.Context, couponID uuid.UUID) (*UsageSummaryView, error)
}

// LedgerQueries is the reconciliation reader: every usage count or recipient
// set the service exposes passes through UsageSummary, which aggregates
// ledger rows on each call.
type LedgerQueries interface {
	UsageSummary(ctx context.Context, couponID uuid.UUID) (*UsageSummaryView, error)
	GetSend(ctx context.Context, id uuid.UUID) (*SendView, error)
	ListSends(ctx context.Context, couponID uuid.UUID, cursor *Cursor, limit int) ([]*SendView, *Cursor, error)
}

type ledgerQueriesImpl struct {
	store SendReadStore
	clock clock.Clock
}

func NewLedgerQueries(store SendReadStore, clock clock.Clock) LedgerQueries {
	return &ledgerQueriesImpl{store: store, clock: clock}
}

func (q *ledgerQueriesImpl) UsageSummary(ctx context.Context, couponID uuid.UUID) (*UsageSummaryView, error) {
	return q.store.AggregateUsage(ctx, couponID)
}

func (q *ledgerQueriesImpl) GetSend(ctx context.Context, id uuid.UUID) (*SendView, error) {
	view, err := q.store.FindByID(ctx, id, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSendNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *ledgerQueriesImpl) ListSends(ctx context.Context, couponID uuid.UUID, cursor *Cursor, limit int) ([]*SendView, *Cursor, error) {
	limit = ValidateLimit(limit)
	now := q.clock.Now()

	var rows []*SendView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByCouponFirstPage(ctx, couponID, now, int32(limit+1))
	} else {
		lastSentAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByCouponKeyset(ctx, couponID, now, lastSentAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.SentAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
