package queries

import (
	"context"

	"coupon-ledger/internal/domain/targeting"
	"coupon-ledger/internal/pkg/clock"

	"github.com/google/uuid"
)

// UserReadStore is the boundary to the external user directory. It is
// strictly read-only.
type UserReadStore interface {
	ListActive(ctx context.Context) ([]targeting.Candidate, error)
}

// TargetQueries composes the pure targeting filter with the reconciliation
// reader. Users already holding the coupon remain in the result, flagged, so
// the console shows them disabled rather than silently removed.
type TargetQueries interface {
	ListCandidates(ctx context.Context, couponID uuid.UUID, searchText string, newMembersOnly bool) ([]*TargetCandidateView, error)
}

type targetQueriesImpl struct {
	users  UserReadStore
	ledger LedgerQueries
	clock  clock.Clock
}

func NewTargetQueries(users UserReadStore, ledger LedgerQueries, clock clock.Clock) TargetQueries {
	return &targetQueriesImpl{users: users, ledger: ledger, clock: clock}
}

func (q *targetQueriesImpl) ListCandidates(ctx context.Context, couponID uuid.UUID, searchText string, newMembersOnly bool) ([]*TargetCandidateView, error) {
	users, err := q.users.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	selected := targeting.SelectTargets(users, searchText, newMembersOnly, q.clock.Now())

	summary, err := q.ledger.UsageSummary(ctx, couponID)
	if err != nil {
		return nil, err
	}
	covered := make(map[uuid.UUID]struct{}, len(summary.RecipientIDs))
	for _, id := range summary.RecipientIDs {
		covered[id] = struct{}{}
	}

	views := make([]*TargetCandidateView, len(selected))
	for i, c := range selected {
		_, alreadyCovered := covered[c.ID]
		views[i] = &TargetCandidateView{
			ID:             c.ID,
			Name:           c.Name,
			Email:          c.Email,
			CreatedAt:      c.CreatedAt,
			AlreadyCovered: alreadyCovered,
		}
	}
	return views, nil
}
