//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"coupon-ledger/internal/domain/targeting"
	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/usecase/queries"
	queriesmock "coupon-ledger/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTargetQueries_ListCandidates(t *testing.T) {
	ctx := context.Background()
	couponID := uuid.New()
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	covered := targeting.Candidate{
		ID: uuid.New(), Name: "Taro Tanaka", Email: "taro@example.com",
		Status: "active", CreatedAt: now.Add(-10 * 24 * time.Hour),
	}
	fresh := targeting.Candidate{
		ID: uuid.New(), Name: "Hanako Suzuki", Email: "hanako@example.com",
		Status: "active", CreatedAt: now.Add(-5 * 24 * time.Hour),
	}
	veteran := targeting.Candidate{
		ID: uuid.New(), Name: "Jiro Sato", Email: "jiro@example.com",
		Status: "active", CreatedAt: now.Add(-90 * 24 * time.Hour),
	}

	newDeps := func(t *testing.T) (*queriesmock.MockUserReadStore, *queriesmock.MockLedgerQueries, queries.TargetQueries) {
		ctrl := gomock.NewController(t)
		users := queriesmock.NewMockUserReadStore(ctrl)
		ledger := queriesmock.NewMockLedgerQueries(ctrl)
		sut := queries.NewTargetQueries(users, ledger, clock.NewMockClock(now))
		return users, ledger, sut
	}

	t.Run("covered users stay listed with the flag set", func(t *testing.T) {
		users, ledger, sut := newDeps(t)

		users.EXPECT().ListActive(ctx).Return([]targeting.Candidate{covered, fresh}, nil)
		ledger.EXPECT().UsageSummary(ctx, couponID).Return(&queries.UsageSummaryView{
			CouponID:     couponID,
			SentCount:    1,
			RecipientIDs: []uuid.UUID{covered.ID},
		}, nil)

		views, err := sut.ListCandidates(ctx, couponID, "", false)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, covered.ID, views[0].ID)
		assert.True(t, views[0].AlreadyCovered)
		assert.Equal(t, fresh.ID, views[1].ID)
		assert.False(t, views[1].AlreadyCovered)
	})

	t.Run("search narrows before coverage is resolved", func(t *testing.T) {
		users, ledger, sut := newDeps(t)

		users.EXPECT().ListActive(ctx).Return([]targeting.Candidate{covered, fresh, veteran}, nil)
		ledger.EXPECT().UsageSummary(ctx, couponID).Return(&queries.UsageSummaryView{
			CouponID: couponID,
		}, nil)

		views, err := sut.ListCandidates(ctx, couponID, "hanako", false)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, fresh.ID, views[0].ID)
	})

	t.Run("new members only keeps the recent signups", func(t *testing.T) {
		users, ledger, sut := newDeps(t)

		users.EXPECT().ListActive(ctx).Return([]targeting.Candidate{covered, fresh, veteran}, nil)
		ledger.EXPECT().UsageSummary(ctx, couponID).Return(&queries.UsageSummaryView{
			CouponID: couponID,
		}, nil)

		views, err := sut.ListCandidates(ctx, couponID, "", true)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, covered.ID, views[0].ID)
		assert.Equal(t, fresh.ID, views[1].ID)
	})

	t.Run("no matches returns an empty list, not nil", func(t *testing.T) {
		users, ledger, sut := newDeps(t)

		users.EXPECT().ListActive(ctx).Return([]targeting.Candidate{veteran}, nil)
		ledger.EXPECT().UsageSummary(ctx, couponID).Return(&queries.UsageSummaryView{
			CouponID: couponID,
		}, nil)

		views, err := sut.ListCandidates(ctx, couponID, "nobody", false)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}
