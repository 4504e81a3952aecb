//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"coupon-ledger/internal/infra"
	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/usecase/queries"
	"coupon-ledger/tests/common/builder"
	queriesmock "coupon-ledger/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func listItems(n int, newest time.Time) []*queries.CouponListItem {
	items := make([]*queries.CouponListItem, n)
	for i := range items {
		items[i] = &queries.CouponListItem{
			ID:              uuid.New(),
			Code:            "WELCOME10",
			Name:            "Welcome 10% Off",
			Brand:           "Acme",
			DiscountType:    "percentage",
			DiscountValue:   10,
			EndDate:         newest.Add(30 * 24 * time.Hour),
			EffectiveStatus: "active",
			CreatedAt:       newest.Add(-time.Duration(i) * time.Minute),
		}
	}
	return items
}

// =============================================================================
// GetByID Tests
// =============================================================================

func TestCouponQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	couponID := uuid.New()
	now := time.Now().UTC()

	t.Run("success: view returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCouponReadStore(ctrl)
		sut := queries.NewCouponQueries(store, clock.NewMockClock(now))

		expected := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ID = couponID
		}).BuildViewQuery()
		store.EXPECT().FindByID(ctx, couponID, now).Return(expected, nil)

		view, err := sut.GetByID(ctx, couponID)
		require.NoError(t, err)
		assert.Equal(t, expected, view)
	})

	t.Run("error: coupon does not exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCouponReadStore(ctrl)
		sut := queries.NewCouponQueries(store, clock.NewMockClock(now))

		store.EXPECT().FindByID(ctx, couponID, now).
			Return(nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound))

		view, err := sut.GetByID(ctx, couponID)
		require.ErrorIs(t, err, queries.ErrCouponNotFound)
		assert.Nil(t, view)
	})
}

// =============================================================================
// List Pagination Tests
// =============================================================================

func TestCouponQueries_List(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	noFilters := queries.CouponFilters{}

	t.Run("first page full: next cursor points at last returned row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCouponReadStore(ctrl)
		sut := queries.NewCouponQueries(store, clock.NewMockClock(now))

		// Store is asked for one extra row to detect whether more exist.
		rows := listItems(3, now)
		store.EXPECT().FindFirstPage(ctx, noFilters, now, int32(3)).Return(rows, nil)

		items, next, err := sut.List(ctx, noFilters, nil, 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.NotNil(t, next)

		cursorAt, cursorID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, cursorID)
		assert.True(t, rows[1].CreatedAt.Truncate(time.Microsecond).Equal(cursorAt))
	})

	t.Run("last page: no next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCouponReadStore(ctrl)
		sut := queries.NewCouponQueries(store, clock.NewMockClock(now))

		store.EXPECT().FindFirstPage(ctx, noFilters, now, int32(3)).Return(listItems(2, now), nil)

		items, next, err := sut.List(ctx, noFilters, nil, 2)
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Nil(t, next)
	})

	t.Run("cursor present: keyset query continues after it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCouponReadStore(ctrl)
		sut := queries.NewCouponQueries(store, clock.NewMockClock(now))

		lastID := uuid.New()
		lastCreatedAt := now.Add(-time.Hour).Truncate(time.Microsecond)
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(lastCreatedAt, lastID)}

		store.EXPECT().
			FindKeyset(ctx, noFilters, now, gomock.Any(), lastID, int32(21)).
			DoAndReturn(func(_ context.Context, _ queries.CouponFilters, _ time.Time, at time.Time, _ uuid.UUID, _ int32) ([]*queries.CouponListItem, error) {
				assert.True(t, lastCreatedAt.Equal(at))
				return listItems(1, now.Add(-2*time.Hour)), nil
			})

		items, next, err := sut.List(ctx, noFilters, cursor, 0)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
	})

	t.Run("error: cursor is garbage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCouponReadStore(ctrl)
		sut := queries.NewCouponQueries(store, clock.NewMockClock(now))

		_, _, err := sut.List(ctx, noFilters, &queries.Cursor{After: "not-a-cursor"}, 10)
		require.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}
