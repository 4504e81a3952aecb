//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domcoupon "coupon-ledger/internal/domain/coupon"
	reqdto "coupon-ledger/internal/handler/dto/request"
	"coupon-ledger/internal/infra"
	"coupon-ledger/internal/usecase/commands"
	"coupon-ledger/tests/common/builder"
	commandsmock "coupon-ledger/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Coupon Tests
// =============================================================================

func TestCouponCommands_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		mutate        func(*builder.CouponBuilder)
		setupMock     func(*commandsmock.MockCouponRepository, uuid.UUID)
		expectedError error
	}{
		{
			name: "success: coupon created",
			setupMock: func(mock *commandsmock.MockCouponRepository, id uuid.UUID) {
				mock.EXPECT().Create(ctx, gomock.Any()).Return(id, nil)
			},
		},
		{
			name: "error: code already taken",
			setupMock: func(mock *commandsmock.MockCouponRepository, id uuid.UUID) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().Create(ctx, gomock.Any()).
					Return(uuid.Nil, infra.WrapRepoErr("failed to create coupon", dup))
			},
			expectedError: commands.ErrDuplicateCouponCode,
		},
		{
			name: "error: end date before start date",
			mutate: func(b *builder.CouponBuilder) {
				b.StartDate = time.Now().UTC()
				b.EndDate = time.Now().UTC().Add(-time.Hour)
			},
			expectedError: commands.ErrCouponValidation,
		},
		{
			name: "error: discount value out of range",
			mutate: func(b *builder.CouponBuilder) {
				b.DiscountType = domcoupon.DiscountPercentage.String()
				b.DiscountValue = 150
			},
			expectedError: commands.ErrCouponValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := commandsmock.NewMockCouponRepository(ctrl)
			sut := commands.NewCouponCommands(mockRepo)

			b := builder.NewCouponBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			if tc.setupMock != nil {
				tc.setupMock(mockRepo, b.ID)
			}

			id, err := sut.Create(ctx, b.BuildCreateRequestDTO())

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Equal(t, uuid.Nil, id)
			} else {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, id)
			}
		})
	}
}

// =============================================================================
// Update Coupon Tests
// =============================================================================

func TestCouponCommands_Update(t *testing.T) {
	ctx := context.Background()
	couponID := uuid.New()

	newName := "Welcome 20% Off"
	badValue := float64(-5)

	t.Run("success: name patched, untouched fields survive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := commandsmock.NewMockCouponRepository(ctrl)
		sut := commands.NewCouponCommands(mockRepo)

		snapshot := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ID = couponID
		}).BuildSnapshot()

		mockRepo.EXPECT().FindByID(ctx, couponID).Return(snapshot, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c *domcoupon.Coupon) error {
				assert.Equal(t, newName, c.Name())
				assert.Equal(t, snapshot.Code, c.Code().String())
				return nil
			})

		err := sut.Update(ctx, couponID, reqdto.UpdateCouponRequest{Name: &newName})
		require.NoError(t, err)
	})

	t.Run("error: coupon does not exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := commandsmock.NewMockCouponRepository(ctrl)
		sut := commands.NewCouponCommands(mockRepo)

		mockRepo.EXPECT().FindByID(ctx, couponID).
			Return(nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound))

		err := sut.Update(ctx, couponID, reqdto.UpdateCouponRequest{Name: &newName})
		require.ErrorIs(t, err, commands.ErrCouponNotFound)
	})

	t.Run("error: patched value fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := commandsmock.NewMockCouponRepository(ctrl)
		sut := commands.NewCouponCommands(mockRepo)

		snapshot := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ID = couponID
		}).BuildSnapshot()
		mockRepo.EXPECT().FindByID(ctx, couponID).Return(snapshot, nil)

		err := sut.Update(ctx, couponID, reqdto.UpdateCouponRequest{DiscountValue: &badValue})
		require.ErrorIs(t, err, commands.ErrCouponValidation)
	})

	t.Run("error: patched code collides with another coupon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := commandsmock.NewMockCouponRepository(ctrl)
		sut := commands.NewCouponCommands(mockRepo)

		snapshot := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ID = couponID
		}).BuildSnapshot()
		taken := "SUMMER25"

		mockRepo.EXPECT().FindByID(ctx, couponID).Return(snapshot, nil)
		dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
		mockRepo.EXPECT().Update(ctx, gomock.Any()).
			Return(infra.WrapRepoErr("failed to update coupon", dup))

		err := sut.Update(ctx, couponID, reqdto.UpdateCouponRequest{Code: &taken})
		require.ErrorIs(t, err, commands.ErrDuplicateCouponCode)
	})
}

// =============================================================================
// Delete Coupon Tests
// =============================================================================

func TestCouponCommands_Delete(t *testing.T) {
	ctx := context.Background()
	couponID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*commandsmock.MockCouponRepository)
		expectedError error
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: coupon without sends deleted",
			setupMock: func(mock *commandsmock.MockCouponRepository) {
				mock.EXPECT().Delete(ctx, couponID).Return(nil)
			},
		},
		{
			name: "error: coupon does not exist",
			setupMock: func(mock *commandsmock.MockCouponRepository) {
				mock.EXPECT().Delete(ctx, couponID).
					Return(infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound))
			},
			expectedError: commands.ErrCouponNotFound,
		},
		{
			name: "error: ledger still references the coupon",
			setupMock: func(mock *commandsmock.MockCouponRepository) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().Delete(ctx, couponID).
					Return(infra.WrapRepoErr("failed to delete coupon", fk))
			},
			expectedError: commands.ErrCouponInUse,
		},
		{
			name: "error: storage failure passes through",
			setupMock: func(mock *commandsmock.MockCouponRepository) {
				mock.EXPECT().Delete(ctx, couponID).
					Return(infra.WrapRepoErr("delete failed", errors.New("connection reset")))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := commandsmock.NewMockCouponRepository(ctrl)
			tc.setupMock(mockRepo)
			sut := commands.NewCouponCommands(mockRepo)

			err := sut.Delete(ctx, couponID)

			switch {
			case tc.expectedError != nil:
				require.ErrorIs(t, err, tc.expectedError)
			case tc.expectKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			default:
				require.NoError(t, err)
			}
		})
	}
}
