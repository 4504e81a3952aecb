//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domcoupon "coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/domain/targeting"
	"coupon-ledger/internal/infra"
	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/usecase/commands"
	"coupon-ledger/tests/common/builder"
	commandsmock "coupon-ledger/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type distributionDeps struct {
	couponRepo *commandsmock.MockCouponRepository
	sendLedger *commandsmock.MockSendLedger
	directory  *commandsmock.MockUserDirectory
	clock      *clock.MockClock
	sut        commands.DistributionCommands
}

func newDistributionDeps(t *testing.T) *distributionDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &distributionDeps{
		couponRepo: commandsmock.NewMockCouponRepository(ctrl),
		sendLedger: commandsmock.NewMockSendLedger(ctrl),
		directory:  commandsmock.NewMockUserDirectory(ctrl),
		clock:      clock.NewMockClock(time.Now().UTC()),
	}
	d.sut = commands.NewDistributionCommands(d.couponRepo, d.sendLedger, d.directory, d.clock)
	return d
}

func candidateFor(id uuid.UUID) targeting.Candidate {
	return targeting.Candidate{
		ID:        id,
		Name:      "Taro Tanaka",
		Email:     "taro@example.com",
		Status:    "active",
		CreatedAt: time.Now().UTC().Add(-48 * time.Hour),
	}
}

func duplicateKeyErr() error {
	pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	return infra.WrapRepoErr("failed to insert send record", pgErr)
}

// =============================================================================
// Precondition Tests
// =============================================================================

func TestDistributionCommands_Distribute_EmptyTargets(t *testing.T) {
	ctx := context.Background()
	deps := newDistributionDeps(t)

	result, err := deps.sut.Distribute(ctx, uuid.New(), []uuid.UUID{})

	require.ErrorIs(t, err, commands.ErrEmptyTarget)
	assert.Nil(t, result)
}

func TestDistributionCommands_Distribute_CampaignPreconditions(t *testing.T) {
	ctx := context.Background()
	couponID := uuid.New()
	targetID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*distributionDeps)
		expectedError error
	}{
		{
			name: "error: coupon does not exist",
			setupMock: func(d *distributionDeps) {
				d.couponRepo.EXPECT().FindByID(ctx, couponID).
					Return(nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound))
			},
			expectedError: commands.ErrCouponNotFound,
		},
		{
			name: "error: coupon is inactive",
			setupMock: func(d *distributionDeps) {
				snapshot := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
					b.ID = couponID
					b.Status = domcoupon.StatusInactive.String()
				}).BuildSnapshot()
				d.couponRepo.EXPECT().FindByID(ctx, couponID).Return(snapshot, nil)
			},
			expectedError: commands.ErrCouponNotDistributable,
		},
		{
			name: "error: coupon is past its end date",
			setupMock: func(d *distributionDeps) {
				snapshot := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
					b.ID = couponID
					b.StartDate = time.Now().UTC().Add(-60 * 24 * time.Hour)
					b.EndDate = time.Now().UTC().Add(-24 * time.Hour)
				}).BuildSnapshot()
				d.couponRepo.EXPECT().FindByID(ctx, couponID).Return(snapshot, nil)
			},
			expectedError: commands.ErrCouponNotDistributable,
		},
		{
			name: "error: lookup fails with storage error",
			setupMock: func(d *distributionDeps) {
				d.couponRepo.EXPECT().FindByID(ctx, couponID).
					Return(nil, infra.WrapRepoErr("query failed", errors.New("connection reset")))
			},
			expectedError: commands.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps := newDistributionDeps(t)
			tc.setupMock(deps)

			result, err := deps.sut.Distribute(ctx, couponID, []uuid.UUID{targetID})

			require.ErrorIs(t, err, tc.expectedError)
			assert.Nil(t, result)
		})
	}
}

func TestDistributionCommands_Distribute_UnknownTargetFailsBeforeWrites(t *testing.T) {
	ctx := context.Background()
	couponID := uuid.New()
	knownID := uuid.New()
	unknownID := uuid.New()

	deps := newDistributionDeps(t)
	snapshot := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
		b.ID = couponID
	}).BuildSnapshot()

	deps.couponRepo.EXPECT().FindByID(ctx, couponID).Return(snapshot, nil)
	deps.directory.EXPECT().FindByIDs(ctx, []uuid.UUID{knownID, unknownID}).
		Return([]targeting.Candidate{candidateFor(knownID)}, nil)
	// No Insert expectation: resolving the whole target set fails first.

	result, err := deps.sut.Distribute(ctx, couponID, []uuid.UUID{knownID, unknownID})

	require.ErrorIs(t, err, commands.ErrUnknownTargetUser)
	assert.Nil(t, result)
}

// =============================================================================
// Bucketed Outcome Tests
// =============================================================================

func TestDistributionCommands_Distribute_NewTargetsAreSent(t *testing.T) {
	ctx := context.Background()
	couponID := uuid.New()
	userA := uuid.New()
	userB := uuid.New()

	deps := newDistributionDeps(t)
	snapshot := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
		b.ID = couponID
	}).BuildSnapshot()

	deps.couponRepo.EXPECT().FindByID(ctx, couponID).Return(snapshot, nil)
	deps.directory.EXPECT().FindByIDs(ctx, []uuid.UUID{userA, userB}).
		Return([]targeting.Candidate{candidateFor(userA), candidateFor(userB)}, nil)
	deps.sendLedger.EXPECT().HasSend(ctx, couponID, userA).Return(false, nil)
	deps.sendLedger.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	deps.sendLedger.EXPECT().HasSend(ctx, couponID, userB).Return(false, nil)
	deps.sendLedger.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	deps.sendLedger.EXPECT().CountByCoupon(ctx, couponID).Return(int64(2), nil)

	result, err := deps.sut.Distribute(ctx, couponID, []uuid.UUID{userA, userB})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{userA, userB}, result.NewlySent)
	assert.Empty(t, result.AlreadySent)
	assert.Empty(t, result.RejectedLimitReached)
	assert.Equal(t, int64(2), result.TotalSentCount)
}

func TestDistributionCommands_Distribute_CoveredTargetsAreReReported(t *testing.T) {
	ctx := context.Background()
	couponID := uuid.New()
	covered := uuid.New()
	fresh := uuid.New()

	deps := newDistributionDeps(t)
	snapshot := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
		b.ID = couponID
	}).BuildSnapshot()

	deps.couponRepo.EXPECT().FindByID(ctx, couponID).Return(snapshot, nil)
	deps.directory.EXPECT().FindByIDs(ctx, []uuid.UUID{covered, fresh}).
		Return([]targeting.Candidate{candidateFor(covered), candidateFor(fresh)}, nil)
	deps.sendLedger.EXPECT().HasSend(ctx, couponID, covered).Return(true, nil)
	deps.sendLedger.EXPECT().HasSend(ctx, couponID, fresh).Return(false, nil)
	deps.sendLedger.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	deps.sendLedger.EXPECT().CountByCoupon(ctx, couponID).Return(int64(2), nil)

	result, err := deps.sut.Distribute(ctx, couponID, []uuid.UUID{covered, fresh})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{fresh}, result.NewlySent)
	assert.Equal(t, []uuid.UUID{covered}, result.AlreadySent)
	assert.Empty(t, result.RejectedLimitReached)
	assert.Equal(t, int64(2), result.TotalSentCount)
}

func TestDistributionCommands_Distribute_InsertConflictAbsorbedAsAlreadySent(t *testing.T) {
	ctx := context.Background()
	couponID := uuid.New()
	racedUser := uuid.New()

	deps := newDistributionDeps(t)
	snapshot := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
		b.ID = couponID
	}).BuildSnapshot()

	deps.couponRepo.EXPECT().FindByID(ctx, couponID).Return(snapshot, nil)
	deps.directory.EXPECT().FindByIDs(ctx, []uuid.UUID{racedUser}).
		Return([]targeting.Candidate{candidateFor(racedUser)}, nil)
	// The existence check raced a concurrent call; the unique constraint wins.
	deps.sendLedger.EXPECT().HasSend(ctx, couponID, racedUser).Return(false, nil)
	deps.sendLedger.EXPECT().Insert(ctx, gomock.Any()).Return(duplicateKeyErr())
	deps.sendLedger.EXPECT().CountByCoupon(ctx, couponID).Return(int64(1), nil)

	result, err := deps.sut.Distribute(ctx, couponID, []uuid.UUID{racedUser})

	require.NoError(t, err)
	assert.Empty(t, result.NewlySent)
	assert.Equal(t, []uuid.UUID{racedUser}, result.AlreadySent)
	assert.Equal(t, int64(1), result.TotalSentCount)
}

func TestDistributionCommands_Distribute_UsageLimitRejectsOverflow(t *testing.T) {
	ctx := context.Background()
	couponID := uuid.New()
	first := uuid.New()
	second := uuid.New()
	third := uuid.New()

	deps := newDistributionDeps(t)
	snapshot := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
		b.ID = couponID
		b.UsageLimit = 2
	}).BuildSnapshot()

	deps.couponRepo.EXPECT().FindByID(ctx, couponID).Return(snapshot, nil)
	deps.directory.EXPECT().FindByIDs(ctx, []uuid.UUID{first, second, third}).
		Return([]targeting.Candidate{candidateFor(first), candidateFor(second), candidateFor(third)}, nil)
	// One send already on the ledger, so only one slot remains.
	deps.sendLedger.EXPECT().CountByCoupon(ctx, couponID).Return(int64(1), nil)
	deps.sendLedger.EXPECT().HasSend(ctx, couponID, first).Return(false, nil)
	deps.sendLedger.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	deps.sendLedger.EXPECT().HasSend(ctx, couponID, second).Return(false, nil)
	deps.sendLedger.EXPECT().HasSend(ctx, couponID, third).Return(false, nil)
	deps.sendLedger.EXPECT().CountByCoupon(ctx, couponID).Return(int64(2), nil)

	result, err := deps.sut.Distribute(ctx, couponID, []uuid.UUID{first, second, third})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first}, result.NewlySent)
	assert.Empty(t, result.AlreadySent)
	assert.Equal(t, []uuid.UUID{second, third}, result.RejectedLimitReached)
	assert.Equal(t, int64(2), result.TotalSentCount)
}

func TestDistributionCommands_Distribute_CoveredTargetDoesNotConsumeLimitSlot(t *testing.T) {
	ctx := context.Background()
	couponID := uuid.New()
	covered := uuid.New()
	fresh := uuid.New()

	deps := newDistributionDeps(t)
	snapshot := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
		b.ID = couponID
		b.UsageLimit = 2
	}).BuildSnapshot()

	deps.couponRepo.EXPECT().FindByID(ctx, couponID).Return(snapshot, nil)
	deps.directory.EXPECT().FindByIDs(ctx, []uuid.UUID{covered, fresh}).
		Return([]targeting.Candidate{candidateFor(covered), candidateFor(fresh)}, nil)
	deps.sendLedger.EXPECT().CountByCoupon(ctx, couponID).Return(int64(1), nil)
	deps.sendLedger.EXPECT().HasSend(ctx, couponID, covered).Return(true, nil)
	deps.sendLedger.EXPECT().HasSend(ctx, couponID, fresh).Return(false, nil)
	deps.sendLedger.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	deps.sendLedger.EXPECT().CountByCoupon(ctx, couponID).Return(int64(2), nil)

	result, err := deps.sut.Distribute(ctx, couponID, []uuid.UUID{covered, fresh})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{fresh}, result.NewlySent)
	assert.Equal(t, []uuid.UUID{covered}, result.AlreadySent)
	assert.Empty(t, result.RejectedLimitReached)
}

func TestDistributionCommands_Distribute_DedupesRequestedIDs(t *testing.T) {
	ctx := context.Background()
	couponID := uuid.New()
	userID := uuid.New()

	deps := newDistributionDeps(t)
	snapshot := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
		b.ID = couponID
	}).BuildSnapshot()

	deps.couponRepo.EXPECT().FindByID(ctx, couponID).Return(snapshot, nil)
	deps.directory.EXPECT().FindByIDs(ctx, []uuid.UUID{userID}).
		Return([]targeting.Candidate{candidateFor(userID)}, nil)
	deps.sendLedger.EXPECT().HasSend(ctx, couponID, userID).Return(false, nil)
	deps.sendLedger.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	deps.sendLedger.EXPECT().CountByCoupon(ctx, couponID).Return(int64(1), nil)

	result, err := deps.sut.Distribute(ctx, couponID, []uuid.UUID{userID, userID, userID})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{userID}, result.NewlySent)
	assert.Equal(t, int64(1), result.TotalSentCount)
}

func TestDistributionCommands_Distribute_RetryReportsSameCoverage(t *testing.T) {
	ctx := context.Background()
	couponID := uuid.New()
	userID := uuid.New()

	deps := newDistributionDeps(t)
	snapshot := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
		b.ID = couponID
	}).BuildSnapshot()

	gomock.InOrder(
		deps.couponRepo.EXPECT().FindByID(ctx, couponID).Return(snapshot, nil),
		deps.directory.EXPECT().FindByIDs(ctx, []uuid.UUID{userID}).
			Return([]targeting.Candidate{candidateFor(userID)}, nil),
		deps.sendLedger.EXPECT().HasSend(ctx, couponID, userID).Return(false, nil),
		deps.sendLedger.EXPECT().Insert(ctx, gomock.Any()).Return(nil),
		deps.sendLedger.EXPECT().CountByCoupon(ctx, couponID).Return(int64(1), nil),

		deps.couponRepo.EXPECT().FindByID(ctx, couponID).Return(snapshot, nil),
		deps.directory.EXPECT().FindByIDs(ctx, []uuid.UUID{userID}).
			Return([]targeting.Candidate{candidateFor(userID)}, nil),
		deps.sendLedger.EXPECT().HasSend(ctx, couponID, userID).Return(true, nil),
		deps.sendLedger.EXPECT().CountByCoupon(ctx, couponID).Return(int64(1), nil),
	)

	first, err := deps.sut.Distribute(ctx, couponID, []uuid.UUID{userID})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{userID}, first.NewlySent)

	retry, err := deps.sut.Distribute(ctx, couponID, []uuid.UUID{userID})
	require.NoError(t, err)
	assert.Empty(t, retry.NewlySent)
	assert.Equal(t, []uuid.UUID{userID}, retry.AlreadySent)
	assert.Equal(t, first.TotalSentCount, retry.TotalSentCount)
}
