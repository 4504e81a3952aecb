package commands

import (
	"context"
	"log/slog"

	"coupon-ledger/internal/domain/ledger"
	"coupon-ledger/internal/domain/targeting"
	"coupon-ledger/internal/infra"
	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCouponNotDistributable  = errs.New("coupon is not active")
	ErrEmptyTarget             = errs.New("target user set is empty")
	ErrUnknownTargetUser       = errs.New("target user not found in directory")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// DistributionResult is the per-id breakdown of one distribute call. Every
// target id lands in exactly one bucket; the call as a whole never partially
// fails once preconditions pass.
type DistributionResult struct {
	NewlySent            []uuid.UUID
	AlreadySent          []uuid.UUID
	RejectedLimitReached []uuid.UUID
	TotalSentCount       int64
}

type DistributionCommands interface {
	Distribute(ctx context.Context, couponID uuid.UUID, targetUserIDs []uuid.UUID) (*DistributionResult, error)
}

type distributionCommandsImpl struct {
	couponRepo CouponRepository
	sendLedger SendLedger
	directory  UserDirectory
	clock      clock.Clock
}

func NewDistributionCommands(
	couponRepo CouponRepository,
	sendLedger SendLedger,
	directory UserDirectory,
	clock clock.Clock,
) DistributionCommands {
	return &distributionCommandsImpl{
		couponRepo: couponRepo,
		sendLedger: sendLedger,
		directory:  directory,
		clock:      clock,
	}
}

// Distribute issues the coupon to each target at most once. The uniqueness
// constraint on (coupon_id, user_id) resolves races at the storage layer; a
// conflict from a concurrent call is absorbed into AlreadySent, never
// surfaced. The whole call is safe to retry: already-covered ids are simply
// re-reported.
func (d *distributionCommandsImpl) Distribute(ctx context.Context, couponID uuid.UUID, targetUserIDs []uuid.UUID) (*DistributionResult, error) {
	if len(targetUserIDs) == 0 {
		return nil, ErrEmptyTarget
	}

	now := d.clock.Now()

	snapshot, err := d.couponRepo.FindByID(ctx, couponID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	campaign, err := snapshot.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrCouponValidation)
	}
	if !campaign.IsDistributable(now) {
		return nil, ErrCouponNotDistributable
	}

	targets, err := d.resolveTargets(ctx, targetUserIDs)
	if err != nil {
		return nil, err
	}

	result := &DistributionResult{
		NewlySent:            []uuid.UUID{},
		AlreadySent:          []uuid.UUID{},
		RejectedLimitReached: []uuid.UUID{},
	}

	var sentCount int64
	if campaign.HasUsageLimit() {
		sentCount, err = d.sendLedger.CountByCoupon(ctx, couponID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	admitted := int64(0)
	for _, target := range targets {
		has, err := d.sendLedger.HasSend(ctx, couponID, target.ID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if has {
			result.AlreadySent = append(result.AlreadySent, target.ID)
			continue
		}

		if campaign.HasUsageLimit() && sentCount+admitted >= int64(campaign.UsageLimit()) {
			result.RejectedLimitReached = append(result.RejectedLimitReached, target.ID)
			continue
		}

		record, err := ledger.NewSendRecord(couponID, target.ID, target.Name, target.Email, now)
		if err != nil {
			return nil, errs.Mark(err, ErrCouponValidation)
		}

		if err := d.sendLedger.Insert(ctx, record); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				// A concurrent distribution won the race for this pair.
				slog.Debug("send record already exists, absorbing conflict",
					"coupon_id", couponID, "user_id", target.ID)
				result.AlreadySent = append(result.AlreadySent, target.ID)
				continue
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result.NewlySent = append(result.NewlySent, target.ID)
		admitted++
	}

	total, err := d.sendLedger.CountByCoupon(ctx, couponID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	result.TotalSentCount = total

	return result, nil
}

// resolveTargets dedupes the incoming ids (order preserved) and snapshots
// recipient identity from the directory. Unknown ids fail the whole call
// before any write happens.
func (d *distributionCommandsImpl) resolveTargets(ctx context.Context, targetUserIDs []uuid.UUID) ([]targeting.Candidate, error) {
	seen := make(map[uuid.UUID]struct{}, len(targetUserIDs))
	unique := make([]uuid.UUID, 0, len(targetUserIDs))
	for _, id := range targetUserIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	users, err := d.directory.FindByIDs(ctx, unique)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	byID := make(map[uuid.UUID]targeting.Candidate, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	targets := make([]targeting.Candidate, 0, len(unique))
	for _, id := range unique {
		u, ok := byID[id]
		if !ok {
			return nil, ErrUnknownTargetUser
		}
		targets = append(targets, u)
	}
	return targets, nil
}
