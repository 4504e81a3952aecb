package commands

import (
	"context"

	"coupon-ledger/internal/domain/ledger"
	"coupon-ledger/internal/infra"
	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSendNotFound    = errs.New("send record not found")
	ErrSendAlreadyUsed = errs.New("send record already used")
)

// RedemptionCommands is the boundary the redemption flow calls when a coupon
// is actually applied to an order. It is the only writer of usedAt.
type RedemptionCommands interface {
	MarkUsed(ctx context.Context, sendID uuid.UUID) error
}

type redemptionCommandsImpl struct {
	sendLedger SendLedger
	clock      clock.Clock
}

func NewRedemptionCommands(sendLedger SendLedger, clock clock.Clock) RedemptionCommands {
	return &redemptionCommandsImpl{sendLedger: sendLedger, clock: clock}
}

// MarkUsed transitions a record sent -> used exactly once. A repeat call
// fails with ErrSendAlreadyUsed rather than silently succeeding, so callers
// can tell "already used" from "just used".
func (r *redemptionCommandsImpl) MarkUsed(ctx context.Context, sendID uuid.UUID) error {
	snapshot, err := r.sendLedger.FindByID(ctx, sendID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSendNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if snapshot.Status == ledger.StatusUsed.String() {
		return ErrSendAlreadyUsed
	}

	changed, err := r.sendLedger.MarkUsed(ctx, sendID, r.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !changed {
		// Lost the race against another redemption of the same record.
		return ErrSendAlreadyUsed
	}
	return nil
}
