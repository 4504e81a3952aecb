package commands

import (
	"context"

	reqdto "coupon-ledger/internal/handler/dto/request"
	"coupon-ledger/internal/infra"
	"coupon-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound      = errs.New("coupon not found")
	ErrDuplicateCouponCode = errs.New("coupon code already exists")
	ErrCouponValidation    = errs.New("coupon validation error")
	ErrCouponInUse         = errs.New("coupon has send records and cannot be deleted")
)

type CouponCommands interface {
	Create(ctx context.Context, req reqdto.CreateCouponRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCouponRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type couponCommandsImpl struct {
	couponRepo CouponRepository
}

func NewCouponCommands(couponRepo CouponRepository) CouponCommands {
	return &couponCommandsImpl{couponRepo: couponRepo}
}

func (c *couponCommandsImpl) Create(ctx context.Context, req reqdto.CreateCouponRequest) (uuid.UUID, error) {
	entity, err := req.ToDomain(uuid.New())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrCouponValidation)
	}

	id, err := c.couponRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateCouponCode
		}
		return uuid.Nil, err
	}
	return id, nil
}

// Update validates the patched campaign as a whole before persisting. Send
// records are never touched by an edit.
func (c *couponCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCouponRequest) error {
	existing, err := c.couponRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return err
	}

	entity, err := req.ToDomain(existing)
	if err != nil {
		return errs.Mark(err, ErrCouponValidation)
	}

	if err := c.couponRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrDuplicateCouponCode
		}
		return err
	}
	return nil
}

// Delete refuses to orphan ledger history: the FK from send records is
// RESTRICT, and the violation maps to ErrCouponInUse.
func (c *couponCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.couponRepo.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrCouponNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrCouponInUse
		default:
			return err
		}
	}
	return nil
}
