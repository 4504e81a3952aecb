package request

import (
	"time"

	domcoupon "coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateCouponRequest struct {
	Code          string    `json:"code" binding:"required,max=20"`
	Name          string    `json:"name" binding:"required,max=200"`
	Description   string    `json:"description" binding:"max=2000"`
	Brand         string    `json:"brand" binding:"max=200"`
	DiscountType  string    `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue float64   `json:"discount_value" binding:"required,gt=0"`
	MinAmount     float64   `json:"min_amount" binding:"gte=0"`
	MaxDiscount   float64   `json:"max_discount" binding:"gte=0"`
	StartDate     time.Time `json:"start_date" binding:"required"`
	EndDate       time.Time `json:"end_date" binding:"required"`
	UsageLimit    int32     `json:"usage_limit" binding:"gte=0"`
}

// New campaigns default to active; deactivation is a later edit.
func (r *CreateCouponRequest) ToDomain(id uuid.UUID) (*domcoupon.Coupon, error) {
	return domcoupon.NewCoupon(
		id,
		r.Code,
		r.Name, r.Description, r.Brand,
		r.DiscountType,
		r.DiscountValue, r.MinAmount, r.MaxDiscount,
		r.StartDate, r.EndDate,
		r.UsageLimit,
		domcoupon.StatusActive.String(),
	)
}

type UpdateCouponRequest struct {
	Code          *string    `json:"code" binding:"omitempty,max=20"`
	Name          *string    `json:"name" binding:"omitempty,max=200"`
	Description   *string    `json:"description" binding:"omitempty,max=2000"`
	Brand         *string    `json:"brand" binding:"omitempty,max=200"`
	DiscountType  *string    `json:"discount_type" binding:"omitempty,oneof=percentage fixed"`
	DiscountValue *float64   `json:"discount_value" binding:"omitempty,gt=0"`
	MinAmount     *float64   `json:"min_amount" binding:"omitempty,gte=0"`
	MaxDiscount   *float64   `json:"max_discount" binding:"omitempty,gte=0"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	UsageLimit    *int32     `json:"usage_limit" binding:"omitempty,gte=0"`
	Status        *string    `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (r *UpdateCouponRequest) ToDomain(existing *domcoupon.CouponSnapshot) (*domcoupon.Coupon, error) {
	return domcoupon.NewCoupon(
		existing.ID,
		patch.Coalesce(r.Code, existing.Code),
		patch.Coalesce(r.Name, existing.Name),
		patch.Coalesce(r.Description, existing.Description),
		patch.Coalesce(r.Brand, existing.Brand),
		patch.Coalesce(r.DiscountType, existing.DiscountType),
		patch.Coalesce(r.DiscountValue, existing.DiscountValue),
		patch.Coalesce(r.MinAmount, existing.MinAmount),
		patch.Coalesce(r.MaxDiscount, existing.MaxDiscount),
		patch.Coalesce(r.StartDate, existing.StartDate),
		patch.Coalesce(r.EndDate, existing.EndDate),
		patch.Coalesce(r.UsageLimit, existing.UsageLimit),
		patch.Coalesce(r.Status, existing.Status),
	)
}
