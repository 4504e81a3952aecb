package coupon

import (
	"time"

	"github.com/google/uuid"
)

// CouponSnapshot is the command-side read model of a campaign, sufficient to
// rebuild the domain entity for validation.
type CouponSnapshot struct {
	ID            uuid.UUID
	Code          string
	Name          string
	Description   string
	Brand         string
	DiscountType  string
	DiscountValue float64
	MinAmount     float64
	MaxDiscount   float64
	StartDate     time.Time
	EndDate       time.Time
	UsageLimit    int32
	Status        string
}

func (s *CouponSnapshot) ToDomain() (*Coupon, error) {
	return NewCoupon(
		s.ID,
		s.Code,
		s.Name, s.Description, s.Brand,
		s.DiscountType,
		s.DiscountValue, s.MinAmount, s.MaxDiscount,
		s.StartDate, s.EndDate,
		s.UsageLimit,
		s.Status,
	)
}
