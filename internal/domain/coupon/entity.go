package coupon

import (
	"time"

	"github.com/google/uuid"
)

// Coupon is one campaign definition. Usage counts are never part of this
// entity; they are derived from the send ledger at read time.
type Coupon struct {
	id          uuid.UUID
	code        Code
	name        string
	description string
	brand       string
	discount    Discount
	startDate   time.Time
	endDate     time.Time
	usageLimit  int32
	status      Status
}

func NewCoupon(
	id uuid.UUID,
	code string,
	name, description, brand string,
	discountType string,
	discountValue, minAmount, maxDiscount float64,
	startDate, endDate time.Time,
	usageLimit int32,
	status string,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(discountType, discountValue, minAmount, maxDiscount)
	if err != nil {
		return nil, err
	}

	st, err := NewStatus(status)
	if err != nil {
		return nil, err
	}

	if endDate.Before(startDate) {
		return nil, ErrInvalidValidityWindow
	}
	if usageLimit < 0 {
		return nil, ErrNegativeUsageLimit
	}

	return &Coupon{
		id:          id,
		code:        couponCode,
		name:        name,
		description: description,
		brand:       brand,
		discount:    discount,
		startDate:   startDate,
		endDate:     endDate,
		usageLimit:  usageLimit,
		status:      st,
	}, nil
}

// EffectiveStatus is the status callers must consult for "usable right now".
// A coupon past its end date reads as expired regardless of the stored status.
func (c *Coupon) EffectiveStatus(now time.Time) Status {
	if now.After(c.endDate) {
		return StatusExpired
	}
	return c.status
}

func (c *Coupon) IsDistributable(now time.Time) bool {
	return c.EffectiveStatus(now) == StatusActive
}

// HasUsageLimit reports whether the campaign caps how many sends it admits.
// A zero limit means unlimited.
func (c *Coupon) HasUsageLimit() bool {
	return c.usageLimit > 0
}

func (c *Coupon) ID() uuid.UUID        { return c.id }
func (c *Coupon) Code() Code           { return c.code }
func (c *Coupon) Name() string         { return c.name }
func (c *Coupon) Description() string  { return c.description }
func (c *Coupon) Brand() string        { return c.brand }
func (c *Coupon) Discount() Discount   { return c.discount }
func (c *Coupon) StartDate() time.Time { return c.startDate }
func (c *Coupon) EndDate() time.Time   { return c.endDate }
func (c *Coupon) UsageLimit() int32    { return c.usageLimit }
func (c *Coupon) Status() Status       { return c.status }
