package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode     = errors.New("invalid coupon code format")
	ErrInvalidDiscountType   = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountValue  = errors.New("discount value must be positive")
	ErrNegativeMinAmount     = errors.New("minimum amount cannot be negative")
	ErrNegativeMaxDiscount   = errors.New("maximum discount cannot be negative")
	ErrInvalidStatus         = errors.New("status must be active or inactive")
	ErrStatusNotAssignable   = errors.New("expired status is computed, not assignable")
	ErrNegativeUsageLimit    = errors.New("usage limit cannot be negative")
	ErrInvalidValidityWindow = errors.New("end date must not be before start date")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func NewDiscountType(s string) (DiscountType, error) {
	switch DiscountType(s) {
	case DiscountPercentage, DiscountFixed:
		return DiscountType(s), nil
	default:
		return "", ErrInvalidDiscountType
	}
}

func (t DiscountType) String() string {
	return string(t)
}

// Discount captures the discount rule of a campaign. MinAmount and MaxDiscount
// are redemption-time caps and carry no behavior here beyond non-negativity.
type Discount struct {
	kind        DiscountType
	value       float64
	minAmount   float64
	maxDiscount float64
}

func NewDiscount(kind string, value, minAmount, maxDiscount float64) (Discount, error) {
	t, err := NewDiscountType(kind)
	if err != nil {
		return Discount{}, err
	}
	if value <= 0 {
		return Discount{}, ErrInvalidDiscountValue
	}
	if minAmount < 0 {
		return Discount{}, ErrNegativeMinAmount
	}
	if maxDiscount < 0 {
		return Discount{}, ErrNegativeMaxDiscount
	}
	return Discount{kind: t, value: value, minAmount: minAmount, maxDiscount: maxDiscount}, nil
}

func (d Discount) Type() DiscountType   { return d.kind }
func (d Discount) Value() float64       { return d.value }
func (d Discount) MinAmount() float64   { return d.minAmount }
func (d Discount) MaxDiscount() float64 { return d.maxDiscount }

func (d Discount) IsPercentage() bool {
	return d.kind == DiscountPercentage
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	// StatusExpired is derived from the validity window and never stored.
	StatusExpired Status = "expired"
)

// NewStatus parses an administrator-assignable status. Expired is rejected
// because it is time-driven, not operator-driven.
func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusInactive:
		return Status(s), nil
	case StatusExpired:
		return "", ErrStatusNotAssignable
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}
