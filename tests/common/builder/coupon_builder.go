//go:build unit || e2e

package builder

import (
	"context"
	"testing"
	"time"

	domcoupon "coupon-ledger/internal/domain/coupon"
	reqdto "coupon-ledger/internal/handler/dto/request"
	"coupon-ledger/internal/usecase/commands"
	"coupon-ledger/internal/usecase/queries"
	"coupon-ledger/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type CouponBuilder struct {
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

func NewCouponBuilder() *CouponBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &CouponBuilder{
		ID:            uuid.New(),
		Code:          "WELCOME10",
		Name:          "Welcome 10% Off",
		Description:   "10% off for new members",
		Brand:         "Acme",
		DiscountType:  domcoupon.DiscountPercentage.String(),
		DiscountValue: 10,
		MinAmount:     0,
		MaxDiscount:   500,
		StartDate:     now.Add(-24 * time.Hour),
		EndDate:       now.Add(30 * 24 * time.Hour),
		UsageLimit:    0,
		Status:        domcoupon.StatusActive.String(),
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.NewCoupon(
		b.ID,
		b.Code,
		b.Name, b.Description, b.Brand,
		b.DiscountType,
		b.DiscountValue, b.MinAmount, b.MaxDiscount,
		b.StartDate, b.EndDate,
		b.UsageLimit,
		b.Status,
	)
}

func (b *CouponBuilder) BuildSnapshot() *commands.CouponSnapshot {
	return &commands.CouponSnapshot{
		ID:            b.ID,
		Code:          b.Code,
		Name:          b.Name,
		Description:   b.Description,
		Brand:         b.Brand,
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		MinAmount:     b.MinAmount,
		MaxDiscount:   b.MaxDiscount,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		UsageLimit:    b.UsageLimit,
		Status:        b.Status,
	}
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		Code:          b.Code,
		Name:          b.Name,
		Description:   b.Description,
		Brand:         b.Brand,
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		MinAmount:     b.MinAmount,
		MaxDiscount:   b.MaxDiscount,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		UsageLimit:    b.UsageLimit,
	}
}

func (b *CouponBuilder) BuildViewQuery() *queries.CouponView {
	now := time.Now().UTC()
	effective := b.Status
	if now.After(b.EndDate) {
		effective = domcoupon.StatusExpired.String()
	}
	return &queries.CouponView{
		ID:              b.ID,
		Code:            b.Code,
		Name:            b.Name,
		Description:     b.Description,
		Brand:           b.Brand,
		DiscountType:    b.DiscountType,
		DiscountValue:   b.DiscountValue,
		MinAmount:       b.MinAmount,
		MaxDiscount:     b.MaxDiscount,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		UsageLimit:      b.UsageLimit,
		Status:          b.Status,
		EffectiveStatus: effective,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// InsertDB writes the coupon directly for e2e fixtures.
func (b *CouponBuilder) InsertDB(t *testing.T, db dbtest.DBLike) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO coupons (
			id, code, name, description, brand,
			discount_type, discount_value, min_amount, max_discount,
			start_date, end_date, usage_limit, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		b.ID, b.Code, b.Name, b.Description, b.Brand,
		b.DiscountType, b.DiscountValue, b.MinAmount, b.MaxDiscount,
		b.StartDate, b.EndDate, b.UsageLimit, b.Status,
	)
	require.NoError(t, err)
	return b.ID
}
