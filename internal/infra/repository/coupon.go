package repository

import (
	"context"

	"coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/infra"
	"coupon-ledger/internal/infra/db"
	"coupon-ledger/internal/pkg/pgconv"
	"coupon-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(dbtx db.DBTX) *CouponRepository {
	return &CouponRepository{db: dbtx}
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) (uuid.UUID, error) {
	const query = `
		INSERT INTO coupons (
			id, code, name, description, brand,
			discount_type, discount_value, min_amount, max_discount,
			start_date, end_date, usage_limit, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		c.ID(), c.Code().String(), c.Name(), c.Description(), c.Brand(),
		c.Discount().Type().String(), c.Discount().Value(), c.Discount().MinAmount(), c.Discount().MaxDiscount(),
		c.StartDate(), c.EndDate(), c.UsageLimit(), c.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create coupon", err)
	}
	return id, nil
}

func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	const query = `
		UPDATE coupons SET
			code = $2, name = $3, description = $4, brand = $5,
			discount_type = $6, discount_value = $7, min_amount = $8, max_discount = $9,
			start_date = $10, end_date = $11, usage_limit = $12, status = $13,
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		c.ID(), c.Code().String(), c.Name(), c.Description(), c.Brand(),
		c.Discount().Type().String(), c.Discount().Value(), c.Discount().MinAmount(), c.Discount().MaxDiscount(),
		c.StartDate(), c.EndDate(), c.UsageLimit(), c.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete relies on the RESTRICT foreign key from coupon_sends: a referenced
// campaign fails with KindForeignKeyViolated instead of orphaning history.
func (r *CouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.CouponSnapshot, error) {
	const query = `
		SELECT id, code, name, description, brand,
		       discount_type, discount_value, min_amount, max_discount,
		       start_date, end_date, usage_limit, status
		FROM coupons
		WHERE id = $1`

	var s commands.CouponSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Code, &s.Name, &s.Description, &s.Brand,
		&s.DiscountType, &s.DiscountValue, &s.MinAmount, &s.MaxDiscount,
		&s.StartDate, &s.EndDate, &s.UsageLimit, &s.Status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return &s, nil
}
