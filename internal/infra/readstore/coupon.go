package readstore

import (
	"context"
	"time"

	"coupon-ledger/internal/infra"
	"coupon-ledger/internal/infra/db"
	"coupon-ledger/internal/pkg/pgconv"
	"coupon-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// effective status is computed in SQL so status filters and list ordering see
// the same value the API returns. The expression mirrors
// coupon.Coupon.EffectiveStatus.
const couponEffectiveStatus = `CASE WHEN c.end_date < $1 THEN 'expired' ELSE c.status END`

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

func (s *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID, now time.Time) (*queries.CouponView, error) {
	query := `
		SELECT c.id, c.code, c.name, c.description, c.brand,
		       c.discount_type, c.discount_value, c.min_amount, c.max_discount,
		       c.start_date, c.end_date, c.usage_limit, c.status,
		       ` + couponEffectiveStatus + ` AS effective_status,
		       c.created_at, c.updated_at
		FROM coupons c
		WHERE c.id = $2`

	var v queries.CouponView
	err := s.db.QueryRow(ctx, query, now, id).Scan(
		&v.ID, &v.Code, &v.Name, &v.Description, &v.Brand,
		&v.DiscountType, &v.DiscountValue, &v.MinAmount, &v.MaxDiscount,
		&v.StartDate, &v.EndDate, &v.UsageLimit, &v.Status,
		&v.EffectiveStatus,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon view", err)
	}
	return &v, nil
}

func (s *CouponReadStore) FindFirstPage(ctx context.Context, filters queries.CouponFilters, now time.Time, limit int32) ([]*queries.CouponListItem, error) {
	query := `
		SELECT c.id, c.code, c.name, c.brand,
		       c.discount_type, c.discount_value, c.end_date,
		       ` + couponEffectiveStatus + ` AS effective_status,
		       c.created_at
		FROM coupons c
		WHERE ($2::text IS NULL OR ` + couponEffectiveStatus + ` = $2)
		  AND ($3::text IS NULL OR c.code ILIKE '%' || $3 || '%' OR c.name ILIKE '%' || $3 || '%')
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $4`

	rows, err := s.db.Query(ctx, query, now, filters.Status, filters.SearchText, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()
	return scanCouponListItems(rows)
}

func (s *CouponReadStore) FindKeyset(ctx context.Context, filters queries.CouponFilters, now time.Time, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.CouponListItem, error) {
	query := `
		SELECT c.id, c.code, c.name, c.brand,
		       c.discount_type, c.discount_value, c.end_date,
		       ` + couponEffectiveStatus + ` AS effective_status,
		       c.created_at
		FROM coupons c
		WHERE ($2::text IS NULL OR ` + couponEffectiveStatus + ` = $2)
		  AND ($3::text IS NULL OR c.code ILIKE '%' || $3 || '%' OR c.name ILIKE '%' || $3 || '%')
		  AND (c.created_at, c.id) < ($4, $5)
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $6`

	rows, err := s.db.Query(ctx, query, now, filters.Status, filters.SearchText, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons after cursor", err)
	}
	defer rows.Close()
	return scanCouponListItems(rows)
}

func scanCouponListItems(rows pgx.Rows) ([]*queries.CouponListItem, error) {
	items := make([]*queries.CouponListItem, 0)
	for rows.Next() {
		var it queries.CouponListItem
		if err := rows.Scan(
			&it.ID, &it.Code, &it.Name, &it.Brand,
			&it.DiscountType, &it.DiscountValue, &it.EndDate,
			&it.EffectiveStatus, &it.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon rows", err)
	}
	return items, nil
}
