package response

import (
	"coupon-ledger/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CouponResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Brand           string  `json:"brand"`
	DiscountType    string  `json:"discount_type"`
	DiscountValue   float64 `json:"discount_value"`
	MinAmount       float64 `json:"min_amount"`
	MaxDiscount     float64 `json:"max_discount"`
	StartDate       int64   `json:"start_date"`
	EndDate         int64   `json:"end_date"`
	UsageLimit      int32   `json:"usage_limit"`
	Status          string  `json:"status"`
	EffectiveStatus string  `json:"effective_status"`
	CreatedAt       int64   `json:"created_at"`
	UpdatedAt       int64   `json:"updated_at"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	resp := &CouponResponse{}
	_ = copier.Copy(resp, v)
	resp.ID = v.ID.String()
	resp.StartDate = v.StartDate.Unix()
	resp.EndDate = v.EndDate.Unix()
	resp.CreatedAt = v.CreatedAt.Unix()
	resp.UpdatedAt = v.UpdatedAt.Unix()
	return resp
}

type CouponListItemResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	Brand           string  `json:"brand"`
	DiscountType    string  `json:"discount_type"`
	DiscountValue   float64 `json:"discount_value"`
	EndDate         int64   `json:"end_date"`
	EffectiveStatus string  `json:"effective_status"`
	CreatedAt       int64   `json:"created_at"`
}

func FromCouponList(items []*queries.CouponListItem) []*CouponListItemResponse {
	res := make([]*CouponListItemResponse, len(items))
	for i, it := range items {
		res[i] = &CouponListItemResponse{
			ID:              it.ID.String(),
			Code:            it.Code,
			Name:            it.Name,
			Brand:           it.Brand,
			DiscountType:    it.DiscountType,
			DiscountValue:   it.DiscountValue,
			EndDate:         it.EndDate.Unix(),
			EffectiveStatus: it.EffectiveStatus,
			CreatedAt:       it.CreatedAt.Unix(),
		}
	}
	return res
}
