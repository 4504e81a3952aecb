package response

import (
	"coupon-ledger/internal/usecase/queries"
)

type SendResponse struct {
	ID        string `json:"id"`
	CouponID  string `json:"coupon_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	SentAt    int64  `json:"sent_at"`
	UsedAt    *int64 `json:"used_at,omitempty"`
	Status    string `json:"status"`
}

func FromSendView(v *queries.SendView) *SendResponse {
	resp := &SendResponse{
		ID:        v.ID.String(),
		CouponID:  v.CouponID.String(),
		UserID:    v.UserID.String(),
		UserName:  v.UserName,
		UserEmail: v.UserEmail,
		SentAt:    v.SentAt.Unix(),
		Status:    v.Status,
	}
	if v.UsedAt != nil {
		usedAt := v.UsedAt.Unix()
		resp.UsedAt = &usedAt
	}
	return resp
}

func FromSendList(items []*queries.SendView) []*SendResponse {
	res := make([]*SendResponse, len(items))
	for i, it := range items {
		res[i] = FromSendView(it)
	}
	return res
}

type UsageSummaryResponse struct {
	CouponID     string   `json:"coupon_id"`
	SentCount    int64    `json:"sent_count"`
	UsedCount    int64    `json:"used_count"`
	RecipientIDs []string `json:"recipient_ids"`
}

func FromUsageSummary(v *queries.UsageSummaryView) *UsageSummaryResponse {
	ids := make([]string, len(v.RecipientIDs))
	for i, id := range v.RecipientIDs {
		ids[i] = id.String()
	}
	return &UsageSummaryResponse{
		CouponID:     v.CouponID.String(),
		SentCount:    v.SentCount,
		UsedCount:    v.UsedCount,
		RecipientIDs: ids,
	}
}
