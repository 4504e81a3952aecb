package queries

import (
	"time"

	"github.com/google/uuid"
)

// CouponView represents read-optimized coupon campaign data. It deliberately
// carries no usage counts; those come only from UsageSummaryView.
type CouponView struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Brand           string    `json:"brand"`
	DiscountType    string    `json:"discount_type"`
	DiscountValue   float64   `json:"discount_value"`
	MinAmount       float64   `json:"min_amount"`
	MaxDiscount     float64   `json:"max_discount"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	UsageLimit      int32     `json:"usage_limit"`
	Status          string    `json:"status"`
	EffectiveStatus string    `json:"effective_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CouponListItem struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Brand           string    `json:"brand"`
	DiscountType    string    `json:"discount_type"`
	DiscountValue   float64   `json:"discount_value"`
	EndDate         time.Time `json:"end_date"`
	EffectiveStatus string    `json:"effective_status"`
	CreatedAt       time.Time `json:"created_at"`
}

// SendView is the canonical shape of one ledger record at the service
// boundary. Status is the effective status (expired derived from the owning
// coupon's end date), normalized here once rather than in consumers.
type SendView struct {
	ID        uuid.UUID  `json:"id"`
	CouponID  uuid.UUID  `json:"coupon_id"`
	UserID    uuid.UUID  `json:"user_id"`
	UserName  string     `json:"user_name"`
	UserEmail string     `json:"user_email"`
	SentAt    time.Time  `json:"sent_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	Status    string     `json:"status"`
}

// UsageSummaryView is derived entirely from ledger records. No stored counter
// feeds it.
type UsageSummaryView struct {
	CouponID     uuid.UUID   `json:"coupon_id"`
	SentCount    int64       `json:"sent_count"`
	UsedCount    int64       `json:"used_count"`
	RecipientIDs []uuid.UUID `json:"recipient_ids"`
}

// TargetCandidateView is a selectable recipient. Already-covered users stay in
// the list with the flag set so the console can render them disabled instead
// of silently dropping them.
type TargetCandidateView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
	AlreadyCovered bool      `json:"already_covered"`
}

type CouponFilters struct {
	Status     *string
	SearchText *string
}
