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
	"github.com/jackc/pgx/v5/pgtype"
)

// A used record stays used; expiry from the owning coupon's end date only
// shadows records still in the sent state. Mirrors
// ledger.SendRecord.EffectiveStatus.
const sendEffectiveStatus = `
	CASE
		WHEN s.status = 'used' THEN 'used'
		WHEN c.end_date < $1 THEN 'expired'
		ELSE s.status
	END`

type SendReadStore struct {
	db db.DBTX
}

func NewSendReadStore(dbtx db.DBTX) *SendReadStore {
	return &SendReadStore{db: dbtx}
}

func (s *SendReadStore) FindByID(ctx context.Context, id uuid.UUID, now time.Time) (*queries.SendView, error) {
	query := `
		SELECT s.id, s.coupon_id, s.user_id, s.user_name, s.user_email,
		       s.sent_at, s.used_at,
		       ` + sendEffectiveStatus + ` AS status
		FROM coupon_sends s
		JOIN coupons c ON c.id = s.coupon_id
		WHERE s.id = $2`

	var (
		v      queries.SendView
		usedAt pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, query, now, id).Scan(
		&v.ID, &v.CouponID, &v.UserID, &v.UserName, &v.UserEmail,
		&v.SentAt, &usedAt, &v.Status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("send record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find send view", err)
	}
	v.UsedAt = pgconv.TimePtrFromPgtype(usedAt)
	return &v, nil
}

func (s *SendReadStore) FindByCouponFirstPage(ctx context.Context, couponID uuid.UUID, now time.Time, limit int32) ([]*queries.SendView, error) {
	query := `
		SELECT s.id, s.coupon_id, s.user_id, s.user_name, s.user_email,
		       s.sent_at, s.used_at,
		       ` + sendEffectiveStatus + ` AS status
		FROM coupon_sends s
		JOIN coupons c ON c.id = s.coupon_id
		WHERE s.coupon_id = $2
		ORDER BY s.sent_at DESC, s.id DESC
		LIMIT $3`

	rows, err := s.db.Query(ctx, query, now, couponID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sends", err)
	}
	defer rows.Close()
	return scanSendViews(rows)
}

func (s *SendReadStore) FindByCouponKeyset(ctx context.Context, couponID uuid.UUID, now time.Time, lastSentAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.SendView, error) {
	query := `
		SELECT s.id, s.coupon_id, s.user_id, s.user_name, s.user_email,
		       s.sent_at, s.used_at,
		       ` + sendEffectiveStatus + ` AS status
		FROM coupon_sends s
		JOIN coupons c ON c.id = s.coupon_id
		WHERE s.coupon_id = $2
		  AND (s.sent_at, s.id) < ($3, $4)
		ORDER BY s.sent_at DESC, s.id DESC
		LIMIT $5`

	rows, err := s.db.Query(ctx, query, now, couponID, lastSentAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sends after cursor", err)
	}
	defer rows.Close()
	return scanSendViews(rows)
}

// AggregateUsage counts by scanning ledger rows, never by reading a stored
// counter. Recipient order follows insertion order so repeated calls agree.
func (s *SendReadStore) AggregateUsage(ctx context.Context, couponID uuid.UUID) (*queries.UsageSummaryView, error) {
	const query = `
		SELECT user_id, status
		FROM coupon_sends
		WHERE coupon_id = $1
		ORDER BY sent_at ASC, id ASC`

	rows, err := s.db.Query(ctx, query, couponID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate coupon usage", err)
	}
	defer rows.Close()

	summary := &queries.UsageSummaryView{
		CouponID:     couponID,
		RecipientIDs: make([]uuid.UUID, 0),
	}
	for rows.Next() {
		var (
			userID uuid.UUID
			status string
		)
		if err := rows.Scan(&userID, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan usage row", err)
		}
		summary.SentCount++
		if status == "used" {
			summary.UsedCount++
		}
		summary.RecipientIDs = append(summary.RecipientIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read usage rows", err)
	}
	return summary, nil
}

func scanSendViews(rows pgx.Rows) ([]*queries.SendView, error) {
	views := make([]*queries.SendView, 0)
	for rows.Next() {
		var (
			v      queries.SendView
			usedAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&v.ID, &v.CouponID, &v.UserID, &v.UserName, &v.UserEmail,
			&v.SentAt, &usedAt, &v.Status,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan send row", err)
		}
		v.UsedAt = pgconv.TimePtrFromPgtype(usedAt)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read send rows", err)
	}
	return views, nil
}
