package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyUsed  = errors.New("send record already marked used")
	ErrMissingUser  = errors.New("send record requires a recipient")
	ErrInvalidUsedAt = errors.New("used timestamp must not precede sent timestamp")
)

type Status string

const (
	StatusSent Status = "sent"
	StatusUsed Status = "used"
	// StatusExpired is derived from the owning coupon's end date; it is never
	// written to a record.
	StatusExpired Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// SendRecord is one fact in the distribution ledger: a specific coupon was
// issued to a specific user at a specific time. CouponID and UserID are
// immutable; the recipient name and email are snapshots taken at send time.
type SendRecord struct {
	id        uuid.UUID
	couponID  uuid.UUID
	userID    uuid.UUID
	userName  string
	userEmail string
	sentAt    time.Time
	usedAt    *time.Time
	status    Status
}

func NewSendRecord(couponID, userID uuid.UUID, userName, userEmail string, sentAt time.Time) (*SendRecord, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	return &SendRecord{
		id:        uuid.New(),
		couponID:  couponID,
		userID:    userID,
		userName:  userName,
		userEmail: userEmail,
		sentAt:    sentAt,
		status:    StatusSent,
	}, nil
}

// MarkUsed transitions sent -> used exactly once. A second call fails with
// ErrAlreadyUsed and leaves usedAt untouched, so callers can distinguish
// "already used" from "just used".
func (r *SendRecord) MarkUsed(usedAt time.Time) error {
	if r.status == StatusUsed {
		return ErrAlreadyUsed
	}
	if usedAt.Before(r.sentAt) {
		return ErrInvalidUsedAt
	}
	r.status = StatusUsed
	r.usedAt = &usedAt
	return nil
}

// EffectiveStatus derives expired from the owning coupon's end date. A used
// record stays used; expiry only shadows records still in the sent state.
func (r *SendRecord) EffectiveStatus(couponEndDate, now time.Time) Status {
	if r.status == StatusUsed {
		return StatusUsed
	}
	if now.After(couponEndDate) {
		return StatusExpired
	}
	return r.status
}

func (r *SendRecord) ID() uuid.UUID       { return r.id }
func (r *SendRecord) CouponID() uuid.UUID { return r.couponID }
func (r *SendRecord) UserID() uuid.UUID   { return r.userID }
func (r *SendRecord) UserName() string    { return r.userName }
func (r *SendRecord) UserEmail() string   { return r.userEmail }
func (r *SendRecord) SentAt() time.Time   { return r.sentAt }
func (r *SendRecord) UsedAt() *time.Time  { return r.usedAt }
func (r *SendRecord) Status() Status      { return r.status }
