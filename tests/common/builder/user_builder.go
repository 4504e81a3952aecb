//go:build unit || e2e

package builder

import (
	"time"

	"coupon-ledger/internal/domain/targeting"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Status    string
	CreatedAt time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.New(),
		Name:      "Taro Tanaka",
		Email:     "taro@example.com",
		Status:    "active",
		CreatedAt: time.Now().UTC().Add(-48 * time.Hour),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildCandidate() targeting.Candidate {
	return targeting.Candidate{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
