//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, name, email string, createdAt time.Time) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, status, created_at) VALUES ($1, $2, $3, 'active', $4) ON CONFLICT (email) DO NOTHING",
		userID, name, email, createdAt)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateInactiveTestUser(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, status, created_at) VALUES ($1, $2, $3, 'withdrawn', now())",
		userID, name, email)
	require.NoError(t, err)

	return userID
}

// truncates all service tables so each subtest starts from a clean ledger
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()
	_, err := pool.Exec(ctx, "TRUNCATE coupon_sends, coupons, users CASCADE")
	return err
}
