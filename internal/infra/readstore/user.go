package readstore

import (
	"context"

	"coupon-ledger/internal/domain/targeting"
	"coupon-ledger/internal/infra"
	"coupon-ledger/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserReadStore reads the platform user directory. The users table is owned
// elsewhere; this store never writes to it.
type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) ListActive(ctx context.Context) ([]targeting.Candidate, error) {
	const query = `
		SELECT id, name, email, status, created_at
		FROM users
		WHERE status = 'active'
		ORDER BY created_at DESC, id DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active users", err)
	}
	defer rows.Close()
	return scanCandidates(rows)
}

func (s *UserReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]targeting.Candidate, error) {
	if len(ids) == 0 {
		return []targeting.Candidate{}, nil
	}

	const query = `
		SELECT id, name, email, status, created_at
		FROM users
		WHERE id = ANY($1)`

	rows, err := s.db.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find users by IDs", err)
	}
	defer rows.Close()
	return scanCandidates(rows)
}

func scanCandidates(rows pgx.Rows) ([]targeting.Candidate, error) {
	users := make([]targeting.Candidate, 0)
	for rows.Next() {
		var c targeting.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Status, &c.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		users = append(users, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return users, nil
}
