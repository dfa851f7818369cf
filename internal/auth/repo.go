package auth

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/protocolo-digital/protocolo/internal/shared"
)

// Repository defines persistence operations for the auth module.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*Account, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// FindByUsername fetches a user joined with its role.
func (r *PGRepository) FindByUsername(ctx context.Context, username string) (*Account, error) {
	var (
		account  Account
		rawPerms string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT u.id, u.username, u.password, r.name, r.permissions
		FROM users u
		JOIN roles r ON u.role_id = r.id
		WHERE u.username = $1`, username).Scan(&account.ID, &account.Username, &account.PasswordHash, &account.Role, &rawPerms)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(rawPerms), &account.Permissions); err != nil {
		return nil, err
	}
	return &account, nil
}

var _ Repository = (*PGRepository)(nil)
