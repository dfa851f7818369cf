package users

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/protocolo-digital/protocolo/internal/platform/db"
	"github.com/protocolo-digital/protocolo/internal/shared"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns all users joined with their role name.
func (r *Repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.username, r.name
		FROM users u
		JOIN roles r ON u.role_id = r.id
		ORDER BY u.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Insert persists a new user. A duplicate username maps to
// shared.ErrDuplicate.
func (r *Repository) Insert(ctx context.Context, username, passwordHash string, roleID int64) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO users (username, password, role_id) VALUES ($1, $2, $3)`,
		username, passwordHash, roleID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return shared.ErrDuplicate
		}
		return err
	}
	return nil
}
