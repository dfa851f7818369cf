package roles

import (
	"context"
	"encoding/json"

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

// List returns all roles with permissions decoded.
func (r *Repository) List(ctx context.Context) ([]Role, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, permissions FROM roles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var roles []Role
	for rows.Next() {
		var (
			role     Role
			rawPerms string
		)
		if err := rows.Scan(&role.ID, &role.Name, &rawPerms); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(rawPerms), &role.Permissions); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// Insert persists a new role. A duplicate name maps to shared.ErrDuplicate.
func (r *Repository) Insert(ctx context.Context, name string, permissions []string) error {
	if permissions == nil {
		permissions = []string{}
	}
	perms, err := json.Marshal(permissions)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO roles (name, permissions) VALUES ($1, $2)`, name, string(perms))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return shared.ErrDuplicate
		}
		return err
	}
	return nil
}
