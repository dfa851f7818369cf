package rbac

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/protocolo-digital/protocolo/internal/shared"
)

// Service resolves session identities to principals with their role's
// capability set.
type Service struct {
	pool *pgxpool.Pool
}

// NewService constructs a Service backed by the provided pool.
func NewService(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool}
}

// ResolvePrincipal re-reads the user row joined with its role. Returns
// shared.ErrNotFound when the id does not resolve to an existing user.
func (s *Service) ResolvePrincipal(ctx context.Context, userID int64) (*shared.Principal, error) {
	var (
		p        shared.Principal
		rawPerms string
	)
	err := s.pool.QueryRow(ctx, `
		SELECT u.id, u.username, r.name, r.permissions
		FROM users u
		JOIN roles r ON u.role_id = r.id
		WHERE u.id = $1`, userID).Scan(&p.ID, &p.Username, &p.Role, &rawPerms)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(rawPerms), &p.Permissions); err != nil {
		return nil, err
	}
	return &p, nil
}
