package templates

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

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

// List returns all templates.
func (r *Repository) List(ctx context.Context) ([]Template, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, content, created_by FROM templates ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var templates []Template
	for rows.Next() {
		var t Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Content, &t.CreatedBy); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// Get fetches a template by id.
func (r *Repository) Get(ctx context.Context, id int64) (*Template, error) {
	var t Template
	err := r.pool.QueryRow(ctx, `SELECT id, name, content, created_by FROM templates WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.Content, &t.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Insert persists a new template.
func (r *Repository) Insert(ctx context.Context, t Template) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO templates (name, content, created_by) VALUES ($1, $2, $3)`,
		t.Name, t.Content, t.CreatedBy)
	return err
}

// Update overwrites name and content by id. An absent id updates nothing
// and reports no error.
func (r *Repository) Update(ctx context.Context, id int64, name, content string) error {
	_, err := r.pool.Exec(ctx, `UPDATE templates SET name = $1, content = $2 WHERE id = $3`, name, content, id)
	return err
}
