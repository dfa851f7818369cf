package protocols

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

// List returns all protocols, newest first.
func (r *Repository) List(ctx context.Context) ([]Protocol, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, doc_type, data, template_id, status, created_at, created_by
		FROM protocols
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var protocols []Protocol
	for rows.Next() {
		var p Protocol
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.DocType, &p.Data, &p.TemplateID, &p.Status, &p.CreatedAt, &p.CreatedBy); err != nil {
			return nil, err
		}
		protocols = append(protocols, p)
	}
	return protocols, rows.Err()
}

// Insert persists a new protocol row. Status and created_at take their
// column defaults.
func (r *Repository) Insert(ctx context.Context, p Protocol) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO protocols (id, title, description, doc_type, data, template_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Title, p.Description, p.DocType, p.Data, p.TemplateID, p.CreatedBy)
	return err
}

// TemplateName looks up a template's name for doc_type resolution.
func (r *Repository) TemplateName(ctx context.Context, templateID int64) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx, `SELECT name FROM templates WHERE id = $1`, templateID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", shared.ErrNotFound
		}
		return "", err
	}
	return name, nil
}
