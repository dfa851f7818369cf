package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		id BIGSERIAL PRIMARY KEY,
		name TEXT UNIQUE,
		permissions TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE,
		password TEXT,
		role_id BIGINT REFERENCES roles(id)
	)`,
	`CREATE TABLE IF NOT EXISTS templates (
		id BIGSERIAL PRIMARY KEY,
		name TEXT,
		content TEXT,
		created_by BIGINT REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS protocols (
		id TEXT PRIMARY KEY,
		title TEXT,
		description TEXT,
		data TEXT,
		template_id BIGINT REFERENCES templates(id),
		status TEXT DEFAULT 'Aberto',
		created_at TIMESTAMPTZ DEFAULT NOW(),
		created_by BIGINT REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS attachments (
		id BIGSERIAL PRIMARY KEY,
		protocol_id TEXT REFERENCES protocols(id),
		filename TEXT,
		file_path TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS logs (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(id),
		action TEXT,
		details TEXT,
		created_at TIMESTAMPTZ DEFAULT NOW()
	)`,
}

type seedTemplate struct {
	name    string
	content string
}

var defaultTemplates = []seedTemplate{
	{name: "Geral", content: `<div style="font-family: sans-serif; padding: 20px;"><h1>Protocolo Geral</h1><p>{{description}}</p></div>`},
	{name: "Ofício", content: `<div style="font-family: serif; padding: 40px; border: 1px solid #ccc;"><h2>OFÍCIO Nº {{protocol_id}}</h2><p>{{description}}</p></div>`},
	{name: "Memorando", content: `<div style="background: #f9f9f9; padding: 20px;"><h3>MEMORANDO INTERNO</h3><hr/><p>{{description}}</p></div>`},
	{name: "Requerimento", content: `<div style="padding: 30px;"><h1>REQUERIMENTO</h1><p>Eu, abaixo assinado, venho requerer: {{description}}</p></div>`},
	{name: "Contrato", content: `<div style="padding: 50px; line-height: 1.6;"><h1>CONTRATO DE PRESTAÇÃO DE SERVIÇOS</h1><p>{{description}}</p></div>`},
}

// Migrate creates the schema, applies the additive doc_type migration and
// seeds the default rows. Everything runs in a single transaction so that
// two instances booting at once cannot double-seed.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	return WithTx(ctx, pool, func(tx pgx.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("platform/db: create table: %w", err)
			}
		}

		// Older databases predate the doc_type column.
		if _, err := tx.Exec(ctx, `ALTER TABLE protocols ADD COLUMN IF NOT EXISTS doc_type TEXT DEFAULT 'Geral'`); err != nil {
			return fmt.Errorf("platform/db: migrate doc_type: %w", err)
		}

		seeded, err := seed(ctx, tx)
		if err != nil {
			return err
		}
		if seeded && logger != nil {
			logger.Info("database seeded with default roles, admin user and templates")
		}
		return nil
	})
}

func seed(ctx context.Context, tx pgx.Tx) (bool, error) {
	seeded := false

	var roleCount int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM roles`).Scan(&roleCount); err != nil {
		return false, fmt.Errorf("platform/db: count roles: %w", err)
	}
	if roleCount == 0 {
		seeded = true
		for _, role := range []struct {
			name        string
			permissions []string
		}{
			{name: "Admin", permissions: []string{"all"}},
			{name: "Operador", permissions: []string{"create_protocol", "view_protocol"}},
		} {
			perms, err := json.Marshal(role.permissions)
			if err != nil {
				return false, err
			}
			if _, err := tx.Exec(ctx, `INSERT INTO roles (name, permissions) VALUES ($1, $2)`, role.name, string(perms)); err != nil {
				return false, fmt.Errorf("platform/db: seed role %s: %w", role.name, err)
			}
		}
	}

	var userCount int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return false, fmt.Errorf("platform/db: count users: %w", err)
	}
	if userCount == 0 {
		seeded = true
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return false, fmt.Errorf("platform/db: hash admin password: %w", err)
		}
		var adminRoleID int64
		if err := tx.QueryRow(ctx, `SELECT id FROM roles WHERE name = 'Admin'`).Scan(&adminRoleID); err != nil {
			return false, fmt.Errorf("platform/db: admin role lookup: %w", err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO users (username, password, role_id) VALUES ($1, $2, $3)`, "admin", string(hash), adminRoleID); err != nil {
			return false, fmt.Errorf("platform/db: seed admin user: %w", err)
		}
	}

	var templateCount int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM templates`).Scan(&templateCount); err != nil {
		return false, fmt.Errorf("platform/db: count templates: %w", err)
	}
	if templateCount == 0 {
		seeded = true
		var adminID int64
		if err := tx.QueryRow(ctx, `SELECT id FROM users WHERE username = 'admin'`).Scan(&adminID); err != nil {
			return false, fmt.Errorf("platform/db: admin user lookup: %w", err)
		}
		for _, t := range defaultTemplates {
			if _, err := tx.Exec(ctx, `INSERT INTO templates (name, content, created_by) VALUES ($1, $2, $3)`, t.name, t.content, adminID); err != nil {
				return false, fmt.Errorf("platform/db: seed template %s: %w", t.name, err)
			}
		}
	}

	return seeded, nil
}
