package postgres

import (
	"context"
	"database/sql"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS survey_forms (
        id         TEXT PRIMARY KEY,
        title      TEXT NOT NULL,
        category   TEXT NOT NULL DEFAULT '',
        status     TEXT NOT NULL DEFAULT 'draft',
        payload    JSONB,
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
	`CREATE TABLE IF NOT EXISTS survey_responses (
        id           TEXT PRIMARY KEY,
        survey_id    TEXT NOT NULL,
        payload      JSONB,
        submitted_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
	`CREATE INDEX IF NOT EXISTS survey_responses_survey_id_idx ON survey_responses (survey_id)`,
	`CREATE TABLE IF NOT EXISTS categories (
        id   SERIAL PRIMARY KEY,
        name TEXT NOT NULL UNIQUE
    )`,
	`CREATE TABLE IF NOT EXISTS users (
        id         SERIAL PRIMARY KEY,
        name       TEXT NOT NULL,
        email      TEXT NOT NULL UNIQUE,
        role       TEXT NOT NULL DEFAULT 'user',
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
}

// EnsureSchema creates the backend tables and seeds the given categories.
func EnsureSchema(ctx context.Context, db *sql.DB, categories []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	for _, name := range categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return err
		}
	}
	return tx.Commit()
}
