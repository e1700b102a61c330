package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS quizzes (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_by BIGINT NOT NULL REFERENCES users(id)
	);`,
	`CREATE TABLE IF NOT EXISTS questions (
		id BIGSERIAL PRIMARY KEY,
		quiz_id BIGINT NOT NULL REFERENCES quizzes(id) ON DELETE CASCADE,
		position INTEGER NOT NULL DEFAULT 0,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		options JSONB NOT NULL DEFAULT '[]'::jsonb
	);`,
	`CREATE INDEX IF NOT EXISTS idx_questions_quiz_id ON questions(quiz_id, position);`,
	`CREATE INDEX IF NOT EXISTS idx_quizzes_created_by ON quizzes(created_by);`,
}

// CreateSchema creates all tables needed by the service.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
