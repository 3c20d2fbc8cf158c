// internal/database/schema.go
package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT UNIQUE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		id UUID PRIMARY KEY,
		player1 TEXT NOT NULL,
		player2 TEXT NOT NULL,
		mode TEXT NOT NULL,
		start_time TIMESTAMPTZ NOT NULL,
		end_time TIMESTAMPTZ NOT NULL,
		current_turn INT NOT NULL,
		player1_score INT NOT NULL DEFAULT 0,
		player2_score INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		is_completed BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS cells (
		match_id UUID NOT NULL REFERENCES matches(id),
		row_idx INT NOT NULL,
		col_idx INT NOT NULL,
		letter TEXT NOT NULL DEFAULT '',
		special_type TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (match_id, row_idx, col_idx)
	)`,
	`CREATE TABLE IF NOT EXISTS letter_pools (
		match_id UUID NOT NULL REFERENCES matches(id),
		letter TEXT NOT NULL,
		remaining INT NOT NULL CHECK (remaining >= 0),
		PRIMARY KEY (match_id, letter)
	)`,
	`CREATE TABLE IF NOT EXISTS tiles (
		id UUID PRIMARY KEY,
		match_id UUID NOT NULL REFERENCES matches(id),
		username TEXT NOT NULL,
		letter TEXT NOT NULL,
		points INT NOT NULL,
		used BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS tiles_match_user_idx ON tiles (match_id, username)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL,
		mode TEXT NOT NULL,
		created_at BIGINT NOT NULL
	)`,
}

// ensureSchema creates the tables on first run. Statements are idempotent.
func (s *Store) ensureSchema(ctx context.Context) error {
	for _, q := range schema {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
	}
	return nil
}
