// internal/database/letters.go
package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/okalpak/wordmines/internal/models"
)

func (s *Store) SeedPool(ctx context.Context, matchID uuid.UUID, counts map[string]int) error {
	err := pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		for letter, remaining := range counts {
			_, err := tx.Exec(ctx,
				`INSERT INTO letter_pools (match_id, letter, remaining)
				 VALUES ($1, $2, $3)
				 ON CONFLICT (match_id, letter) DO UPDATE SET remaining = EXCLUDED.remaining`,
				matchID, letter, remaining,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed letter pool: %w", err)
	}
	return nil
}

func (s *Store) GetPool(ctx context.Context, matchID uuid.UUID) (map[string]int, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT letter, remaining FROM letter_pools WHERE match_id=$1`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var letter string
		var remaining int
		if err := rows.Scan(&letter, &remaining); err != nil {
			return nil, err
		}
		out[letter] = remaining
	}
	return out, rows.Err()
}

func (s *Store) SetRemaining(ctx context.Context, matchID uuid.UUID, letter string, remaining int) error {
	return pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`UPDATE letter_pools SET remaining=$1 WHERE match_id=$2 AND letter=$3`,
			remaining, matchID, letter,
		)
		return err
	})
}

func (s *Store) AddTiles(ctx context.Context, tiles []models.Tile) error {
	return pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		for _, t := range tiles {
			_, err := tx.Exec(ctx,
				`INSERT INTO tiles (id, match_id, username, letter, points, used)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				t.ID, t.MatchID, t.Username, t.Letter, t.Points, t.Used,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) GetRack(ctx context.Context, matchID uuid.UUID, username string) ([]models.Tile, error) {
	q := `SELECT id, letter, points, used
	      FROM tiles WHERE match_id=$1 AND username=$2 ORDER BY created_at`

	rows, err := s.pool.Query(ctx, q, matchID, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Tile
	for rows.Next() {
		t := models.Tile{MatchID: matchID, Username: username}
		if err := rows.Scan(&t.ID, &t.Letter, &t.Points, &t.Used); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) MarkTilesUsed(ctx context.Context, tileIDs []uuid.UUID) error {
	if len(tileIDs) == 0 {
		return nil
	}
	return pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`UPDATE tiles SET used=TRUE WHERE id = ANY($1)`, tileIDs)
		return err
	})
}
