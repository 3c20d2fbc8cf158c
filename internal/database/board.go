// internal/database/board.go
package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/okalpak/wordmines/internal/models"
)

func (s *Store) BoardExists(ctx context.Context, matchID uuid.UUID) (bool, error) {
	var n int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM cells WHERE match_id=$1`, matchID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateCells persists all 225 cells of a freshly generated board in a
// single transaction.
func (s *Store) CreateCells(ctx context.Context, matchID uuid.UUID, cells []models.Cell) error {
	err := pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		rows := make([][]interface{}, 0, len(cells))
		for _, c := range cells {
			rows = append(rows, []interface{}{matchID, c.Row, c.Col, c.Letter, string(c.SpecialType)})
		}
		_, copyErr := tx.CopyFrom(ctx,
			pgx.Identifier{"cells"},
			[]string{"match_id", "row_idx", "col_idx", "letter", "special_type"},
			pgx.CopyFromRows(rows),
		)
		return copyErr
	})
	if err != nil {
		return fmt.Errorf("failed to insert board cells: %w", err)
	}
	return nil
}

func (s *Store) GetCells(ctx context.Context, matchID uuid.UUID) ([]models.Cell, error) {
	q := `SELECT row_idx, col_idx, letter, special_type
	      FROM cells WHERE match_id=$1 ORDER BY row_idx, col_idx`

	rows, err := s.pool.Query(ctx, q, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Cell
	for rows.Next() {
		c := models.Cell{MatchID: matchID}
		var special string
		if err := rows.Scan(&c.Row, &c.Col, &c.Letter, &special); err != nil {
			return nil, err
		}
		c.SpecialType = models.SpecialType(special)
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpdateCellLetters writes the letters of one accepted move in a single
// transaction.
func (s *Store) UpdateCellLetters(ctx context.Context, matchID uuid.UUID, cells []models.Cell) error {
	return pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		for _, c := range cells {
			_, err := tx.Exec(ctx,
				`UPDATE cells SET letter=$1 WHERE match_id=$2 AND row_idx=$3 AND col_idx=$4`,
				c.Letter, matchID, c.Row, c.Col,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
