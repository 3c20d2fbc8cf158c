// internal/database/match.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/okalpak/wordmines/internal/models"
)

func (s *Store) CreateMatch(ctx context.Context, m *models.Match) error {
	q := `INSERT INTO matches (id, player1, player2, mode, start_time, end_time,
	        current_turn, player1_score, player2_score, is_active, is_completed)
	      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	err := pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, execErr := tx.Exec(ctx, q,
			m.ID, m.Player1, m.Player2, string(m.Mode), m.StartTime, m.EndTime,
			m.CurrentTurn, m.Player1Score, m.Player2Score, m.IsActive, m.IsCompleted,
		)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

func (s *Store) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	var m models.Match
	var mode string
	q := `SELECT id, player1, player2, mode, start_time, end_time,
	        current_turn, player1_score, player2_score, is_active, is_completed
	      FROM matches WHERE id=$1`

	err := s.pool.QueryRow(ctx, q, id).Scan(
		&m.ID, &m.Player1, &m.Player2, &mode, &m.StartTime, &m.EndTime,
		&m.CurrentTurn, &m.Player1Score, &m.Player2Score, &m.IsActive, &m.IsCompleted,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m.Mode = models.GameMode(mode)
	return &m, nil
}

func (s *Store) UpdateMatch(ctx context.Context, m *models.Match) error {
	q := `UPDATE matches
	      SET current_turn=$1, player1_score=$2, player2_score=$3,
	          is_active=$4, is_completed=$5
	      WHERE id=$6`

	return pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, q,
			m.CurrentTurn, m.Player1Score, m.Player2Score,
			m.IsActive, m.IsCompleted, m.ID,
		)
		return err
	})
}

func (s *Store) ListActiveByUser(ctx context.Context, username string) ([]*models.Match, error) {
	return s.listByUser(ctx, username, `is_active = TRUE`)
}

func (s *Store) ListCompletedByUser(ctx context.Context, username string) ([]*models.Match, error) {
	return s.listByUser(ctx, username, `is_completed = TRUE`)
}

func (s *Store) listByUser(ctx context.Context, username, cond string) ([]*models.Match, error) {
	q := `SELECT id, player1, player2, mode, start_time, end_time,
	        current_turn, player1_score, player2_score, is_active, is_completed
	      FROM matches
	      WHERE (player1 = $1 OR player2 = $1) AND ` + cond + `
	      ORDER BY start_time`

	rows, err := s.pool.Query(ctx, q, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Match
	for rows.Next() {
		var m models.Match
		var mode string
		if err := rows.Scan(
			&m.ID, &m.Player1, &m.Player2, &mode, &m.StartTime, &m.EndTime,
			&m.CurrentTurn, &m.Player1Score, &m.Player2Score, &m.IsActive, &m.IsCompleted,
		); err != nil {
			return nil, err
		}
		m.Mode = models.GameMode(mode)
		out = append(out, &m)
	}
	return out, rows.Err()
}
