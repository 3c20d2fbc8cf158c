// internal/database/ticket.go
package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/okalpak/wordmines/internal/models"
)

func (s *Store) CreateTicket(ctx context.Context, t *models.Ticket) error {
	return pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO tickets (id, username, mode, created_at) VALUES ($1, $2, $3, $4)`,
			t.ID, t.Username, string(t.Mode), t.CreatedAt,
		)
		return err
	})
}

func (s *Store) FindOpponentTicket(ctx context.Context, mode models.GameMode, exclude string) (*models.Ticket, error) {
	var t models.Ticket
	var modeStr string
	q := `SELECT id, username, mode, created_at
	      FROM tickets
	      WHERE mode=$1 AND username <> $2
	      ORDER BY created_at
	      LIMIT 1`

	err := s.pool.QueryRow(ctx, q, string(mode), exclude).Scan(
		&t.ID, &t.Username, &modeStr, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t.Mode = models.GameMode(modeStr)
	return &t, nil
}

// DeleteTicket removes a ticket by id. The rows-affected count makes this a
// compare-and-delete: a concurrent pairing that already consumed the ticket
// is observed as deleted=false.
func (s *Store) DeleteTicket(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteTicketsByUsername(ctx context.Context, username string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM tickets WHERE username=$1`, username)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) ListTickets(ctx context.Context) ([]*models.Ticket, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, username, mode, created_at FROM tickets ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Ticket
	for rows.Next() {
		var t models.Ticket
		var modeStr string
		if err := rows.Scan(&t.ID, &t.Username, &modeStr, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Mode = models.GameMode(modeStr)
		out = append(out, &t)
	}
	return out, rows.Err()
}
