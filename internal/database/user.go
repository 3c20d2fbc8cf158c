// internal/database/user.go
package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/okalpak/wordmines/internal/models"
)

// LookupUser resolves a username through the identity collaborator's user
// table. Registration and credentials are owned elsewhere; this service
// only reads references.
func (s *Store) LookupUser(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, username FROM users WHERE username=$1`, username).
		Scan(&u.ID, &u.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
