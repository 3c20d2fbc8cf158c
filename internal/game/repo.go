// internal/game/repo.go
package game

import (
	"context"

	"github.com/google/uuid"
	"github.com/okalpak/wordmines/internal/models"
)

// The engine depends on storage abstractly. Implementations live in
// internal/database (Postgres) and internal/memstore (in-memory).
//
// Lookup methods return (nil, nil) when the entity does not exist; errors
// are reserved for storage failures.

// MatchRepo persists matches. Matches are never deleted; completed matches
// are retained for history and stats.
type MatchRepo interface {
	CreateMatch(ctx context.Context, m *models.Match) error
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	UpdateMatch(ctx context.Context, m *models.Match) error
	ListActiveByUser(ctx context.Context, username string) ([]*models.Match, error)
	ListCompletedByUser(ctx context.Context, username string) ([]*models.Match, error)
}

// BoardRepo persists the 225 cells of a match board.
type BoardRepo interface {
	BoardExists(ctx context.Context, matchID uuid.UUID) (bool, error)
	CreateCells(ctx context.Context, matchID uuid.UUID, cells []models.Cell) error
	GetCells(ctx context.Context, matchID uuid.UUID) ([]models.Cell, error)
	UpdateCellLetters(ctx context.Context, matchID uuid.UUID, cells []models.Cell) error
}

// PoolRepo persists the per-match letter pool (letter -> remaining count).
type PoolRepo interface {
	SeedPool(ctx context.Context, matchID uuid.UUID, counts map[string]int) error
	GetPool(ctx context.Context, matchID uuid.UUID) (map[string]int, error)
	SetRemaining(ctx context.Context, matchID uuid.UUID, letter string, remaining int) error
}

// RackRepo persists rack tiles. Tiles are never deleted once created;
// consumed tiles are flagged used.
type RackRepo interface {
	AddTiles(ctx context.Context, tiles []models.Tile) error
	GetRack(ctx context.Context, matchID uuid.UUID, username string) ([]models.Tile, error)
	MarkTilesUsed(ctx context.Context, tileIDs []uuid.UUID) error
}

// TicketRepo persists the matchmaking queue.
type TicketRepo interface {
	CreateTicket(ctx context.Context, t *models.Ticket) error
	// FindOpponentTicket returns the oldest ticket for the mode belonging to
	// a different username, or nil when none is waiting.
	FindOpponentTicket(ctx context.Context, mode models.GameMode, exclude string) (*models.Ticket, error)
	// DeleteTicket removes the ticket by id and reports whether a row was
	// actually deleted (compare-and-delete for pairing atomicity).
	DeleteTicket(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteTicketsByUsername(ctx context.Context, username string) (bool, error)
	ListTickets(ctx context.Context) ([]*models.Ticket, error)
}

// UserDirectory is the identity collaborator. The engine only resolves
// usernames; credential management is owned elsewhere.
type UserDirectory interface {
	LookupUser(ctx context.Context, username string) (*models.User, error)
}

// Store bundles every repository capability the engine needs.
type Store interface {
	MatchRepo
	BoardRepo
	PoolRepo
	RackRepo
	TicketRepo
	UserDirectory
}
