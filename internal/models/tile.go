package models

import "github.com/google/uuid"

// Tile is a single letter unit in a player's rack. Consumed tiles are kept
// with Used=true for audit/history; they are never deleted.
type Tile struct {
	ID       uuid.UUID `json:"id"`
	MatchID  uuid.UUID `json:"-"`
	Username string    `json:"-"`
	Letter   string    `json:"letter"`
	Points   int       `json:"point"`
	Used     bool      `json:"-"`
}

// Ticket is a queued request to be paired into a match, keyed by mode.
type Ticket struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Mode      GameMode  `json:"mode"`
	CreatedAt int64     `json:"-"`
}

// User is a reference to an identity owned by the external identity
// collaborator. The engine never manages credentials.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// WinStats summarizes a player's completed matches.
type WinStats struct {
	Played  int     `json:"played"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"winRate"`
}
