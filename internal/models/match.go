package models

import (
	"time"

	"github.com/google/uuid"
)

// Match is one game session between two players under a timed mode.
// EndTime is always StartTime + Mode.Duration(); exactly one of
// IsActive/IsCompleted holds after creation. Matches are never deleted,
// they are retained for history and stats.
type Match struct {
	ID           uuid.UUID `json:"id"`
	Player1      string    `json:"player1"`
	Player2      string    `json:"player2"`
	Mode         GameMode  `json:"mode"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	CurrentTurn  int       `json:"current_turn"` // 1 or 2
	Player1Score int       `json:"player1_score"`
	Player2Score int       `json:"player2_score"`
	IsActive     bool      `json:"is_active"`
	IsCompleted  bool      `json:"is_completed"`
}

// SeatOf returns 1 or 2 for the given username, or 0 when the user is not a
// participant of this match.
func (m *Match) SeatOf(username string) int {
	switch username {
	case m.Player1:
		return 1
	case m.Player2:
		return 2
	}
	return 0
}

// Opponent returns the other participant's username, or "" for non-participants.
func (m *Match) Opponent(username string) string {
	switch username {
	case m.Player1:
		return m.Player2
	case m.Player2:
		return m.Player1
	}
	return ""
}

// ScoreOf returns the score held by the given seat.
func (m *Match) ScoreOf(seat int) int {
	if seat == 1 {
		return m.Player1Score
	}
	return m.Player2Score
}

// Expired reports whether the match has outlived its mode duration.
func (m *Match) Expired(now time.Time) bool {
	return now.After(m.EndTime)
}

// MatchOutcome is the resolved result of a completed match.
type MatchOutcome struct {
	Winner string `json:"winner,omitempty"` // empty on a draw
	Draw   bool   `json:"draw"`
}

// Outcome compares final scores: higher wins, equal is a draw.
func (m *Match) Outcome() MatchOutcome {
	switch {
	case m.Player1Score > m.Player2Score:
		return MatchOutcome{Winner: m.Player1}
	case m.Player2Score > m.Player1Score:
		return MatchOutcome{Winner: m.Player2}
	}
	return MatchOutcome{Draw: true}
}
