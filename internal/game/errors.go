// internal/game/errors.go
package game

import (
	"errors"
	"fmt"

	"github.com/okalpak/wordmines/internal/models"
)

// Sentinel errors for the engine's failure kinds. Handlers map these onto
// transport status codes with errors.Is / errors.As.
var (
	// ErrNotFound covers missing matches, users and tickets.
	ErrNotFound = errors.New("not found")

	// ErrForbidden rejects an action by a player who does not hold the
	// current turn (or is not a participant of the match).
	ErrForbidden = errors.New("not your turn")

	// ErrInvalidWord rejects a word absent from the dictionary.
	ErrInvalidWord = errors.New("word not in dictionary")

	// ErrInvalidMode rejects an unknown game mode before any ticket is
	// created.
	ErrInvalidMode = errors.New("invalid game mode")

	// ErrInvalidPlacement rejects malformed position input: wrong count or
	// out-of-bounds cells. This is input-shape validation, not a game rule.
	ErrInvalidPlacement = errors.New("invalid placement")
)

// InsufficientTilesError reports a rack shortfall and names the first
// missing letter.
type InsufficientTilesError struct {
	Letter string
}

func (e *InsufficientTilesError) Error() string {
	return fmt.Sprintf("insufficient tiles: missing %q", e.Letter)
}

// GameOverError rejects an action against a match that has already been
// completed (by timeout, surrender or expiry discovered during the action).
// It carries the resolved outcome so the caller learns the winner as part
// of the rejection.
type GameOverError struct {
	Outcome models.MatchOutcome
}

func (e *GameOverError) Error() string {
	if e.Outcome.Draw {
		return "game over: draw"
	}
	return fmt.Sprintf("game over: winner %s", e.Outcome.Winner)
}
