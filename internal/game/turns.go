// internal/game/turns.go
package game

import (
	"context"

	"github.com/google/uuid"
	"github.com/okalpak/wordmines/internal/models"
)

// SurrenderPenalty is credited to the opponent of a surrendering player.
const SurrenderPenalty = 500

// PassTurn flips the turn to the other seat without any score change. It is
// gated by the same turn-ownership check as a move.
func (e *Engine) PassTurn(ctx context.Context, matchID uuid.UUID, username string) (int, error) {
	l := e.lockMatch(matchID)
	defer l.Unlock()

	m, playable, err := e.getMatchLocked(ctx, matchID)
	if err != nil {
		return 0, err
	}
	if !playable {
		return 0, &GameOverError{Outcome: m.Outcome()}
	}

	seat := m.SeatOf(username)
	if seat == 0 || seat != m.CurrentTurn {
		return 0, ErrForbidden
	}

	m.CurrentTurn = 3 - seat
	if err := e.store.UpdateMatch(ctx, m); err != nil {
		return 0, err
	}

	e.publish(MatchEvent{Type: EventTurnPassed, MatchID: matchID, Actor: username, NextTurn: m.CurrentTurn})
	e.logAction(matchID, username, "turn_passed", nil)
	return m.CurrentTurn, nil
}

// Surrender ends the match immediately: the opponent's score increases by
// the fixed penalty and the match becomes completed and inactive. Either
// participant may surrender regardless of whose turn it is.
func (e *Engine) Surrender(ctx context.Context, matchID uuid.UUID, username string) (models.MatchOutcome, error) {
	l := e.lockMatch(matchID)
	defer l.Unlock()

	m, playable, err := e.getMatchLocked(ctx, matchID)
	if err != nil {
		return models.MatchOutcome{}, err
	}
	if !playable {
		return models.MatchOutcome{}, &GameOverError{Outcome: m.Outcome()}
	}

	seat := m.SeatOf(username)
	if seat == 0 {
		return models.MatchOutcome{}, ErrForbidden
	}

	if seat == 1 {
		m.Player2Score += SurrenderPenalty
	} else {
		m.Player1Score += SurrenderPenalty
	}

	e.logAction(matchID, username, "surrendered", map[string]interface{}{
		"penalty": SurrenderPenalty,
	})
	e.publish(MatchEvent{Type: EventSurrendered, MatchID: matchID, Actor: username})

	if err := e.finalizeLocked(ctx, m); err != nil {
		return models.MatchOutcome{}, err
	}
	return m.Outcome(), nil
}
