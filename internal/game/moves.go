// internal/game/moves.go
package game

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/okalpak/wordmines/internal/models"
)

// MoveResult reports an accepted move: the points credited to the mover
// (after any mine effect), the triggered effect if any, and whose turn is
// next.
type MoveResult struct {
	Score    int                `json:"score"`
	Effect   models.SpecialType `json:"effect,omitempty"`
	NextTurn int                `json:"nextTurn"`
}

// SubmitMove validates and applies one word placement. All checks run
// before any mutation; a rejected move leaves scores, turn, board and rack
// untouched. A timeout discovered here finalizes the match as a side
// effect and the move is rejected with the resolved winner.
func (e *Engine) SubmitMove(ctx context.Context, matchID uuid.UUID, username, word string, positions []models.Position) (*MoveResult, error) {
	l := e.lockMatch(matchID)
	defer l.Unlock()

	m, playable, err := e.getMatchLocked(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !playable {
		return nil, &GameOverError{Outcome: m.Outcome()}
	}

	canonical, consume, err := e.validateMove(ctx, m, username, word, positions)
	if err != nil {
		return nil, err
	}

	cells, err := e.store.GetCells(ctx, matchID)
	if err != nil {
		return nil, err
	}
	scored := scoreMove(cells, canonical, positions)

	seat := m.SeatOf(username)
	moverDelta, opponentDelta := scored.base, 0
	switch scored.effect {
	case models.MineScoreSplit:
		moverDelta = splitScore(scored.base)
	case models.MineScoreTransfer:
		moverDelta, opponentDelta = 0, scored.base
	case models.MineWordCancel:
		moverDelta = 0
	case models.MineLetterLoss:
		// Mover keeps the base score but the entire rack is discarded below.
	case models.MineExtraMoveBlock:
		// No effect currently defined.
	}

	if err := e.store.UpdateCellLetters(ctx, matchID, scored.covered); err != nil {
		return nil, err
	}

	// Mark the consumed tiles used; a letter-loss mine discards the whole
	// rack instead, used and unused tiles alike.
	tileIDs := make([]uuid.UUID, 0, len(consume))
	if scored.effect == models.MineLetterLoss {
		rack, err := e.store.GetRack(ctx, matchID, username)
		if err != nil {
			return nil, err
		}
		for _, t := range rack {
			tileIDs = append(tileIDs, t.ID)
		}
	} else {
		for _, t := range consume {
			tileIDs = append(tileIDs, t.ID)
		}
	}
	if err := e.store.MarkTilesUsed(ctx, tileIDs); err != nil {
		return nil, err
	}

	if seat == 1 {
		m.Player1Score += moverDelta
		m.Player2Score += opponentDelta
	} else {
		m.Player2Score += moverDelta
		m.Player1Score += opponentDelta
	}
	m.CurrentTurn = 3 - seat
	if err := e.store.UpdateMatch(ctx, m); err != nil {
		return nil, err
	}

	if err := e.replenish(ctx, matchID, username, len(strings.Split(canonical, ""))); err != nil {
		return nil, err
	}

	e.publish(MatchEvent{
		Type:     EventMoveApplied,
		MatchID:  matchID,
		Actor:    username,
		Word:     canonical,
		Score:    moverDelta,
		NextTurn: m.CurrentTurn,
	})
	e.logAction(matchID, username, "move_applied", map[string]interface{}{
		"word":   canonical,
		"base":   scored.base,
		"effect": string(scored.effect),
		"score":  moverDelta,
	})

	return &MoveResult{Score: moverDelta, Effect: scored.effect, NextTurn: m.CurrentTurn}, nil
}
