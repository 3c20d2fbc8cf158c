// internal/game/queries.go
package game

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/okalpak/wordmines/internal/models"
)

// MatchState is the summary returned for a single match. Outcome is set
// only once the match is completed.
type MatchState struct {
	Match   *models.Match        `json:"match"`
	Outcome *models.MatchOutcome `json:"outcome,omitempty"`
}

// GetMatchState returns the match summary. Like every match access, it
// applies lazy timeout finalization first, so a read can be what flips an
// expired match to completed.
func (e *Engine) GetMatchState(ctx context.Context, matchID uuid.UUID) (*MatchState, error) {
	l := e.lockMatch(matchID)
	defer l.Unlock()

	m, _, err := e.getMatchLocked(ctx, matchID)
	if err != nil {
		return nil, err
	}

	state := &MatchState{Match: m}
	if m.IsCompleted {
		out := m.Outcome()
		state.Outcome = &out
	}
	return state, nil
}

// GetBoard returns all 225 cells of the match board in row-major order.
func (e *Engine) GetBoard(ctx context.Context, matchID uuid.UUID) ([]models.Cell, error) {
	l := e.lockMatch(matchID)
	defer l.Unlock()

	if _, _, err := e.getMatchLocked(ctx, matchID); err != nil {
		return nil, err
	}

	cells, err := e.store.GetCells(ctx, matchID)
	if err != nil {
		return nil, err
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells, nil
}

// GetRack returns the player's unused tiles.
func (e *Engine) GetRack(ctx context.Context, matchID uuid.UUID, username string) ([]models.Tile, error) {
	l := e.lockMatch(matchID)
	defer l.Unlock()

	m, _, err := e.getMatchLocked(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.SeatOf(username) == 0 {
		return nil, ErrForbidden
	}

	rack, err := e.store.GetRack(ctx, matchID, username)
	if err != nil {
		return nil, err
	}
	unused := make([]models.Tile, 0, RackSize)
	for _, t := range rack {
		if !t.Used {
			unused = append(unused, t)
		}
	}
	return unused, nil
}

// ListActiveMatches returns the user's in-progress matches.
func (e *Engine) ListActiveMatches(ctx context.Context, username string) ([]*models.Match, error) {
	return e.store.ListActiveByUser(ctx, username)
}

// ListCompletedMatches returns the user's finished matches.
func (e *Engine) ListCompletedMatches(ctx context.Context, username string) ([]*models.Match, error) {
	return e.store.ListCompletedByUser(ctx, username)
}

// GetWinStats derives win statistics from the user's completed matches.
// Draws count as played but not won.
func (e *Engine) GetWinStats(ctx context.Context, username string) (*models.WinStats, error) {
	user, err := e.store.LookupUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	completed, err := e.store.ListCompletedByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	stats := &models.WinStats{Played: len(completed)}
	for _, m := range completed {
		if out := m.Outcome(); out.Winner == username {
			stats.Wins++
		}
	}
	if stats.Played > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.Played)
	}
	return stats, nil
}
