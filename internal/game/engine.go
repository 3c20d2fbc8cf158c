// internal/game/engine.go
package game

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okalpak/wordmines/internal/models"
)

// Dictionary is the word-validity oracle the engine consults. The process
// supplies an immutable, concurrency-safe implementation at startup.
type Dictionary interface {
	Contains(word string) bool
}

// Engine orchestrates match creation and per-move processing: board and
// pool generation, move validation, mine-aware scoring, turn transitions,
// lazy timeout resolution and the matchmaking queue.
//
// Matches are independent units of concurrency. Every action and every
// lazy-timeout access runs under a per-match mutex so that scores, turn,
// rack, pool and board cells never see interleaved updates. Matchmaking
// pairing is serialized by its own mutex plus compare-and-delete removal
// in the ticket repository.
type Engine struct {
	store Store
	dict  Dictionary

	mu          sync.Mutex
	matchLocks  map[uuid.UUID]*sync.Mutex
	actionIndex map[uuid.UUID]int

	queueMu sync.Mutex

	// BroadcastFn is used to send events to live subscribers. If nil, no
	// broadcast is done.
	BroadcastFn func(ev MatchEvent)

	// now is swappable in tests.
	now func() time.Time
}

// NewEngine builds an engine on top of the given store and dictionary.
func NewEngine(store Store, dict Dictionary) *Engine {
	return &Engine{
		store:       store,
		dict:        dict,
		matchLocks:  make(map[uuid.UUID]*sync.Mutex),
		actionIndex: make(map[uuid.UUID]int),
		now:         time.Now,
	}
}

// lockMatch acquires the per-match mutex, creating it on first use.
// Lock entries are retained for the process lifetime; matches are never
// deleted, and an idle mutex costs nothing.
func (e *Engine) lockMatch(id uuid.UUID) *sync.Mutex {
	e.mu.Lock()
	l, ok := e.matchLocks[id]
	if !ok {
		l = &sync.Mutex{}
		e.matchLocks[id] = l
	}
	e.mu.Unlock()
	l.Lock()
	return l
}

// getMatchLocked loads a match under the caller-held per-match lock and
// applies lazy timeout finalization: any access to a match past its end
// time flips it to completed before the access's own logic runs. The
// returned bool reports whether the match is still playable.
func (e *Engine) getMatchLocked(ctx context.Context, id uuid.UUID) (*models.Match, bool, error) {
	m, err := e.store.GetMatch(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if m == nil {
		return nil, false, ErrNotFound
	}

	if m.IsCompleted {
		return m, false, nil
	}
	if m.Expired(e.now()) {
		if err := e.finalizeLocked(ctx, m); err != nil {
			return nil, false, err
		}
		return m, false, nil
	}
	return m, true, nil
}

// finalizeLocked completes an expired or surrendered match. The state flip
// happens exactly once; the winner is derived from the final scores.
func (e *Engine) finalizeLocked(ctx context.Context, m *models.Match) error {
	m.IsActive = false
	m.IsCompleted = true
	if err := e.store.UpdateMatch(ctx, m); err != nil {
		return err
	}

	out := m.Outcome()
	e.publish(MatchEvent{
		Type:    EventMatchCompleted,
		MatchID: m.ID,
		Winner:  out.Winner,
		Draw:    out.Draw,
	})
	e.logAction(m.ID, "", "match_completed", map[string]interface{}{
		"winner":        out.Winner,
		"draw":          out.Draw,
		"player1_score": m.Player1Score,
		"player2_score": m.Player2Score,
	})
	return nil
}
