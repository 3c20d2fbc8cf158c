// internal/game/events.go
package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/okalpak/wordmines/internal/cache"
)

// MatchEventType is an enum-like type for broadcasting match actions.
type MatchEventType string

const (
	EventMatchCreated   MatchEventType = "match_created"
	EventMoveApplied    MatchEventType = "move_applied"
	EventTurnPassed     MatchEventType = "turn_passed"
	EventSurrendered    MatchEventType = "surrendered"
	EventMatchCompleted MatchEventType = "match_completed"
)

// MatchEvent holds data about an engine action in a consistent format for
// live subscribers. Publication never affects engine semantics; a match
// with no subscribers behaves identically.
type MatchEvent struct {
	Type     MatchEventType `json:"type"`
	MatchID  uuid.UUID      `json:"match_id"`
	Actor    string         `json:"actor,omitempty"`
	Word     string         `json:"word,omitempty"`
	Score    int            `json:"score,omitempty"`
	NextTurn int            `json:"next_turn,omitempty"`
	Winner   string         `json:"winner,omitempty"`
	Draw     bool           `json:"draw,omitempty"`
}

// publish fans an event out to the installed broadcaster, if any.
func (e *Engine) publish(ev MatchEvent) {
	if e.BroadcastFn != nil {
		e.BroadcastFn(ev)
	}
}

// logAction pushes an action record onto the history queue for the
// historian. Fire and forget; history must never block or fail an action.
func (e *Engine) logAction(matchID uuid.UUID, actor, actionType string, payload map[string]interface{}) {
	e.mu.Lock()
	e.actionIndex[matchID]++
	idx := e.actionIndex[matchID]
	e.mu.Unlock()

	record := cache.MatchActionRecord{
		MatchID:       matchID,
		ActionIndex:   idx,
		ActorUsername: actor,
		ActionType:    actionType,
		ActionPayload: payload,
		Timestamp:     time.Now().UnixMilli(),
	}
	go func() {
		_ = cache.PublishMatchAction(context.Background(), record)
	}()
}
