// internal/game/turns_test.go
package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassFlipsTurnWithoutScoring(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, nil)

	next, err := e.PassTurn(ctx, m.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, next)

	got, err := store.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Player1Score)
	assert.Equal(t, 0, got.Player2Score)
	assert.Equal(t, 2, got.CurrentTurn)

	// Alice cannot pass on bob's turn.
	_, err = e.PassTurn(ctx, m.ID, "alice")
	require.ErrorIs(t, err, ErrForbidden)

	next, err = e.PassTurn(ctx, m.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, next)
}

func TestPassRejectsNonParticipant(t *testing.T) {
	e, store := newTestEngine(t)
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, nil)

	_, err := e.PassTurn(context.Background(), m.ID, "mallory")
	require.ErrorIs(t, err, ErrForbidden)
}

func TestSurrenderAwardsPenaltyAndCompletes(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, nil)

	// It is alice's turn, yet bob may surrender.
	out, err := e.Surrender(ctx, m.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, "alice", out.Winner)
	assert.False(t, out.Draw)

	got, err := store.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, SurrenderPenalty, got.Player1Score)
	assert.Equal(t, 0, got.Player2Score)
	assert.False(t, got.IsActive)
	assert.True(t, got.IsCompleted)

	// Every further action is rejected with the resolved outcome.
	var gameOver *GameOverError
	_, err = e.PassTurn(ctx, m.ID, "alice")
	require.ErrorAs(t, err, &gameOver)
	assert.Equal(t, "alice", gameOver.Outcome.Winner)

	_, err = e.Surrender(ctx, m.ID, "alice")
	require.ErrorAs(t, err, &gameOver)
}

func TestSurrenderRejectsNonParticipant(t *testing.T) {
	e, store := newTestEngine(t)
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, nil)

	_, err := e.Surrender(context.Background(), m.ID, "mallory")
	require.ErrorIs(t, err, ErrForbidden)
}

func TestLazyTimeoutResolvesOnAccess(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()

	var completions int
	e.BroadcastFn = func(ev MatchEvent) {
		if ev.Type == EventMatchCompleted {
			completions++
		}
	}

	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, nil)
	m.Player1Score, m.Player2Score = 12, 5
	require.NoError(t, store.UpdateMatch(ctx, m))

	advanceClock(e, 6*time.Minute)

	// The first access past the deadline finalizes the match.
	var gameOver *GameOverError
	_, err := e.PassTurn(ctx, m.ID, "alice")
	require.ErrorAs(t, err, &gameOver)
	assert.Equal(t, "alice", gameOver.Outcome.Winner)

	got, err := store.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.True(t, got.IsCompleted)

	// Subsequent accesses observe the completed match; no second flip.
	_, err = e.Surrender(ctx, m.ID, "bob")
	require.ErrorAs(t, err, &gameOver)
	state, err := e.GetMatchState(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, state.Outcome)
	assert.Equal(t, "alice", state.Outcome.Winner)

	assert.Equal(t, 1, completions, "the completion event fires exactly once")
}

func TestLazyTimeoutOnReadAccess(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, nil)

	advanceClock(e, time.Hour)

	// A pure read is enough to resolve the expiry.
	state, err := e.GetMatchState(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, state.Outcome)
	assert.True(t, state.Outcome.Draw, "equal scores resolve to a draw")
	assert.True(t, state.Match.IsCompleted)
}
