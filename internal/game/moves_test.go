// internal/game/moves_test.go
package game

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okalpak/wordmines/internal/memstore"
	"github.com/okalpak/wordmines/internal/models"
)

// scriptedMatch creates a match directly, bypassing matchmaking, so tests
// control the board layout and exactly which tiles each player holds.
func scriptedMatch(t *testing.T, e *Engine, store *memstore.Store) *models.Match {
	t.Helper()
	ctx := context.Background()

	now := e.now()
	m := &models.Match{
		ID:          uuid.New(),
		Player1:     "alice",
		Player2:     "bob",
		Mode:        models.ModeFast5Min,
		StartTime:   now,
		EndTime:     now.Add(5 * time.Minute),
		CurrentTurn: 1,
		IsActive:    true,
	}
	require.NoError(t, store.CreateMatch(ctx, m))
	return m
}

// "GAME" scores G2 + A1 + M3 + E1 = 7 on plain cells.
const gameBase = 7

func TestSubmitMoveBasic(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, nil)
	require.NoError(t, e.seedPool(ctx, m.ID))
	giveTiles(t, store, m.ID, "alice", "G", "A", "M", "E", "X", "Y", "Z")

	res, err := e.SubmitMove(ctx, m.ID, "alice", "game", positionsFor("GAME", 7, 3))
	require.NoError(t, err)
	assert.Equal(t, gameBase, res.Score)
	assert.Empty(t, res.Effect)
	assert.Equal(t, 2, res.NextTurn)

	got, err := store.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, gameBase, got.Player1Score)
	assert.Equal(t, 0, got.Player2Score)
	assert.Equal(t, 2, got.CurrentTurn)

	// The rack is replenished back to its pre-move size.
	assert.Equal(t, 7, unusedCount(t, store, m.ID, "alice"))

	// The placed letters are on the board.
	cells, err := e.GetBoard(ctx, m.ID)
	require.NoError(t, err)
	byPos := make(map[models.Position]string)
	for _, c := range cells {
		byPos[models.Position{Row: c.Row, Col: c.Col}] = c.Letter
	}
	assert.Equal(t, "G", byPos[models.Position{Row: 7, Col: 3}])
	assert.Equal(t, "A", byPos[models.Position{Row: 7, Col: 4}])
	assert.Equal(t, "M", byPos[models.Position{Row: 7, Col: 5}])
	assert.Equal(t, "E", byPos[models.Position{Row: 7, Col: 6}])
}

func TestSubmitMoveEnforcesTurnAlternation(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, nil)
	require.NoError(t, e.seedPool(ctx, m.ID))
	giveTiles(t, store, m.ID, "alice", "G", "A", "M", "E", "W", "O", "R", "D")
	giveTiles(t, store, m.ID, "bob", "W", "O", "R", "D")

	// Bob cannot open; it is alice's turn.
	_, err := e.SubmitMove(ctx, m.ID, "bob", "word", positionsFor("WORD", 0, 0))
	require.ErrorIs(t, err, ErrForbidden)

	_, err = e.SubmitMove(ctx, m.ID, "alice", "game", positionsFor("GAME", 7, 3))
	require.NoError(t, err)

	// Alice cannot move twice in a row.
	_, err = e.SubmitMove(ctx, m.ID, "alice", "word", positionsFor("WORD", 1, 0))
	require.ErrorIs(t, err, ErrForbidden)

	res, err := e.SubmitMove(ctx, m.ID, "bob", "word", positionsFor("WORD", 2, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.NextTurn)
}

func TestSubmitMoveRejectsNonParticipant(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, nil)

	_, err := e.SubmitMove(ctx, m.ID, "mallory", "game", positionsFor("GAME", 7, 3))
	require.ErrorIs(t, err, ErrForbidden)
}

func TestSubmitMoveRejectsBadPlacement(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, nil)
	giveTiles(t, store, m.ID, "alice", "G", "A", "M", "E")

	// Position count must match the word length.
	_, err := e.SubmitMove(ctx, m.ID, "alice", "game", positionsFor("GAM", 7, 3))
	require.ErrorIs(t, err, ErrInvalidPlacement)

	// All positions must be on the board.
	_, err = e.SubmitMove(ctx, m.ID, "alice", "game", positionsFor("GAME", 7, 13))
	require.ErrorIs(t, err, ErrInvalidPlacement)

	// The empty word is not a move.
	_, err = e.SubmitMove(ctx, m.ID, "alice", "", nil)
	require.ErrorIs(t, err, ErrInvalidPlacement)
}

func TestSubmitMoveRejectsUnknownWord(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, nil)
	require.NoError(t, e.seedPool(ctx, m.ID))
	giveTiles(t, store, m.ID, "alice", "Q", "Q", "Q", "Q")

	before, err := store.GetMatch(ctx, m.ID)
	require.NoError(t, err)

	_, err = e.SubmitMove(ctx, m.ID, "alice", "qqqq", positionsFor("QQQQ", 7, 3))
	require.ErrorIs(t, err, ErrInvalidWord)

	// Nothing changed: match, rack, board.
	after, err := store.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, 4, unusedCount(t, store, m.ID, "alice"))

	cells, err := store.GetCells(ctx, m.ID)
	require.NoError(t, err)
	for _, c := range cells {
		assert.Empty(t, c.Letter)
	}
}

func TestSubmitMoveRejectsMissingTiles(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, nil)
	giveTiles(t, store, m.ID, "alice", "O", "R", "D")

	_, err := e.SubmitMove(ctx, m.ID, "alice", "word", positionsFor("WORD", 7, 3))
	var insufficient *InsufficientTilesError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "W", insufficient.Letter)
	assert.Equal(t, 3, unusedCount(t, store, m.ID, "alice"))
}

func TestSubmitMoveDuplicateLettersNeedDuplicateTiles(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, nil)

	// "JAZZ" needs two Z tiles; one is not enough.
	giveTiles(t, store, m.ID, "alice", "J", "A", "Z")
	_, err := e.SubmitMove(ctx, m.ID, "alice", "jazz", positionsFor("JAZZ", 7, 3))
	var insufficient *InsufficientTilesError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Z", insufficient.Letter)
}

func TestScoreSplitMine(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, map[models.Position]models.SpecialType{
		{Row: 7, Col: 4}: models.MineScoreSplit,
	})
	require.NoError(t, e.seedPool(ctx, m.ID))
	giveTiles(t, store, m.ID, "alice", "G", "A", "M", "E")

	res, err := e.SubmitMove(ctx, m.ID, "alice", "game", positionsFor("GAME", 7, 3))
	require.NoError(t, err)
	assert.Equal(t, models.MineScoreSplit, res.Effect)
	assert.Equal(t, gameBase*3/10, res.Score)

	got, err := store.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, gameBase*3/10, got.Player1Score)
	assert.Equal(t, 0, got.Player2Score)
}

func TestSplitScoreFloors(t *testing.T) {
	assert.Equal(t, 30, splitScore(100))
	assert.Equal(t, 2, splitScore(7))
	assert.Equal(t, 2, splitScore(9))
	assert.Equal(t, 3, splitScore(10))
	assert.Equal(t, 0, splitScore(3))
}

func TestScoreTransferMine(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, map[models.Position]models.SpecialType{
		{Row: 7, Col: 6}: models.MineScoreTransfer,
	})
	require.NoError(t, e.seedPool(ctx, m.ID))
	giveTiles(t, store, m.ID, "alice", "G", "A", "M", "E")

	res, err := e.SubmitMove(ctx, m.ID, "alice", "game", positionsFor("GAME", 7, 3))
	require.NoError(t, err)
	assert.Equal(t, models.MineScoreTransfer, res.Effect)
	assert.Equal(t, 0, res.Score)

	got, err := store.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Player1Score)
	assert.Equal(t, gameBase, got.Player2Score, "the base score goes to the opponent")
}

func TestWordCancelMine(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, map[models.Position]models.SpecialType{
		{Row: 7, Col: 3}: models.MineWordCancel,
	})
	require.NoError(t, e.seedPool(ctx, m.ID))
	giveTiles(t, store, m.ID, "alice", "G", "A", "M", "E")

	res, err := e.SubmitMove(ctx, m.ID, "alice", "game", positionsFor("GAME", 7, 3))
	require.NoError(t, err)
	assert.Equal(t, models.MineWordCancel, res.Effect)
	assert.Equal(t, 0, res.Score)

	got, err := store.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Player1Score)
	assert.Equal(t, 0, got.Player2Score)
	assert.Equal(t, 2, got.CurrentTurn, "a cancelled word still spends the turn")
}

func TestLetterLossMineDiscardsWholeRack(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, map[models.Position]models.SpecialType{
		{Row: 7, Col: 5}: models.MineLetterLoss,
	})
	require.NoError(t, e.seedPool(ctx, m.ID))
	giveTiles(t, store, m.ID, "alice", "G", "A", "M", "E", "X", "Y", "Z")

	res, err := e.SubmitMove(ctx, m.ID, "alice", "game", positionsFor("GAME", 7, 3))
	require.NoError(t, err)
	assert.Equal(t, models.MineLetterLoss, res.Effect)
	assert.Equal(t, gameBase, res.Score, "the word still scores; the rack is the casualty")

	// All 7 original tiles are gone; only the 4 replenished ones remain.
	assert.Equal(t, 4, unusedCount(t, store, m.ID, "alice"))
}

func TestLastCoveredMineWins(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, map[models.Position]models.SpecialType{
		{Row: 7, Col: 3}: models.MineScoreSplit,
		{Row: 7, Col: 6}: models.MineScoreTransfer,
	})
	require.NoError(t, e.seedPool(ctx, m.ID))
	giveTiles(t, store, m.ID, "alice", "G", "A", "M", "E")

	res, err := e.SubmitMove(ctx, m.ID, "alice", "game", positionsFor("GAME", 7, 3))
	require.NoError(t, err)
	assert.Equal(t, models.MineScoreTransfer, res.Effect)
	assert.Equal(t, 0, res.Score)

	got, err := store.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, gameBase, got.Player2Score)
}

func TestExtraMoveBlockMineHasNoEffect(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, map[models.Position]models.SpecialType{
		{Row: 7, Col: 3}: models.MineExtraMoveBlock,
	})
	require.NoError(t, e.seedPool(ctx, m.ID))
	giveTiles(t, store, m.ID, "alice", "G", "A", "M", "E")

	res, err := e.SubmitMove(ctx, m.ID, "alice", "game", positionsFor("GAME", 7, 3))
	require.NoError(t, err)
	assert.Equal(t, models.MineExtraMoveBlock, res.Effect)
	assert.Equal(t, gameBase, res.Score)
	assert.Equal(t, 2, res.NextTurn)
}

func TestBonusCellsAreInert(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	m := scriptedMatch(t, e, store)
	plainBoard(t, store, m.ID, map[models.Position]models.SpecialType{
		{Row: 7, Col: 3}: models.SpecialTripleWord,
		{Row: 7, Col: 4}: models.SpecialDoubleLetter,
	})
	require.NoError(t, e.seedPool(ctx, m.ID))
	giveTiles(t, store, m.ID, "alice", "G", "A", "M", "E")

	res, err := e.SubmitMove(ctx, m.ID, "alice", "game", positionsFor("GAME", 7, 3))
	require.NoError(t, err)
	assert.Empty(t, res.Effect)
	assert.Equal(t, gameBase, res.Score, "bonus multipliers apply no scoring change")
}
