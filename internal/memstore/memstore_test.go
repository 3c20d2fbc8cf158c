package memstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okalpak/wordmines/internal/models"
)

func TestDeleteTicketIsCompareAndDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	tk := &models.Ticket{ID: uuid.New(), Username: "alice", Mode: models.ModeFast5Min, CreatedAt: 1}
	require.NoError(t, s.CreateTicket(ctx, tk))

	deleted, err := s.DeleteTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// The second delete loses the race and must say so.
	deleted, err = s.DeleteTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestFindOpponentTicketPicksOldestAndExcludesSelf(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateTicket(ctx, &models.Ticket{ID: uuid.New(), Username: "alice", Mode: models.ModeFast5Min, CreatedAt: 5}))
	require.NoError(t, s.CreateTicket(ctx, &models.Ticket{ID: uuid.New(), Username: "bob", Mode: models.ModeFast5Min, CreatedAt: 2}))
	require.NoError(t, s.CreateTicket(ctx, &models.Ticket{ID: uuid.New(), Username: "carol", Mode: models.ModeFast2Min, CreatedAt: 1}))

	tk, err := s.FindOpponentTicket(ctx, models.ModeFast5Min, "dave")
	require.NoError(t, err)
	require.NotNil(t, tk)
	assert.Equal(t, "bob", tk.Username, "oldest ticket of the mode wins")

	tk, err = s.FindOpponentTicket(ctx, models.ModeFast5Min, "bob")
	require.NoError(t, err)
	require.NotNil(t, tk)
	assert.Equal(t, "alice", tk.Username)

	tk, err = s.FindOpponentTicket(ctx, models.ModeExtended12Hour, "dave")
	require.NoError(t, err)
	assert.Nil(t, tk)
}

func TestGetMatchReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()

	m := &models.Match{ID: uuid.New(), Player1: "alice", Player2: "bob", IsActive: true}
	require.NoError(t, s.CreateMatch(ctx, m))

	got, err := s.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	got.Player1Score = 99

	again, err := s.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Zero(t, again.Player1Score, "mutating a read result must not leak into the store")
}

func TestGetMatchUnknownIsNilNil(t *testing.T) {
	s := New()
	m, err := s.GetMatch(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestMarkTilesUsed(t *testing.T) {
	s := New()
	ctx := context.Background()
	matchID := uuid.New()

	a := models.Tile{ID: uuid.New(), MatchID: matchID, Username: "alice", Letter: "A"}
	b := models.Tile{ID: uuid.New(), MatchID: matchID, Username: "alice", Letter: "B"}
	require.NoError(t, s.AddTiles(ctx, []models.Tile{a, b}))

	require.NoError(t, s.MarkTilesUsed(ctx, []uuid.UUID{a.ID}))

	rack, err := s.GetRack(ctx, matchID, "alice")
	require.NoError(t, err)
	require.Len(t, rack, 2)
	for _, tile := range rack {
		assert.Equal(t, tile.ID == a.ID, tile.Used)
	}
}
