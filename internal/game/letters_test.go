// internal/game/letters_test.go
package game

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalTiles(t *testing.T) {
	assert.Equal(t, 98, TotalTiles())
}

func TestLetterPointsDefaultsToOne(t *testing.T) {
	assert.Equal(t, 10, LetterPoints("Q"))
	assert.Equal(t, 1, LetterPoints("É"))
}

func TestPoolDistributionIsACopy(t *testing.T) {
	dist := PoolDistribution()
	dist["A"] = 0
	assert.Equal(t, 9, PoolDistribution()["A"])
}

func TestDrawTileExhaustsPool(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	matchID := uuid.New()

	require.NoError(t, store.SeedPool(ctx, matchID, map[string]int{"A": 2}))

	for i := 0; i < 2; i++ {
		tile, err := e.drawTile(ctx, matchID, "alice")
		require.NoError(t, err)
		require.NotNil(t, tile)
		assert.Equal(t, "A", tile.Letter)
		assert.Equal(t, 1, tile.Points)
	}

	tile, err := e.drawTile(ctx, matchID, "alice")
	require.NoError(t, err)
	assert.Nil(t, tile, "empty pool must yield no tile")

	pool, err := store.GetPool(ctx, matchID)
	require.NoError(t, err)
	assert.Equal(t, 0, pool["A"])
}

func TestReplenishStopsAtExhaustion(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	matchID := uuid.New()

	require.NoError(t, store.SeedPool(ctx, matchID, map[string]int{"E": 3}))
	require.NoError(t, e.replenish(ctx, matchID, "alice", 5))

	assert.Equal(t, 3, unusedCount(t, store, matchID, "alice"))
}

func TestDealPreservesTileConservation(t *testing.T) {
	e, store := newTestEngine(t)
	ctx := context.Background()
	matchID := uuid.New()

	require.NoError(t, e.seedPool(ctx, matchID))
	require.NoError(t, e.dealInitialRacks(ctx, matchID, "alice", "bob"))

	pool, err := store.GetPool(ctx, matchID)
	require.NoError(t, err)
	remaining := 0
	for _, n := range pool {
		remaining += n
	}
	dealt := unusedCount(t, store, matchID, "alice") + unusedCount(t, store, matchID, "bob")
	assert.Equal(t, TotalTiles(), remaining+dealt)
	assert.Equal(t, 2*RackSize, dealt)
}
