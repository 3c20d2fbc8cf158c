// internal/game/letters.go
package game

import (
	"context"
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"github.com/okalpak/wordmines/internal/models"
)

// RackSize is the target number of unused tiles per player. A rack may hold
// fewer once the pool runs dry.
const RackSize = 7

// letterCounts is the static 98-tile distribution every match pool is
// seeded from.
var letterCounts = map[string]int{
	"A": 9, "B": 2, "C": 2, "D": 4, "E": 12, "F": 2, "G": 3, "H": 2, "I": 9,
	"J": 1, "K": 1, "L": 4, "M": 2, "N": 6, "O": 8, "P": 2, "Q": 1, "R": 6,
	"S": 4, "T": 6, "U": 4, "V": 2, "W": 2, "X": 1, "Y": 2, "Z": 1,
}

// letterPoints holds per-letter point values.
var letterPoints = map[string]int{
	"A": 1, "B": 3, "C": 3, "D": 2, "E": 1, "F": 4, "G": 2, "H": 4, "I": 1,
	"J": 8, "K": 5, "L": 1, "M": 3, "N": 1, "O": 1, "P": 3, "Q": 10, "R": 1,
	"S": 1, "T": 1, "U": 2, "V": 4, "W": 4, "X": 8, "Y": 4, "Z": 10,
}

// LetterPoints returns the point value for a letter. Letters outside the
// distribution default to 1 point.
func LetterPoints(letter string) int {
	if p, ok := letterPoints[letter]; ok {
		return p
	}
	return 1
}

// PoolDistribution returns a fresh copy of the static letter distribution.
func PoolDistribution() map[string]int {
	counts := make(map[string]int, len(letterCounts))
	for l, n := range letterCounts {
		counts[l] = n
	}
	return counts
}

// TotalTiles is the number of tiles in the static distribution.
func TotalTiles() int {
	total := 0
	for _, n := range letterCounts {
		total += n
	}
	return total
}

// seedPool writes the remaining count for every letter of the static
// distribution into the match's pool.
func (e *Engine) seedPool(ctx context.Context, matchID uuid.UUID) error {
	return e.store.SeedPool(ctx, matchID, PoolDistribution())
}

// drawTile selects uniformly at random among letters that still have
// remaining supply, decrements the pool and returns the drawn tile.
// It returns nil once the pool is exhausted.
func (e *Engine) drawTile(ctx context.Context, matchID uuid.UUID, username string) (*models.Tile, error) {
	pool, err := e.store.GetPool(ctx, matchID)
	if err != nil {
		return nil, err
	}

	var available []string
	for letter, remaining := range pool {
		if remaining > 0 {
			available = append(available, letter)
		}
	}
	if len(available) == 0 {
		return nil, nil
	}
	sort.Strings(available)

	letter := available[rand.Intn(len(available))]
	if err := e.store.SetRemaining(ctx, matchID, letter, pool[letter]-1); err != nil {
		return nil, err
	}

	tile := &models.Tile{
		ID:       uuid.New(),
		MatchID:  matchID,
		Username: username,
		Letter:   letter,
		Points:   LetterPoints(letter),
	}
	if err := e.store.AddTiles(ctx, []models.Tile{*tile}); err != nil {
		return nil, err
	}
	return tile, nil
}

// dealInitialRacks draws up to RackSize tiles for each player, fewer if the
// pool runs out mid-deal.
func (e *Engine) dealInitialRacks(ctx context.Context, matchID uuid.UUID, usernames ...string) error {
	for _, username := range usernames {
		if err := e.replenish(ctx, matchID, username, RackSize); err != nil {
			return err
		}
	}
	return nil
}

// replenish draws up to n tiles for the player, one at a time. Each draw is
// persisted individually, so a mid-exhaustion partial replenishment is
// observable and final.
func (e *Engine) replenish(ctx context.Context, matchID uuid.UUID, username string, n int) error {
	for i := 0; i < n; i++ {
		tile, err := e.drawTile(ctx, matchID, username)
		if err != nil {
			return err
		}
		if tile == nil {
			return nil // pool exhausted
		}
	}
	return nil
}
