// internal/game/validate.go
package game

import (
	"context"
	"strings"

	"github.com/okalpak/wordmines/internal/models"
)

// validateMove gates a submitted move, short-circuiting on the first
// failure with no mutation at all. Order: turn ownership, placement shape,
// dictionary, rack supply. Timeout is checked by the caller before this
// runs, since expiry detection is a side effect of any match access.
//
// On success it returns the canonical uppercase word and the exact unused
// tiles to consume, one per letter.
func (e *Engine) validateMove(ctx context.Context, m *models.Match, username, word string, positions []models.Position) (string, []models.Tile, error) {
	seat := m.SeatOf(username)
	if seat == 0 || seat != m.CurrentTurn {
		return "", nil, ErrForbidden
	}

	canonical := strings.ToUpper(strings.TrimSpace(word))
	letters := strings.Split(canonical, "")
	if len(letters) == 0 || len(positions) != len(letters) {
		return "", nil, ErrInvalidPlacement
	}
	for _, pos := range positions {
		if !pos.InBounds() {
			return "", nil, ErrInvalidPlacement
		}
	}

	if !e.dict.Contains(canonical) {
		return "", nil, ErrInvalidWord
	}

	rack, err := e.store.GetRack(ctx, m.ID, username)
	if err != nil {
		return "", nil, err
	}

	// Compare the required-letter multiset against the unused tiles,
	// reserving one concrete tile per letter.
	unusedByLetter := make(map[string][]models.Tile)
	for _, t := range rack {
		if !t.Used {
			unusedByLetter[t.Letter] = append(unusedByLetter[t.Letter], t)
		}
	}

	consume := make([]models.Tile, 0, len(letters))
	for _, letter := range letters {
		avail := unusedByLetter[letter]
		if len(avail) == 0 {
			return "", nil, &InsufficientTilesError{Letter: letter}
		}
		consume = append(consume, avail[0])
		unusedByLetter[letter] = avail[1:]
	}
	return canonical, consume, nil
}
