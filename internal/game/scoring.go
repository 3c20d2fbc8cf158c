// internal/game/scoring.go
package game

import (
	"strings"

	"github.com/okalpak/wordmines/internal/models"
)

// moveEffects is the set of mine kinds that participate in scoring. The
// other special types on the board (bonus multipliers, area_ban,
// letter_ban, extra_move_joker) are generated but inert here.
var moveEffects = map[models.SpecialType]bool{
	models.MineScoreSplit:     true,
	models.MineScoreTransfer:  true,
	models.MineLetterLoss:     true,
	models.MineWordCancel:     true,
	models.MineExtraMoveBlock: true,
}

// scoredMove is the outcome of writing a word onto the board.
type scoredMove struct {
	base    int
	effect  models.SpecialType // "" when no mine effect was triggered
	covered []models.Cell      // the cells that received a letter
}

// scoreMove writes each placed letter into its target cell and sums the
// base score from the static point table. Every covered cell's special
// type is examined in placement order; when a move covers more than one
// effect-bearing mine, the last examined one wins. There is no documented
// priority among mines, so none is invented here.
func scoreMove(cells []models.Cell, word string, positions []models.Position) scoredMove {
	byPos := make(map[models.Position]models.Cell, len(cells))
	for _, c := range cells {
		byPos[models.Position{Row: c.Row, Col: c.Col}] = c
	}

	letters := strings.Split(word, "")
	out := scoredMove{covered: make([]models.Cell, 0, len(letters))}
	for i, letter := range letters {
		pos := positions[i]
		cell := byPos[pos]
		cell.Letter = letter
		out.base += LetterPoints(letter)
		if moveEffects[cell.SpecialType] {
			out.effect = cell.SpecialType
		}
		out.covered = append(out.covered, cell)
	}
	return out
}

// splitScore applies the score-split mine: floor(base x 0.3).
func splitScore(base int) int {
	return base * 3 / 10
}
