// internal/game/board.go
package game

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"github.com/okalpak/wordmines/internal/models"
)

// bonusLayout is the fixed, mode-independent bonus cell layout:
// 8 triple-word, 8 double-word, 9 triple-letter and 24 double-letter cells.
var bonusLayout = map[models.Position]models.SpecialType{
	// triple word (8)
	{Row: 0, Col: 2}: models.SpecialTripleWord, {Row: 0, Col: 12}: models.SpecialTripleWord,
	{Row: 2, Col: 0}: models.SpecialTripleWord, {Row: 2, Col: 14}: models.SpecialTripleWord,
	{Row: 12, Col: 0}: models.SpecialTripleWord, {Row: 12, Col: 14}: models.SpecialTripleWord,
	{Row: 14, Col: 2}: models.SpecialTripleWord, {Row: 14, Col: 12}: models.SpecialTripleWord,

	// double word (8)
	{Row: 2, Col: 7}: models.SpecialDoubleWord, {Row: 3, Col: 3}: models.SpecialDoubleWord,
	{Row: 3, Col: 11}: models.SpecialDoubleWord, {Row: 7, Col: 2}: models.SpecialDoubleWord,
	{Row: 7, Col: 12}: models.SpecialDoubleWord, {Row: 11, Col: 3}: models.SpecialDoubleWord,
	{Row: 11, Col: 11}: models.SpecialDoubleWord, {Row: 12, Col: 7}: models.SpecialDoubleWord,

	// triple letter (9)
	{Row: 1, Col: 1}: models.SpecialTripleLetter, {Row: 1, Col: 13}: models.SpecialTripleLetter,
	{Row: 4, Col: 7}: models.SpecialTripleLetter, {Row: 7, Col: 4}: models.SpecialTripleLetter,
	{Row: 7, Col: 7}: models.SpecialTripleLetter, {Row: 7, Col: 10}: models.SpecialTripleLetter,
	{Row: 10, Col: 7}: models.SpecialTripleLetter, {Row: 13, Col: 1}: models.SpecialTripleLetter,
	{Row: 13, Col: 13}: models.SpecialTripleLetter,

	// double letter (24)
	{Row: 0, Col: 5}: models.SpecialDoubleLetter, {Row: 0, Col: 9}: models.SpecialDoubleLetter,
	{Row: 1, Col: 6}: models.SpecialDoubleLetter, {Row: 1, Col: 8}: models.SpecialDoubleLetter,
	{Row: 4, Col: 4}: models.SpecialDoubleLetter, {Row: 4, Col: 10}: models.SpecialDoubleLetter,
	{Row: 5, Col: 0}: models.SpecialDoubleLetter, {Row: 5, Col: 5}: models.SpecialDoubleLetter,
	{Row: 5, Col: 9}: models.SpecialDoubleLetter, {Row: 5, Col: 14}: models.SpecialDoubleLetter,
	{Row: 6, Col: 1}: models.SpecialDoubleLetter, {Row: 6, Col: 13}: models.SpecialDoubleLetter,
	{Row: 8, Col: 1}: models.SpecialDoubleLetter, {Row: 8, Col: 13}: models.SpecialDoubleLetter,
	{Row: 9, Col: 0}: models.SpecialDoubleLetter, {Row: 9, Col: 5}: models.SpecialDoubleLetter,
	{Row: 9, Col: 9}: models.SpecialDoubleLetter, {Row: 9, Col: 14}: models.SpecialDoubleLetter,
	{Row: 10, Col: 4}: models.SpecialDoubleLetter, {Row: 10, Col: 10}: models.SpecialDoubleLetter,
	{Row: 13, Col: 6}: models.SpecialDoubleLetter, {Row: 13, Col: 8}: models.SpecialDoubleLetter,
	{Row: 14, Col: 5}: models.SpecialDoubleLetter, {Row: 14, Col: 9}: models.SpecialDoubleLetter,
}

// mineKind pairs a mine special type with how many of it each board gets.
type mineKind struct {
	kind  models.SpecialType
	count int
}

// mineDistribution places 23 mine cells of 8 kinds per board. The last
// three kinds are generated but carry no defined scoring effect.
var mineDistribution = []mineKind{
	{models.MineScoreSplit, 5},
	{models.MineScoreTransfer, 4},
	{models.MineLetterLoss, 3},
	{models.MineExtraMoveBlock, 2},
	{models.MineWordCancel, 2},
	{models.MineAreaBan, 2},
	{models.MineLetterBan, 3},
	{models.MineExtraMoveJoker, 2},
}

// GenerateBoard creates the 225 cells for a match: the fixed bonus layout
// first, then the mines at uniformly random free positions, remaining cells
// plain. It is idempotent; when a board already exists for the match it is
// a no-op.
func (e *Engine) GenerateBoard(ctx context.Context, matchID uuid.UUID) error {
	exists, err := e.store.BoardExists(ctx, matchID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	special := make(map[models.Position]models.SpecialType, len(bonusLayout))
	for pos, kind := range bonusLayout {
		special[pos] = kind
	}

	// Rejection-sample mine positions until each lands on a free cell.
	for _, mk := range mineDistribution {
		for placed := 0; placed < mk.count; {
			pos := models.Position{Row: rand.Intn(models.BoardSize), Col: rand.Intn(models.BoardSize)}
			if _, taken := special[pos]; taken {
				continue
			}
			special[pos] = mk.kind
			placed++
		}
	}

	cells := make([]models.Cell, 0, models.BoardSize*models.BoardSize)
	for row := 0; row < models.BoardSize; row++ {
		for col := 0; col < models.BoardSize; col++ {
			cells = append(cells, models.Cell{
				MatchID:     matchID,
				Row:         row,
				Col:         col,
				SpecialType: special[models.Position{Row: row, Col: col}],
			})
		}
	}
	return e.store.CreateCells(ctx, matchID, cells)
}
