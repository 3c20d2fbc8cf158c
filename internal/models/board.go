package models

import "github.com/google/uuid"

// BoardSize is the edge length of the square board.
const BoardSize = 15

// SpecialType tags a board cell with its bonus or mine kind. Plain cells
// carry the empty string.
type SpecialType string

// Bonus cells occupy a fixed layout. They are generated on every board but
// currently apply no scoring multiplier.
const (
	SpecialDoubleLetter SpecialType = "double_letter"
	SpecialTripleLetter SpecialType = "triple_letter"
	SpecialDoubleWord   SpecialType = "double_word"
	SpecialTripleWord   SpecialType = "triple_word"
)

// Mine cells are placed at uniformly random free positions. The last five
// kinds perturb scoring or rack state when covered; area_ban, letter_ban and
// extra_move_joker are generated but have no defined effect, and
// extra_move_block is a defined entry whose effect is a no-op.
const (
	MineScoreSplit     SpecialType = "score_split"
	MineScoreTransfer  SpecialType = "score_transfer"
	MineLetterLoss     SpecialType = "letter_loss"
	MineExtraMoveBlock SpecialType = "extra_move_block"
	MineWordCancel     SpecialType = "word_cancel"
	MineAreaBan        SpecialType = "area_ban"
	MineLetterBan      SpecialType = "letter_ban"
	MineExtraMoveJoker SpecialType = "extra_move_joker"
)

// IsMine reports whether the special type belongs to the mine pool, as
// opposed to a fixed bonus cell or a plain cell.
func (s SpecialType) IsMine() bool {
	switch s {
	case MineScoreSplit, MineScoreTransfer, MineLetterLoss, MineExtraMoveBlock,
		MineWordCancel, MineAreaBan, MineLetterBan, MineExtraMoveJoker:
		return true
	}
	return false
}

// Cell is one of the 225 board positions of a match. Letter is empty until
// a move covers the cell; a later move landing on the same cell overwrites it.
type Cell struct {
	MatchID     uuid.UUID   `json:"-"`
	Row         int         `json:"row"`
	Col         int         `json:"col"`
	Letter      string      `json:"letter,omitempty"`
	SpecialType SpecialType `json:"special_type,omitempty"`
}

// Position addresses a single board cell in a move submission.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the position addresses a real cell.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}
