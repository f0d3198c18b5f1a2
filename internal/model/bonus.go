package model

// Bonus is the premium type of a board cell
type Bonus int

const (
	BonusNone Bonus = iota
	BonusDoubleLetter
	BonusTripleLetter
	BonusDoubleWord
	BonusTripleWord
)

// LetterMultiplier returns the multiplier applied to a single letter
func (b Bonus) LetterMultiplier() int {
	switch b {
	case BonusDoubleLetter:
		return 2
	case BonusTripleLetter:
		return 3
	default:
		return 1
	}
}

// WordMultiplier returns the multiplier applied to a whole word
func (b Bonus) WordMultiplier() int {
	switch b {
	case BonusDoubleWord:
		return 2
	case BonusTripleWord:
		return 3
	default:
		return 1
	}
}

// Code returns the short label used in snapshots
func (b Bonus) Code() string {
	switch b {
	case BonusDoubleLetter:
		return "DL"
	case BonusTripleLetter:
		return "TL"
	case BonusDoubleWord:
		return "DW"
	case BonusTripleWord:
		return "TW"
	default:
		return ""
	}
}

// bonusQuadrant is the top-left quadrant (including the centre row and
// column) of the standard layout. The full board mirrors it on both axes.
//
//	T triple word, D double word, t triple letter, d double letter
var bonusQuadrant = [8]string{
	"T..d...T",
	".D...t..",
	"..D...d.",
	"d..D...d",
	"....D...",
	".t...t..",
	"..d...d.",
	"T..d...D",
}

func bonusFromCode(c byte) Bonus {
	switch c {
	case 'd':
		return BonusDoubleLetter
	case 't':
		return BonusTripleLetter
	case 'D':
		return BonusDoubleWord
	case 'T':
		return BonusTripleWord
	default:
		return BonusNone
	}
}

// standardBonusLayout builds the symmetric bonus map for a BoardSize board
func standardBonusLayout() [][]Bonus {
	layout := make([][]Bonus, BoardSize)
	for row := range BoardSize {
		layout[row] = make([]Bonus, BoardSize)
		qr := min(row, BoardSize-1-row)
		for col := range BoardSize {
			qc := min(col, BoardSize-1-col)
			layout[row][col] = bonusFromCode(bonusQuadrant[qr][qc])
		}
	}
	return layout
}
