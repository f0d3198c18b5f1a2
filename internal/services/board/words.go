package board

import (
	"github.com/mcoot/wordgame/internal/model"
)

// WordRef locates one word formed on the board
type WordRef struct {
	Word        string
	Start       model.Position
	Orientation model.Orientation
}

// Len returns the number of letters in the word
func (w WordRef) Len() int {
	return len([]rune(w.Word))
}

// Cells returns the positions the word covers
func (w WordRef) Cells() []model.Position {
	n := w.Len()
	cells := make([]model.Position, n)
	for i := range n {
		cells[i] = w.Start.Step(w.Orientation, i)
	}
	return cells
}

// lineOf returns the orientation shared by all positions. A single position
// takes the orientation along which it already forms a word, preferring
// horizontal. ok is false when the positions span several rows and columns.
func lineOf(b *model.Board, positions []model.Position) (model.Orientation, bool) {
	if len(positions) == 1 {
		pos := positions[0]
		if len([]rune(b.WordAt(pos, model.Horizontal))) > 1 {
			return model.Horizontal, true
		}
		if len([]rune(b.WordAt(pos, model.Vertical))) > 1 {
			return model.Vertical, true
		}
		return model.Horizontal, true
	}

	sameRow, sameCol := true, true
	for _, p := range positions[1:] {
		if p.Row != positions[0].Row {
			sameRow = false
		}
		if p.Col != positions[0].Col {
			sameCol = false
		}
	}
	switch {
	case sameRow:
		return model.Horizontal, true
	case sameCol:
		return model.Vertical, true
	default:
		return model.Horizontal, false
	}
}

// MainWord returns the word formed along the turn's primary orientation.
// The start is found by scanning backward from the first placed tile, so
// committed letters before it are included. ok is false when no tiles are
// placed or they do not share a line.
func MainWord(b *model.Board) (WordRef, bool) {
	positions := b.CurrentPositions()
	if len(positions) == 0 {
		return WordRef{}, false
	}
	o, ok := lineOf(b, positions)
	if !ok {
		return WordRef{}, false
	}
	return WordRef{
		Word:        b.WordAt(positions[0], o),
		Start:       b.WordStart(positions[0], o),
		Orientation: o,
	}, true
}

// CrossWords returns the distinct perpendicular words longer than one letter
// running through the current-turn tiles
func CrossWords(b *model.Board, main WordRef) []WordRef {
	perp := main.Orientation.Perpendicular()
	seen := make(map[model.Position]bool)

	var words []WordRef
	for _, pos := range b.CurrentPositions() {
		word := b.WordAt(pos, perp)
		if len([]rune(word)) <= 1 {
			continue
		}
		start := b.WordStart(pos, perp)
		if seen[start] {
			continue
		}
		seen[start] = true
		words = append(words, WordRef{Word: word, Start: start, Orientation: perp})
	}
	return words
}
