package bot

import (
	"github.com/mcoot/wordgame/internal/model"
)

// CandidateCells returns every empty cell next to an occupied one, in row
// order. On an empty board the opening cell is the only candidate.
func CandidateCells(b *model.Board) []model.Position {
	if b.IsEmpty() {
		return []model.Position{b.OpeningCell()}
	}

	var cells []model.Position
	for row := range b.Size {
		for col := range b.Size {
			pos := model.Position{Row: row, Col: col}
			if !b.IsOccupied(pos) && b.HasOccupiedNeighbor(pos) {
				cells = append(cells, pos)
			}
		}
	}
	return cells
}

// Selections calls fn with every ordered selection of k distinct indices
// from [0, n), in lexicographic order. fn must not keep idx. It stops early
// and returns false as soon as fn returns false.
func Selections(n, k int, fn func(idx []int) bool) bool {
	if k <= 0 || k > n {
		return true
	}

	idx := make([]int, k)
	used := make([]bool, n)
	idx[0] = -1
	depth := 0

	for depth >= 0 {
		if cur := idx[depth]; cur >= 0 {
			used[cur] = false
		}

		next := idx[depth] + 1
		for next < n && used[next] {
			next++
		}
		if next >= n {
			idx[depth] = -1
			depth--
			continue
		}

		idx[depth] = next
		used[next] = true

		if depth == k-1 {
			if !fn(idx) {
				return false
			}
			continue
		}

		depth++
		idx[depth] = -1
	}
	return true
}

// emptyRun counts consecutive empty in-bounds cells from start along o
func emptyRun(b *model.Board, start model.Position, o model.Orientation) int {
	n := 0
	for pos := start; b.CanPlace(pos); pos = pos.Step(o, 1) {
		n++
	}
	return n
}

func selectionKey(tiles []*model.Tile, idx []int) string {
	letters := make([]rune, len(idx))
	for i, ti := range idx {
		letters[i] = tiles[ti].Letter
	}
	return string(letters)
}
