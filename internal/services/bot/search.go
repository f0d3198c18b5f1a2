package bot

import (
	"context"
	"log/slog"
	"sort"

	"github.com/samber/lo"

	"github.com/mcoot/wordgame/internal/dependencies/clock"
	"github.com/mcoot/wordgame/internal/model"
	"github.com/mcoot/wordgame/internal/services/board"
	"github.com/mcoot/wordgame/internal/services/scoring"
)

// Searcher enumerates legal moves for a rack against a board. Every
// candidate is placed on the real board, validated, scored and retracted
// again, so the board is unchanged when a search returns.
type Searcher struct {
	boards  *board.Service
	scoring *scoring.Service
	clock   clock.Clock
	budget  Budget
	logger  *slog.Logger
}

// NewSearcher creates a Searcher bounded by budget
func NewSearcher(boards *board.Service, scoring *scoring.Service, clk clock.Clock, budget Budget, logger *slog.Logger) *Searcher {
	return &Searcher{
		boards:  boards,
		scoring: scoring,
		clock:   clk,
		budget:  budget,
		logger:  logger.With(slog.String("component", "search")),
	}
}

func (s *Searcher) meter(ctx context.Context) *meter {
	return newMeter(ctx, s.clock, s.budget)
}

// Moves returns every legal move for the rack, highest score first
func (s *Searcher) Moves(ctx context.Context, b *model.Board, rack []*model.Tile) ([]model.Move, Stats) {
	m := s.meter(ctx)
	return s.collect(m, b, rack), m.stats()
}

func (s *Searcher) collect(m *meter, b *model.Board, rack []*model.Tile) []model.Move {
	var moves []model.Move
	s.enumerate(m, b, rack, func(mv model.Move) bool {
		moves = append(moves, mv)
		return true
	})
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Score > moves[j].Score
	})
	return moves
}

// enumerate visits every legal move that lays 1..7 rack tiles on
// consecutive empty cells from a candidate cell. Returns false if the visit
// stopped or the budget ran out.
func (s *Searcher) enumerate(m *meter, b *model.Board, rack []*model.Tile, visit func(model.Move) bool) bool {
	tiles := available(rack)
	maxK := min(model.RackSize, len(tiles))

	for _, start := range CandidateCells(b) {
		for _, o := range []model.Orientation{model.Horizontal, model.Vertical} {
			run := emptyRun(b, start, o)
			for k := 1; k <= min(maxK, run); k++ {
				// A single tile is the same placement in both orientations
				if k == 1 && o == model.Vertical {
					continue
				}

				seen := make(map[string]bool)
				ok := Selections(len(tiles), k, func(idx []int) bool {
					key := selectionKey(tiles, idx)
					if seen[key] {
						return true
					}
					seen[key] = true
					return s.try(m, b, tiles, idx, start, o, visit)
				})
				if !ok {
					return false
				}
			}
		}
	}
	return true
}

// singleTile visits every legal one-tile move on any empty cell of the board
func (s *Searcher) singleTile(m *meter, b *model.Board, rack []*model.Tile, visit func(model.Move) bool) bool {
	tiles := available(rack)

	for row := range b.Size {
		for col := range b.Size {
			pos := model.Position{Row: row, Col: col}
			if b.IsOccupied(pos) {
				continue
			}
			seen := make(map[rune]bool)
			for i, t := range tiles {
				if seen[t.Letter] {
					continue
				}
				seen[t.Letter] = true
				if !s.try(m, b, tiles, []int{i}, pos, model.Horizontal, visit) {
					return false
				}
			}
		}
	}
	return true
}

// try places the selected tiles from start along o, then validates and
// scores the placement once per letter assignment of any blanks among them.
// Everything is retracted before returning.
func (s *Searcher) try(m *meter, b *model.Board, tiles []*model.Tile, idx []int, start model.Position, o model.Orientation, visit func(model.Move) bool) bool {
	placed := make([]*model.Tile, 0, len(idx))
	var blanks []*model.Tile

	defer func() {
		for i := len(placed) - 1; i >= 0; i-- {
			b.Remove(placed[i])
		}
		for _, t := range blanks {
			t.Assigned = 0
		}
	}()

	for i, ti := range idx {
		t := tiles[ti]
		if !b.Place(t, start.Step(o, i)) {
			return true
		}
		placed = append(placed, t)
		if t.IsBlank() {
			blanks = append(blanks, t)
		}
	}

	// Blanks take every letter A-Z; with two blanks that is 26*26 combinations
	combinations := 1
	for range blanks {
		combinations *= 26
	}

	for n := range combinations {
		rest := n
		for _, t := range blanks {
			t.Assigned = 'A' + rune(rest%26)
			rest /= 26
		}

		if !m.tick() {
			return false
		}

		v := s.boards.ValidateTurn(b)
		if !v.Valid {
			continue
		}

		mv := model.Move{
			Placements: lo.Map(placed, func(t *model.Tile, _ int) model.Placement {
				return model.Placement{Tile: t, Pos: t.Location.Pos, BlankAs: t.Assigned}
			}),
			Orientation: v.Main.Orientation,
			Word:        v.Main.Word,
			Score:       s.scoring.TurnScore(b) + s.scoring.Bonus(len(placed)),
		}
		if !visit(mv) {
			return false
		}
	}
	return true
}

// apply lays a move on the board as if it had been committed, runs fn and
// lifts the move off again, restoring each tile's location
func (s *Searcher) apply(b *model.Board, mv model.Move, fn func() int) int {
	saved := make([]model.Location, len(mv.Placements))
	placed := make([]*model.Tile, 0, len(mv.Placements))

	for i, p := range mv.Placements {
		saved[i] = p.Tile.Location
		if !b.Place(p.Tile, p.Pos) {
			break
		}
		p.Tile.Assigned = p.BlankAs
		placed = append(placed, p.Tile)
	}
	b.Commit()

	value := fn()

	for i := len(placed) - 1; i >= 0; i-- {
		t := placed[i]
		b.Lift(t, saved[i])
		t.Assigned = 0
	}
	return value
}

// available drops tiles that are already on the board
func available(rack []*model.Tile) []*model.Tile {
	return lo.Filter(rack, func(t *model.Tile, _ int) bool {
		return t.Location.Kind != model.LocationBoard
	})
}
