package bot

import (
	"context"

	"github.com/mcoot/wordgame/internal/model"
)

// GreedyStrategy plays the highest-scoring move available right now.
// Ties go to the move enumerated first.
type GreedyStrategy struct {
	search *Searcher
}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy(search *Searcher) *GreedyStrategy {
	return &GreedyStrategy{search: search}
}

// ChooseMove searches anchored placements first and, only if none is legal,
// every single-tile placement on the board
func (g *GreedyStrategy) ChooseMove(ctx context.Context, st State) (*model.Move, Stats) {
	m := g.search.meter(ctx)

	var best *model.Move
	keep := func(mv model.Move) bool {
		if best == nil || mv.Score > best.Score {
			best = &mv
		}
		return true
	}

	g.search.enumerate(m, st.Board, st.Rack, keep)
	if best == nil && !m.done() {
		g.search.singleTile(m, st.Board, st.Rack, keep)
	}

	return best, m.stats()
}

var _ Strategy = (*GreedyStrategy)(nil)
