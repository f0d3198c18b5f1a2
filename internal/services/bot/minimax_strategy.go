package bot

import (
	"context"
	"math"

	"github.com/mcoot/wordgame/internal/model"
)

// DefaultMinimaxDepth counts the bot's own move as the first ply
const DefaultMinimaxDepth = 2

// MinimaxStrategy looks ahead with alpha-beta pruning. A leaf is valued as
// the bot's score minus the opponent's.
//
// The opponent's rack is unknown, so its replies are searched with the
// bot's own remaining tiles. This overrates replies that happen to suit the
// bot's rack.
type MinimaxStrategy struct {
	search *Searcher
	depth  int
}

// NewMinimaxStrategy creates a MinimaxStrategy searching depth plies
func NewMinimaxStrategy(search *Searcher, depth int) *MinimaxStrategy {
	return &MinimaxStrategy{
		search: search,
		depth:  max(depth, 1),
	}
}

// ChooseMove runs the search from the root. When the budget runs out the
// best root move valued so far is returned.
func (s *MinimaxStrategy) ChooseMove(ctx context.Context, st State) (*model.Move, Stats) {
	m := s.search.meter(ctx)

	moves := s.search.collect(m, st.Board, st.Rack)
	if len(moves) == 0 {
		var best *model.Move
		if !m.done() {
			s.search.singleTile(m, st.Board, st.Rack, func(mv model.Move) bool {
				if best == nil || mv.Score > best.Score {
					best = &mv
				}
				return true
			})
		}
		return best, m.stats()
	}

	best := &moves[0]
	alpha := math.MinInt
	for i := range moves {
		if m.done() {
			break
		}
		mv := moves[i]
		value := s.search.apply(st.Board, mv, func() int {
			return s.value(m, st, s.depth-1, false, st.Score+mv.Score, st.OpponentScore, alpha, math.MaxInt)
		})
		// A child cut short by the budget is not a trustworthy value
		if m.done() && i > 0 {
			break
		}
		if value > alpha {
			alpha = value
			best = &moves[i]
		}
	}

	return best, m.stats()
}

func (s *MinimaxStrategy) value(m *meter, st State, depth int, maximizing bool, own, opponent, alpha, beta int) int {
	if depth == 0 || m.done() {
		return own - opponent
	}

	moves := s.search.collect(m, st.Board, st.Rack)
	if len(moves) == 0 {
		return own - opponent
	}

	if maximizing {
		v := math.MinInt
		for _, mv := range moves {
			v = max(v, s.search.apply(st.Board, mv, func() int {
				return s.value(m, st, depth-1, false, own+mv.Score, opponent, alpha, beta)
			}))
			alpha = max(alpha, v)
			if beta <= alpha {
				break
			}
		}
		return v
	}

	v := math.MaxInt
	for _, mv := range moves {
		v = min(v, s.search.apply(st.Board, mv, func() int {
			return s.value(m, st, depth-1, true, own, opponent+mv.Score, alpha, beta)
		}))
		beta = min(beta, v)
		if beta <= alpha {
			break
		}
	}
	return v
}

var _ Strategy = (*MinimaxStrategy)(nil)
