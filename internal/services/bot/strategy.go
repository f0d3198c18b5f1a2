package bot

import (
	"context"

	"github.com/mcoot/wordgame/internal/model"
)

// State is what a strategy sees when asked for a move
type State struct {
	Board *model.Board
	// Rack is the searching player's tiles
	Rack          []*model.Tile
	Score         int
	OpponentScore int
}

// Strategy defines how a bot chooses its move
type Strategy interface {
	// ChooseMove returns the move to commit, or nil if no legal move was found
	ChooseMove(ctx context.Context, st State) (*model.Move, Stats)
}

// NewStrategies builds every named strategy over one searcher
func NewStrategies(search *Searcher) map[string]Strategy {
	return map[string]Strategy{
		model.BotStrategyGreedy:  NewGreedyStrategy(search),
		model.BotStrategyMinimax: NewMinimaxStrategy(search, DefaultMinimaxDepth),
	}
}
