package bot

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/wordgame/internal/model"
	"github.com/mcoot/wordgame/internal/services/board"
	"github.com/mcoot/wordgame/internal/services/inventory"
	"github.com/mcoot/wordgame/internal/services/scoring"
)

// Service creates computer players
type Service struct {
	boardService   *board.Service
	scoringService *scoring.Service
	strategies     map[string]Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	boardService *board.Service,
	scoringService *scoring.Service,
	strategies map[string]Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{
		boardService:   boardService,
		scoringService: scoringService,
		strategies:     strategies,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// HasStrategy reports whether a strategy name is known
func (s *Service) HasStrategy(name string) bool {
	_, ok := s.strategies[name]
	return ok
}

// NewPlayer creates a computer player sharing the given board and inventory
func (s *Service) NewPlayer(
	id model.PlayerID,
	b *model.Board,
	inv *inventory.Service,
	rack *model.Rack,
	strategy string,
) (*Player, error) {
	strat, ok := s.strategies[strategy]
	if !ok {
		return nil, fmt.Errorf("unknown bot strategy: %s", strategy)
	}

	return &Player{
		ID:           id,
		Rack:         rack,
		Strategy:     strategy,
		board:        b,
		inventory:    inv,
		boardService: s.boardService,
		scoring:      s.scoringService,
		strategy:     strat,
		logger: s.logger.With(
			slog.String("player", string(id)),
			slog.String("strategy", strategy),
		),
	}, nil
}
