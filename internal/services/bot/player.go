package bot

import (
	"context"
	"log/slog"

	"github.com/mcoot/wordgame/internal/model"
	"github.com/mcoot/wordgame/internal/services/board"
	"github.com/mcoot/wordgame/internal/services/inventory"
	"github.com/mcoot/wordgame/internal/services/scoring"
)

// Messages reported in the turn results of a computer player
const (
	MessageExchanged   = "no move found, rack exchanged"
	MessageNotPlaced   = "chosen move could not be placed"
	MessageNoMoveEmpty = "no move found and the inventory is empty"
)

// Player is a computer opponent. It shares the board and inventory with the
// game and owns its rack and cumulative score.
type Player struct {
	ID       model.PlayerID
	Rack     *model.Rack
	Score    int
	Strategy string

	board        *model.Board
	inventory    *inventory.Service
	boardService *board.Service
	scoring      *scoring.Service
	strategy     Strategy
	logger       *slog.Logger
}

// MakeMove searches for a move and commits it. With no move found the whole
// rack is exchanged instead. If the inventory is empty too, the turn fails
// with ErrInventoryExhausted and nothing changes.
func (p *Player) MakeMove(ctx context.Context, opponentScore int) (model.TurnResult, error) {
	if p.board.CurrentTurnCount() > 0 {
		return model.TurnResult{}, model.ErrTilesPending
	}

	move, stats := p.strategy.ChooseMove(ctx, State{
		Board:         p.board,
		Rack:          p.Rack.Tiles(),
		Score:         p.Score,
		OpponentScore: opponentScore,
	})

	p.logger.Info("move search finished",
		slog.Int("nodes", stats.Nodes),
		slog.Duration("elapsed", stats.Elapsed),
		slog.Bool("budget_exhausted", stats.Exhausted),
		slog.Bool("found", move != nil),
	)

	if move == nil {
		return p.exchange()
	}
	return p.Commit(*move), nil
}

// Commit lays the move's tiles from the rack and ends the turn. Any failure
// retracts every tile back to the rack and leaves the score untouched. On
// success the score is added, the board committed and the rack refilled.
func (p *Player) Commit(move model.Move) model.TurnResult {
	var placed []*model.Tile

	for _, pl := range move.Placements {
		tile := pl.Tile
		if !p.Rack.Contains(tile.ID) || !p.board.CanPlace(pl.Pos) {
			p.rollback(placed)
			return model.TurnResult{Message: MessageNotPlaced}
		}
		p.Rack.Remove(tile)
		if !p.board.Place(tile, pl.Pos) {
			p.Rack.Add(tile)
			p.rollback(placed)
			return model.TurnResult{Message: MessageNotPlaced}
		}
		if tile.IsBlank() {
			tile.Assigned = pl.BlankAs
		}
		placed = append(placed, tile)
	}

	result := p.boardService.EndTurn(p.board)
	if !result.Success {
		p.logger.Warn("chosen move failed validation",
			slog.String("word", move.Word),
			slog.String("reason", result.Message),
		)
		p.rollback(placed)
		return result
	}

	result.Score = p.scoring.TurnScore(p.board) + p.scoring.Bonus(result.Placed)
	p.Score += result.Score
	p.board.Commit()

	for range result.Placed {
		tile, ok := p.inventory.Draw()
		if !ok {
			break
		}
		p.Rack.Add(tile)
	}

	p.logger.Info("move committed",
		slog.String("word", move.Word),
		slog.Int("score", result.Score),
		slog.Int("tiles", result.Placed),
	)
	return result
}

func (p *Player) exchange() (model.TurnResult, error) {
	if p.Rack.Len() == 0 {
		return model.TurnResult{Message: "no move found"}, model.ErrNoMoveFound
	}
	if _, err := p.inventory.Exchange(p.Rack); err != nil {
		p.logger.Info("no move available", slog.String("reason", MessageNoMoveEmpty))
		return model.TurnResult{Message: MessageNoMoveEmpty}, err
	}
	return model.TurnResult{Success: true, Message: MessageExchanged}, nil
}

// rollback takes placed tiles off the board and back into the rack
func (p *Player) rollback(placed []*model.Tile) {
	for i := len(placed) - 1; i >= 0; i-- {
		tile := placed[i]
		p.board.Remove(tile)
		if tile.IsBlank() {
			tile.Assigned = 0
		}
		p.Rack.Add(tile)
	}
}
