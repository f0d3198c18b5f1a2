package bot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordgame/internal/dependencies/mocks"
	"github.com/mcoot/wordgame/internal/model"
	"github.com/mcoot/wordgame/internal/services/board"
	"github.com/mcoot/wordgame/internal/services/bot"
	"github.com/mcoot/wordgame/internal/services/dictionary"
	"github.com/mcoot/wordgame/internal/services/inventory"
	"github.com/mcoot/wordgame/internal/services/scoring"
	"github.com/mcoot/wordgame/internal/storage/memory"
	"github.com/mcoot/wordgame/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	mockClock  *mocks.MockClock
	mockRandom *mocks.MockRandom

	inventory  *inventory.Service
	board      *model.Board
	rack       *model.Rack
	botService *bot.Service
	player     *bot.Player
	nextID     model.TileID

	ctx context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.mockClock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.mockRandom = mocks.NewMockRandom()
	logger := testutil.NopLogger()
	s.ctx = context.Background()

	dictService := dictionary.New(memory.New(), logger)
	s.Require().NoError(dictService.LoadWords(testutil.Words()))

	boardService := board.New(dictService, logger)
	scoringService := scoring.New(logger)
	search := bot.NewSearcher(boardService, scoringService, s.mockClock, bot.DefaultBudget(), logger)

	s.inventory = inventory.New(s.mockRandom, logger)
	s.board = model.NewBoard()
	s.rack = model.NewRack(model.PlayerAI)
	s.botService = bot.NewService(boardService, scoringService, bot.NewStrategies(search), logger)
	s.nextID = 1000

	var err error
	s.player, err = s.botService.NewPlayer(model.PlayerAI, s.board, s.inventory, s.rack, model.BotStrategyGreedy)
	s.Require().NoError(err)
}

func (s *ServiceSuite) fillRack(letters string) {
	for _, letter := range letters {
		s.Require().True(s.rack.Add(&model.Tile{
			ID:     s.nextID,
			Letter: letter,
			Value:  inventory.LetterValue(letter),
		}))
		s.nextID++
	}
}

func (s *ServiceSuite) drainInventory() {
	for {
		if _, ok := s.inventory.Draw(); !ok {
			return
		}
	}
}

func (s *ServiceSuite) TestNewPlayerUnknownStrategy() {
	_, err := s.botService.NewPlayer(model.PlayerAI, s.board, s.inventory, s.rack, "random")
	s.Error(err)
	s.False(s.botService.HasStrategy("random"))
	s.True(s.botService.HasStrategy(model.BotStrategyMinimax))
}

func (s *ServiceSuite) TestMakeMoveCommitsBestMove() {
	s.fillRack("CAT")

	result, err := s.player.MakeMove(s.ctx, 0)
	s.Require().NoError(err)
	s.True(result.Success, result.Message)
	s.Equal(3, result.Placed)
	s.Equal(10, result.Score)
	s.Equal([]string{"CAT"}, result.Words)

	s.Equal(10, s.player.Score)
	s.Equal(3, s.board.TileCount())
	s.Equal(0, s.board.CurrentTurnCount())

	// Rack is refilled by the number of tiles placed
	s.Equal(3, s.rack.Len())
	s.Equal(inventory.TotalTiles-3, s.inventory.Remaining())
}

func (s *ServiceSuite) TestMakeMoveWithPendingTiles() {
	s.fillRack("CAT")
	tile := s.rack.Tiles()[0]
	s.rack.Remove(tile)
	s.Require().True(s.board.Place(tile, s.board.OpeningCell()))

	_, err := s.player.MakeMove(s.ctx, 0)
	s.ErrorIs(err, model.ErrTilesPending)
}

func (s *ServiceSuite) TestMakeMoveExchangesWhenNoMove() {
	s.fillRack("QZ")
	before := s.rack.Tiles()

	result, err := s.player.MakeMove(s.ctx, 0)
	s.Require().NoError(err)
	s.True(result.Success)
	s.Equal(bot.MessageExchanged, result.Message)
	s.Equal(0, result.Score)
	s.Equal(0, s.player.Score)

	s.Equal(model.RackSize, s.rack.Len())
	s.Equal(inventory.TotalTiles+len(before)-model.RackSize, s.inventory.Remaining())
	s.True(s.board.IsEmpty())
}

func (s *ServiceSuite) TestMakeMoveFailsWhenNoMoveAndInventoryEmpty() {
	s.fillRack("QZ")
	s.drainInventory()

	result, err := s.player.MakeMove(s.ctx, 0)
	s.ErrorIs(err, model.ErrInventoryExhausted)
	s.False(result.Success)
	s.Equal("QZ", s.rack.Letters())
	s.Equal(0, s.player.Score)
}

func (s *ServiceSuite) TestCommitInvalidMoveRollsBack() {
	s.fillRack("TCA")
	tiles := s.rack.Tiles()
	start := s.board.OpeningCell()

	move := model.Move{Word: "TCA", Orientation: model.Horizontal}
	for i, t := range tiles {
		move.Placements = append(move.Placements, model.Placement{Tile: t, Pos: start.Step(model.Horizontal, i)})
	}

	result := s.player.Commit(move)
	s.False(result.Success)
	s.NotEmpty(result.Message)

	s.True(s.board.IsEmpty())
	s.Equal(0, s.board.CurrentTurnCount())
	s.Equal(0, s.player.Score)
	s.Equal(3, s.rack.Len())
	for _, t := range tiles {
		s.True(s.rack.Contains(t.ID))
		s.Equal(model.LocationRack, t.Location.Kind)
	}
	s.Equal(inventory.TotalTiles, s.inventory.Remaining())
}

func (s *ServiceSuite) TestCommitMidSequenceFailureRollsBack() {
	s.fillRack("CA")
	tiles := s.rack.Tiles()
	start := s.board.OpeningCell()
	stranger := &model.Tile{ID: 9999, Letter: 'T', Value: 1}

	result := s.player.Commit(model.Move{Placements: []model.Placement{
		{Tile: tiles[0], Pos: start},
		{Tile: tiles[1], Pos: start.Step(model.Horizontal, 1)},
		{Tile: stranger, Pos: start.Step(model.Horizontal, 2)},
	}})
	s.False(result.Success)
	s.Equal(bot.MessageNotPlaced, result.Message)
	s.True(s.board.IsEmpty())
	s.Equal(2, s.rack.Len())
}

func (s *ServiceSuite) TestCommitAssignsBlank() {
	s.fillRack("C_T")
	tiles := s.rack.Tiles()
	start := s.board.OpeningCell()

	move := model.Move{Word: "CAT", Orientation: model.Horizontal}
	for i, t := range tiles {
		p := model.Placement{Tile: t, Pos: start.Step(model.Horizontal, i)}
		if t.IsBlank() {
			p.BlankAs = 'A'
		}
		move.Placements = append(move.Placements, p)
	}

	result := s.player.Commit(move)
	s.Require().True(result.Success, result.Message)
	// The blank is worth nothing: (3+0+1) x 2
	s.Equal(8, result.Score)
	s.Equal('A', tiles[1].Assigned)
}

func (s *ServiceSuite) TestMinimaxPlayerMakesMove() {
	player, err := s.botService.NewPlayer(model.PlayerAI, s.board, s.inventory, s.rack, model.BotStrategyMinimax)
	s.Require().NoError(err)
	s.fillRack("CAT")

	result, err := player.MakeMove(s.ctx, 0)
	s.Require().NoError(err)
	s.True(result.Success, result.Message)
	s.Positive(result.Score)
	s.Equal(result.Score, player.Score)
}
