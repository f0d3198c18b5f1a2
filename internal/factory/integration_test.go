package factory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordgame/internal/model"
	"github.com/mcoot/wordgame/internal/services/bot"
	"github.com/mcoot/wordgame/internal/services/inventory"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	app, err := NewTestApp(model.BotStrategyGreedy)
	s.Require().NoError(err)
	s.app = app
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadTestDictionary())
}

// assertTilesConserved checks every tile is in exactly one of the bag, a
// rack or the board
func (s *IntegrationSuite) assertTilesConserved(snap *model.Snapshot) {
	onBoard := 0
	for _, row := range snap.Cells {
		for _, c := range row {
			if c.Occupied {
				onBoard++
			}
		}
	}
	s.Equal(inventory.TotalTiles, snap.Remaining+len(snap.Rack)+snap.OpponentTiles+onBoard)
}

// The unshuffled inventory deals the human A, two blanks, Z, Y, Y, X and the
// computer W, W, V, V, U, U, U
func (s *IntegrationSuite) TestOpeningMoveAndComputerReply() {
	gc := s.app.GameController

	snap, err := gc.NewGame(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.PlayerHuman, snap.Game.CurrentPlayer)
	s.Len(snap.Rack, model.RackSize)
	s.Equal(model.RackSize, snap.OpponentTiles)
	s.Equal(inventory.TotalTiles-2*model.RackSize, snap.Remaining)

	s.Require().NoError(gc.PlaceTile(0, model.Position{Row: 7, Col: 7}))
	s.Require().NoError(gc.PlaceTile(99, model.Position{Row: 7, Col: 8}))
	s.Require().NoError(gc.AssignBlank(99, 't'))

	result, err := gc.EndTurn(s.ctx)
	s.Require().NoError(err)
	s.Require().True(result.Success, result.Message)
	s.Equal([]string{"AT"}, result.Words)
	// A on the double-word centre, blank worth nothing
	s.Equal(2, result.Score)

	aiResult, err := gc.PlayAITurn(s.ctx)
	s.Require().NoError(err)
	s.True(aiResult.Success)
	s.Equal(0, aiResult.Placed)
	s.Equal(bot.MessageExchanged, aiResult.Message)

	snap, err = gc.Snapshot()
	s.Require().NoError(err)
	s.Equal(model.PlayerHuman, snap.Game.CurrentPlayer)
	s.Equal(3, snap.Game.TurnNumber)
	s.Equal(2, snap.Game.Scores[model.PlayerHuman])
	s.Equal(0, snap.Game.Scores[model.PlayerAI])
	s.Equal(1, snap.Game.Scoreless)
	s.assertTilesConserved(snap)

	events, err := gc.History()
	s.Require().NoError(err)
	s.Require().Len(events, 3)
	s.Equal(model.EventGameStarted, events[0].Type)
	s.Equal(model.EventMoveCommitted, events[1].Type)
	s.Equal(model.EventRackExchanged, events[2].Type)
}

func (s *IntegrationSuite) TestGamePlayedToCompletion() {
	gc := s.app.GameController
	_, err := gc.NewGame(s.ctx)
	s.Require().NoError(err)

	var snap *model.Snapshot
	for turn := 0; turn < 500; turn++ {
		snap, err = gc.Snapshot()
		s.Require().NoError(err)
		s.assertTilesConserved(snap)
		if snap.Game.IsComplete() {
			break
		}

		if snap.Game.CurrentPlayer == model.PlayerHuman {
			_, err = gc.Pass(s.ctx)
		} else {
			_, err = gc.PlayAITurn(s.ctx)
		}
		s.Require().NoError(err)
	}

	s.Require().True(snap.Game.IsComplete(), "game did not finish")
	for _, score := range snap.Game.Scores {
		s.GreaterOrEqual(score, 0)
	}

	_, err = gc.Pass(s.ctx)
	s.ErrorIs(err, model.ErrGameComplete)

	events, err := gc.History()
	s.Require().NoError(err)
	s.Equal(model.EventGameComplete, events[len(events)-1].Type)

	results, err := gc.Results(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal(snap.Game.ID, results[0].ID)
	s.Equal(snap.Game.Scores, results[0].FinalScores)
}

func (s *IntegrationSuite) TestMinimaxStrategyIsWired() {
	app, err := NewTestApp(model.BotStrategyMinimax)
	s.Require().NoError(err)
	s.Require().NoError(app.LoadTestDictionary())

	snap, err := app.GameController.NewGame(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.BotStrategyMinimax, snap.Strategy)
}

func (s *IntegrationSuite) TestUnknownStrategyRejected() {
	_, err := NewTestApp("random")
	s.Error(err)
}

func (s *IntegrationSuite) TestNewLoadsDictionaryFile() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("cat\nDOG\n"), 0o644))

	app, err := New(s.ctx, Config{DictionaryPath: path, Seed: 42})
	s.Require().NoError(err)

	s.True(app.DictionaryService.IsValidWord("dog"))
	s.False(app.DictionaryService.IsValidWord("bird"))
}

func (s *IntegrationSuite) TestNewWithMissingDictionaryRejectsWords() {
	app, err := New(s.ctx, Config{DictionaryPath: filepath.Join(s.T().TempDir(), "missing.txt")})
	s.Require().NoError(err)

	s.True(app.DictionaryService.IsLoaded())
	s.False(app.DictionaryService.IsValidWord("cat"))
}

func (s *IntegrationSuite) TestNewRejectsBadStorageConfig() {
	_, err := New(s.ctx, Config{StorageType: "postgres"})
	s.Error(err)

	_, err = New(s.ctx, Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

func (s *IntegrationSuite) TestSeededGamesDealTheSameRacks() {
	first, err := New(s.ctx, Config{Seed: 7})
	s.Require().NoError(err)
	second, err := New(s.ctx, Config{Seed: 7})
	s.Require().NoError(err)

	a, err := first.GameController.NewGame(s.ctx)
	s.Require().NoError(err)
	b, err := second.GameController.NewGame(s.ctx)
	s.Require().NoError(err)

	s.Equal(a.Rack, b.Rack)
}
