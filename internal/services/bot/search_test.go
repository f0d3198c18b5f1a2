package bot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordgame/internal/dependencies/mocks"
	"github.com/mcoot/wordgame/internal/model"
	"github.com/mcoot/wordgame/internal/services/board"
	"github.com/mcoot/wordgame/internal/services/dictionary"
	"github.com/mcoot/wordgame/internal/services/inventory"
	"github.com/mcoot/wordgame/internal/services/scoring"
	"github.com/mcoot/wordgame/internal/storage/memory"
	"github.com/mcoot/wordgame/internal/testutil"
)

type SearchSuite struct {
	suite.Suite
	clock        *mocks.MockClock
	boardService *board.Service
	scoring      *scoring.Service
	search       *Searcher
	board        *model.Board
	rack         *model.Rack
	nextID       model.TileID
	ctx          context.Context
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

func (s *SearchSuite) SetupTest() {
	logger := testutil.NopLogger()
	dict := dictionary.New(memory.New(), logger)
	s.Require().NoError(dict.LoadWords(testutil.Words()))

	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.boardService = board.New(dict, logger)
	s.scoring = scoring.New(logger)
	s.search = NewSearcher(s.boardService, s.scoring, s.clock, DefaultBudget(), logger)
	s.board = model.NewBoard()
	s.rack = model.NewRack(model.PlayerAI)
	s.nextID = 0
	s.ctx = context.Background()
}

func (s *SearchSuite) fillRack(letters string) {
	for _, letter := range letters {
		s.Require().True(s.rack.Add(&model.Tile{
			ID:     s.nextID,
			Letter: letter,
			Value:  inventory.LetterValue(letter),
		}))
		s.nextID++
	}
}

// commitWord lays and commits a word with tiles that are not in the rack
func (s *SearchSuite) commitWord(word string, row, col int, o model.Orientation) {
	pos := model.Position{Row: row, Col: col}
	for i, letter := range word {
		t := &model.Tile{ID: 500 + s.nextID, Letter: letter, Value: inventory.LetterValue(letter)}
		s.nextID++
		s.Require().True(s.board.Place(t, pos.Step(o, i)))
	}
	s.board.Commit()
}

func (s *SearchSuite) state() State {
	return State{Board: s.board, Rack: s.rack.Tiles()}
}

func (s *SearchSuite) assertBoardUntouched(tiles int) {
	s.Equal(tiles, s.board.TileCount())
	s.Equal(0, s.board.CurrentTurnCount())
	for _, t := range s.rack.Tiles() {
		s.Equal(model.LocationRack, t.Location.Kind)
		s.Equal(rune(0), t.Assigned)
	}
}

func (s *SearchSuite) TestMovesOnEmptyBoardCoverOpeningCell() {
	s.fillRack("CAT")

	moves, stats := s.search.Moves(s.ctx, s.board, s.rack.Tiles())
	s.Require().NotEmpty(moves)
	s.False(stats.Exhausted)

	for _, mv := range moves {
		s.Equal(s.board.OpeningCell(), mv.Start())
	}
	s.Equal(10, moves[0].Score)
	s.Equal("CAT", moves[0].Word)
	s.assertBoardUntouched(0)
}

func (s *SearchSuite) TestMovesAreSortedByScore() {
	s.fillRack("CATS")

	moves, _ := s.search.Moves(s.ctx, s.board, s.rack.Tiles())
	for i := 1; i < len(moves); i++ {
		s.GreaterOrEqual(moves[i-1].Score, moves[i].Score)
	}
}

func (s *SearchSuite) TestDuplicateLettersEnumeratedOnce() {
	s.fillRack("AA")

	moves, _ := s.search.Moves(s.ctx, s.board, s.rack.Tiles())
	// Only the single "A" on the opening cell is a word
	s.Len(moves, 1)
}

func (s *SearchSuite) TestGreedyPicksHighestScoreFirstOnTies() {
	s.fillRack("CATS")

	mv, _ := NewGreedyStrategy(s.search).ChooseMove(s.ctx, s.state())
	s.Require().NotNil(mv)
	s.Equal("CATS", mv.Word)
	s.Equal(12, mv.Score)
	s.Equal(model.Horizontal, mv.Orientation)
	s.Equal(4, mv.TileCount())
	s.assertBoardUntouched(0)
}

func (s *SearchSuite) TestGreedyBuildsOnCommittedTiles() {
	s.commitWord("CAT", 7, 7, model.Horizontal)
	s.fillRack("S")

	mv, _ := NewGreedyStrategy(s.search).ChooseMove(s.ctx, s.state())
	s.Require().NotNil(mv)
	// SCAT and CATS both score 12; SCAT's cell comes first in row order
	s.Equal("SCAT", mv.Word)
	s.Equal(12, mv.Score)
	s.Equal(model.Position{Row: 7, Col: 6}, mv.Start())
	s.assertBoardUntouched(3)
}

func (s *SearchSuite) TestGreedyNoMove() {
	s.commitWord("CAT", 7, 7, model.Horizontal)
	s.fillRack("QZ")

	mv, stats := NewGreedyStrategy(s.search).ChooseMove(s.ctx, s.state())
	s.Nil(mv)
	s.False(stats.Exhausted)
	s.assertBoardUntouched(3)
}

func (s *SearchSuite) TestBlankTriesEveryLetter() {
	// Every word worth the most needs the blank as a vowel
	s.fillRack("_CT")

	mv, _ := NewGreedyStrategy(s.search).ChooseMove(s.ctx, s.state())
	s.Require().NotNil(mv)

	var blank *model.Placement
	for i := range mv.Placements {
		if mv.Placements[i].Tile.IsBlank() {
			blank = &mv.Placements[i]
		}
	}
	s.Require().NotNil(blank)
	s.NotZero(blank.BlankAs)
	s.Equal(8, mv.Score)
	s.assertBoardUntouched(0)
}

func (s *SearchSuite) TestNodeBudgetStopsSearch() {
	s.search = NewSearcher(s.boardService, s.scoring, s.clock, Budget{MaxNodes: 5}, testutil.NopLogger())
	s.fillRack("CATS")

	_, stats := NewGreedyStrategy(s.search).ChooseMove(s.ctx, s.state())
	s.True(stats.Exhausted)
	s.Equal(6, stats.Nodes)
	s.assertBoardUntouched(0)
}

func (s *SearchSuite) TestTimeBudgetStopsSearch() {
	s.clock.Tick = time.Second
	s.search = NewSearcher(s.boardService, s.scoring, s.clock, Budget{MaxDuration: 500 * time.Millisecond}, testutil.NopLogger())
	s.fillRack("CATSERN")

	_, stats := NewGreedyStrategy(s.search).ChooseMove(s.ctx, s.state())
	s.True(stats.Exhausted)
	s.Equal(checkEvery, stats.Nodes)
	s.assertBoardUntouched(0)
}

func (s *SearchSuite) TestCancelledContextStopsSearch() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	s.fillRack("CAT")

	mv, stats := NewGreedyStrategy(s.search).ChooseMove(ctx, s.state())
	s.Nil(mv)
	s.True(stats.Exhausted)
	s.Equal(0, stats.Nodes)
}

func (s *SearchSuite) TestMinimaxChoosesMove() {
	s.fillRack("CAT")

	mv, _ := NewMinimaxStrategy(s.search, DefaultMinimaxDepth).ChooseMove(s.ctx, s.state())
	s.Require().NotNil(mv)
	s.NotEmpty(mv.Word)
	s.assertBoardUntouched(0)
}

func (s *SearchSuite) TestMinimaxDepthOneMatchesGreedy() {
	s.fillRack("CATS")

	greedy, _ := NewGreedyStrategy(s.search).ChooseMove(s.ctx, s.state())
	minimax, _ := NewMinimaxStrategy(s.search, 1).ChooseMove(s.ctx, s.state())
	s.Require().NotNil(greedy)
	s.Require().NotNil(minimax)
	s.Equal(greedy.Score, minimax.Score)
	s.Equal(greedy.Word, minimax.Word)
}

func (s *SearchSuite) TestApplyRestoresTiles() {
	s.fillRack("CAT")
	moves, _ := s.search.Moves(s.ctx, s.board, s.rack.Tiles())
	s.Require().NotEmpty(moves)

	inside := s.search.apply(s.board, moves[0], func() int {
		s.Equal(3, s.board.TileCount())
		s.Equal(0, s.board.CurrentTurnCount())
		return 7
	})
	s.Equal(7, inside)
	s.assertBoardUntouched(0)
}

func (s *SearchSuite) TestStrategiesRegistry() {
	strategies := NewStrategies(s.search)
	for _, name := range model.ValidBotStrategies() {
		s.Contains(strategies, name)
	}
}
