package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordgame/internal/model"
	"github.com/mcoot/wordgame/internal/services/board"
	"github.com/mcoot/wordgame/internal/services/dictionary"
	"github.com/mcoot/wordgame/internal/services/inventory"
	"github.com/mcoot/wordgame/internal/storage/memory"
	"github.com/mcoot/wordgame/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service      *Service
	boardService *board.Service
	nextID       model.TileID
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	dict := dictionary.New(memory.New(), testutil.NopLogger())
	s.Require().NoError(dict.LoadWords(testutil.Words()))

	s.service = New(testutil.NopLogger())
	s.boardService = board.New(dict, testutil.NopLogger())
	s.nextID = 0
}

func plainLayout() [][]model.Bonus {
	layout := make([][]model.Bonus, model.BoardSize)
	for i := range layout {
		layout[i] = make([]model.Bonus, model.BoardSize)
	}
	return layout
}

func (s *ServiceSuite) tile(letter rune) *model.Tile {
	t := &model.Tile{ID: s.nextID, Letter: letter, Value: inventory.LetterValue(letter)}
	s.nextID++
	return t
}

func (s *ServiceSuite) lay(b *model.Board, word string, row, col int, o model.Orientation) {
	pos := model.Position{Row: row, Col: col}
	for i, letter := range word {
		s.Require().True(b.Place(s.tile(letter), pos.Step(o, i)))
	}
}

func (s *ServiceSuite) TestLetterValue() {
	s.Equal(1, s.service.LetterValue('A'))
	s.Equal(3, s.service.LetterValue('C'))
	s.Equal(10, s.service.LetterValue('Z'))
	s.Equal(0, s.service.LetterValue(model.BlankLetter))
}

func (s *ServiceSuite) TestBonusOnlyForSevenTiles() {
	s.Equal(50, s.service.Bonus(7))
	for _, n := range []int{0, 1, 2, 3, 4, 5, 6, 8} {
		s.Equal(0, s.service.Bonus(n), "placed %d", n)
	}
}

func (s *ServiceSuite) TestWordScoreNoBonus() {
	b := model.NewBoardWithBonuses(plainLayout())
	s.lay(b, "CAT", 0, 0, model.Horizontal)

	s.Equal(5, s.service.WordScore("CAT", model.Position{Row: 0, Col: 0}, model.Horizontal, b))
}

func (s *ServiceSuite) TestDoubleLetterAffectsOnlyThatLetter() {
	layout := plainLayout()
	layout[0][1] = model.BonusDoubleLetter
	b := model.NewBoardWithBonuses(layout)
	s.lay(b, "CAT", 0, 0, model.Horizontal)

	// C=3, A=1x2, T=1
	s.Equal(6, s.service.WordScore("CAT", model.Position{Row: 0, Col: 0}, model.Horizontal, b))
}

func (s *ServiceSuite) TestTripleLetterThenWordMultiplier() {
	layout := plainLayout()
	layout[0][0] = model.BonusTripleLetter
	layout[0][2] = model.BonusDoubleWord
	b := model.NewBoardWithBonuses(layout)
	s.lay(b, "CAT", 0, 0, model.Horizontal)

	// (3x3 + 1 + 1) x 2
	s.Equal(22, s.service.WordScore("CAT", model.Position{Row: 0, Col: 0}, model.Horizontal, b))
}

func (s *ServiceSuite) TestTwoDoubleWordsCompound() {
	layout := plainLayout()
	layout[0][0] = model.BonusDoubleWord
	layout[2][0] = model.BonusDoubleWord
	b := model.NewBoardWithBonuses(layout)
	s.lay(b, "CAT", 0, 0, model.Vertical)

	s.Equal(20, s.service.WordScore("CAT", model.Position{Row: 0, Col: 0}, model.Vertical, b))
}

func (s *ServiceSuite) TestBlankScoresZero() {
	layout := plainLayout()
	layout[0][0] = model.BonusTripleLetter
	b := model.NewBoardWithBonuses(layout)

	blank := s.tile(model.BlankLetter)
	blank.Assigned = 'C'
	s.Require().True(b.Place(blank, model.Position{Row: 0, Col: 0}))
	s.lay(b, "AT", 0, 1, model.Horizontal)

	s.Equal(2, s.service.WordScore("CAT", model.Position{Row: 0, Col: 0}, model.Horizontal, b))
}

func (s *ServiceSuite) TestBonusesApplyToCommittedTiles() {
	layout := plainLayout()
	layout[7][7] = model.BonusDoubleWord
	b := model.NewBoardWithBonuses(layout)
	s.lay(b, "CAT", 7, 7, model.Horizontal)
	b.Commit()
	s.lay(b, "S", 7, 10, model.Horizontal)

	// (3+1+1+1) x 2 even though the DW tile was placed earlier
	s.Equal(12, s.service.TurnScore(b))
}

func (s *ServiceSuite) TestCatThroughOpeningCell() {
	b := model.NewBoard()
	s.Require().Equal(model.BonusDoubleWord, b.Bonus(b.OpeningCell()))

	rack := model.NewRack(model.PlayerHuman)
	for _, letter := range "CAT" {
		rack.Add(s.tile(letter))
	}

	for i, t := range rack.Tiles() {
		rack.Remove(t)
		s.Require().NoError(s.boardService.PlaceTile(b, t, model.Position{Row: 7, Col: 6 + i}))
	}

	result := s.boardService.EndTurn(b)
	s.Require().True(result.Success, result.Message)
	s.Equal(3, result.Placed)
	s.Equal((3+1+1)*2, s.service.TurnScore(b))
}

func (s *ServiceSuite) TestTurnScoreIncludesCrossingWords() {
	b := model.NewBoardWithBonuses(plainLayout())
	s.lay(b, "CAT", 7, 7, model.Horizontal)
	b.Commit()
	s.lay(b, "AT", 8, 9, model.Horizontal)

	breakdown := s.service.TurnBreakdown(b)
	s.Equal([]WordScore{{Word: "AT", Score: 2}, {Word: "TA", Score: 2}}, breakdown.Words)
	s.Equal(4, breakdown.Total)
	s.Equal(4, s.service.TurnScore(b))
}

func (s *ServiceSuite) TestCrossingWordSameAsMainWordCountedOnce() {
	b := model.NewBoardWithBonuses(plainLayout())
	s.lay(b, "A", 6, 7, model.Horizontal)
	b.Commit()
	s.lay(b, "AT", 7, 6, model.Horizontal)

	breakdown := s.service.TurnBreakdown(b)
	s.Equal([]WordScore{{Word: "AT", Score: 2}}, breakdown.Words)
	s.Equal(2, breakdown.Total)
	s.Equal(2, s.service.TurnScore(b))
}

func (s *ServiceSuite) TestBingoBreakdown() {
	b := model.NewBoardWithBonuses(plainLayout())
	s.lay(b, "ABCDEFG", 7, 4, model.Horizontal)

	breakdown := s.service.TurnBreakdown(b)
	s.Equal(16, s.service.TurnScore(b))
	s.Equal(BingoBonus, breakdown.Bonus)
	s.Equal(66, breakdown.Total)
}

func (s *ServiceSuite) TestTurnScoreEmpty() {
	s.Equal(0, s.service.TurnScore(model.NewBoard()))
	s.Empty(s.service.TurnBreakdown(model.NewBoard()).Words)
}

func (s *ServiceSuite) TestRackValue() {
	tiles := []*model.Tile{s.tile('Q'), s.tile(model.BlankLetter), s.tile('E')}
	s.Equal(11, s.service.RackValue(tiles))
	s.Equal(0, s.service.RackValue(nil))
}

func (s *ServiceSuite) TestSettleFinalScoresPlayerWentOut() {
	scores := map[model.PlayerID]int{model.PlayerHuman: 100, model.PlayerAI: 80}
	racks := map[model.PlayerID][]*model.Tile{
		model.PlayerHuman: nil,
		model.PlayerAI:    {s.tile('Q'), s.tile('E')},
	}

	final := s.service.SettleFinalScores(scores, racks)
	s.Equal(111, final[model.PlayerHuman])
	s.Equal(69, final[model.PlayerAI])
	// Input is left untouched
	s.Equal(100, scores[model.PlayerHuman])
}

func (s *ServiceSuite) TestSettleFinalScoresFloorsAtZero() {
	scores := map[model.PlayerID]int{model.PlayerHuman: 5, model.PlayerAI: 3}
	racks := map[model.PlayerID][]*model.Tile{
		model.PlayerHuman: {s.tile('Q')},
		model.PlayerAI:    {s.tile('Z')},
	}

	final := s.service.SettleFinalScores(scores, racks)
	s.Equal(0, final[model.PlayerHuman])
	s.Equal(0, final[model.PlayerAI])
}

func (s *ServiceSuite) TestDetermineWinner() {
	s.Equal(model.PlayerAI, s.service.DetermineWinner(map[model.PlayerID]int{
		model.PlayerHuman: 10, model.PlayerAI: 20,
	}))
	s.Equal(model.PlayerID(""), s.service.DetermineWinner(map[model.PlayerID]int{
		model.PlayerHuman: 20, model.PlayerAI: 20,
	}))
}
