package inventory

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordgame/internal/dependencies/mocks"
	"github.com/mcoot/wordgame/internal/dependencies/random"
	"github.com/mcoot/wordgame/internal/model"
	"github.com/mcoot/wordgame/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random, testutil.NopLogger())
}

func (s *ServiceSuite) drawAll() []*model.Tile {
	var tiles []*model.Tile
	for {
		tile, ok := s.service.Draw()
		if !ok {
			return tiles
		}
		tiles = append(tiles, tile)
	}
}

func (s *ServiceSuite) TestStandardDistribution() {
	s.Equal(TotalTiles, s.service.Remaining())

	counts := make(map[rune]int)
	for _, tile := range s.drawAll() {
		counts[tile.Letter]++
		s.Equal(LetterValue(tile.Letter), tile.Value)
	}

	s.Equal(2, counts[model.BlankLetter])
	s.Equal(12, counts['E'])
	s.Equal(9, counts['A'])
	s.Equal(1, counts['Q'])
	s.Equal(1, counts['Z'])
}

func (s *ServiceSuite) TestTileIDsAreUniqueAndStable() {
	seen := make(map[model.TileID]bool)
	for _, tile := range s.drawAll() {
		s.False(seen[tile.ID])
		seen[tile.ID] = true

		found, ok := s.service.Tile(tile.ID)
		s.Require().True(ok)
		s.Same(tile, found)
	}
	s.Len(seen, TotalTiles)
}

func (s *ServiceSuite) TestSeededShuffleIsReproducible() {
	a := New(random.NewSeeded(42), testutil.NopLogger())
	b := New(random.NewSeeded(42), testutil.NopLogger())

	for range TotalTiles {
		ta, _ := a.Draw()
		tb, _ := b.Draw()
		s.Equal(ta.ID, tb.ID)
	}
}

func (s *ServiceSuite) TestShuffleUsesInjectedRandom() {
	// Fisher-Yates draws once per position after the first
	s.Equal(TotalTiles-1, s.random.Calls)
}

func (s *ServiceSuite) TestDrawExhausted() {
	s.Len(s.drawAll(), TotalTiles)

	tile, ok := s.service.Draw()
	s.False(ok)
	s.Nil(tile)
	s.True(s.service.IsEmpty())
}

func (s *ServiceSuite) TestReturnReinsertsAtRandomIndex() {
	tile, _ := s.service.Draw()
	rack := model.NewRack(model.PlayerHuman)
	rack.Add(tile)
	rack.Remove(tile)

	s.random.QueueIntn(0)
	s.service.Return(tile)

	s.Equal(TotalTiles, s.service.Remaining())
	s.Equal(model.LocationInventory, tile.Location.Kind)
	s.True(s.service.Contains(tile.ID))

	// Index 0 is the bottom of the bag, so it comes out last
	drawn := s.drawAll()
	s.Equal(tile.ID, drawn[len(drawn)-1].ID)
}

func (s *ServiceSuite) TestReturnClearsBlankAssignment() {
	var blank *model.Tile
	for _, tile := range s.drawAll() {
		if tile.IsBlank() {
			blank = tile
			break
		}
	}
	s.Require().NotNil(blank)

	blank.Assigned = 'Q'
	s.service.Return(blank)
	s.Equal(rune(0), blank.Assigned)
}

func (s *ServiceSuite) TestFill() {
	rack := model.NewRack(model.PlayerAI)

	drawn := s.service.Fill(rack)
	s.Equal(model.RackSize, drawn)
	s.True(rack.IsFull())
	s.Equal(TotalTiles-model.RackSize, s.service.Remaining())

	for _, tile := range rack.Tiles() {
		s.Equal(model.LocationRack, tile.Location.Kind)
		s.Equal(model.PlayerAI, tile.Location.Owner)
	}

	s.Equal(0, s.service.Fill(rack))
}

func (s *ServiceSuite) TestFillStopsWhenExhausted() {
	for s.service.Remaining() > 3 {
		s.service.Draw()
	}

	rack := model.NewRack(model.PlayerHuman)
	s.Equal(3, s.service.Fill(rack))
	s.Equal(3, rack.Len())
}

func (s *ServiceSuite) TestEveryTileHasExactlyOneLocation() {
	human := model.NewRack(model.PlayerHuman)
	ai := model.NewRack(model.PlayerAI)
	board := model.NewBoard()

	s.service.Fill(human)
	s.service.Fill(ai)

	placed := human.Tiles()[0]
	human.Remove(placed)
	s.Require().True(board.Place(placed, board.OpeningCell()))

	returned := ai.Tiles()[0]
	ai.Remove(returned)
	s.service.Return(returned)

	for _, tile := range s.service.AllTiles() {
		holders := 0
		if s.service.Contains(tile.ID) {
			holders++
			s.Equal(model.LocationInventory, tile.Location.Kind)
		}
		if human.Contains(tile.ID) {
			holders++
			s.Equal(model.LocationRack, tile.Location.Kind)
		}
		if ai.Contains(tile.ID) {
			holders++
			s.Equal(model.LocationRack, tile.Location.Kind)
		}
		if board.TileAt(tile.Location.Pos) == tile && tile.Location.Kind == model.LocationBoard {
			holders++
		}
		s.Equal(1, holders, "tile %d", tile.ID)
	}
}

func (s *ServiceSuite) TestLetterValue() {
	s.Equal(1, LetterValue('A'))
	s.Equal(1, LetterValue('a'))
	s.Equal(10, LetterValue('Q'))
	s.Equal(8, LetterValue('X'))
	s.Equal(0, LetterValue(model.BlankLetter))
	s.Equal(0, LetterValue('?'))
}

func (s *ServiceSuite) TestExchange() {
	rack := model.NewRack(model.PlayerHuman)
	s.service.Fill(rack)
	before := rack.Tiles()

	drawn, err := s.service.Exchange(rack)
	s.Require().NoError(err)
	s.Equal(model.RackSize, drawn)
	s.Equal(model.RackSize, rack.Len())
	s.Equal(TotalTiles-model.RackSize, s.service.Remaining())

	for _, tile := range before {
		if !rack.Contains(tile.ID) {
			s.True(s.service.Contains(tile.ID))
			s.Equal(model.LocationInventory, tile.Location.Kind)
		}
	}
}

func (s *ServiceSuite) TestExchangeWithEmptyInventory() {
	rack := model.NewRack(model.PlayerHuman)
	s.service.Fill(rack)
	s.drawAll()
	before := rack.Letters()

	_, err := s.service.Exchange(rack)
	s.ErrorIs(err, model.ErrInventoryExhausted)
	s.Equal(before, rack.Letters())
}

