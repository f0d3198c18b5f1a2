package inventory

import (
	"log/slog"

	"github.com/mcoot/wordgame/internal/dependencies/random"
	"github.com/mcoot/wordgame/internal/model"
)

// letterSpec is one row of the tile distribution
type letterSpec struct {
	letter rune
	value  int
	count  int
}

// standardDistribution is the 100-tile English set, two blanks included
var standardDistribution = []letterSpec{
	{'A', 1, 9}, {'B', 3, 2}, {'C', 3, 2}, {'D', 2, 4}, {'E', 1, 12},
	{'F', 4, 2}, {'G', 2, 3}, {'H', 4, 2}, {'I', 1, 9}, {'J', 8, 1},
	{'K', 5, 1}, {'L', 1, 4}, {'M', 3, 2}, {'N', 1, 6}, {'O', 1, 8},
	{'P', 3, 2}, {'Q', 10, 1}, {'R', 1, 6}, {'S', 1, 4}, {'T', 1, 6},
	{'U', 1, 4}, {'V', 4, 2}, {'W', 4, 2}, {'X', 8, 1}, {'Y', 4, 2},
	{'Z', 10, 1}, {model.BlankLetter, 0, 2},
}

// TotalTiles is the size of the full set
const TotalTiles = 100

// Service is the bag of undrawn tiles. Tiles are created once here and never
// destroyed, only moved between the bag, racks and the board.
type Service struct {
	random random.Random
	logger *slog.Logger

	tiles []*model.Tile
	all   map[model.TileID]*model.Tile
}

// New builds the full standard set and shuffles it with rnd
func New(rnd random.Random, logger *slog.Logger) *Service {
	s := &Service{
		random: rnd,
		logger: logger.With(slog.String("component", "inventory")),
		tiles:  make([]*model.Tile, 0, TotalTiles),
		all:    make(map[model.TileID]*model.Tile, TotalTiles),
	}

	id := model.TileID(0)
	for _, row := range standardDistribution {
		for range row.count {
			tile := &model.Tile{
				ID:       id,
				Letter:   row.letter,
				Value:    row.value,
				Location: model.Location{Kind: model.LocationInventory},
			}
			s.tiles = append(s.tiles, tile)
			s.all[id] = tile
			id++
		}
	}

	s.Shuffle()
	return s
}

// Shuffle randomly permutes the remaining tiles
func (s *Service) Shuffle() {
	random.Shuffle(s.random, len(s.tiles), func(i, j int) {
		s.tiles[i], s.tiles[j] = s.tiles[j], s.tiles[i]
	})
}

// Draw pops one tile. The tile keeps its inventory location until the
// receiver (usually a rack) claims it. Returns false when exhausted.
func (s *Service) Draw() (*model.Tile, bool) {
	n := len(s.tiles)
	if n == 0 {
		return nil, false
	}
	tile := s.tiles[n-1]
	s.tiles = s.tiles[:n-1]
	return tile, true
}

// Return puts a tile back at a uniformly random position. A blank loses its
// assigned letter on the way back.
func (s *Service) Return(tile *model.Tile) {
	tile.Assigned = 0
	tile.Location = model.Location{Kind: model.LocationInventory}

	i := s.random.Intn(len(s.tiles) + 1)
	s.tiles = append(s.tiles, nil)
	copy(s.tiles[i+1:], s.tiles[i:])
	s.tiles[i] = tile
}

// Fill draws into the rack until it is full or the inventory runs out.
// Returns the number of tiles drawn.
func (s *Service) Fill(rack *model.Rack) int {
	drawn := 0
	for !rack.IsFull() {
		tile, ok := s.Draw()
		if !ok {
			s.logger.Debug("inventory exhausted while filling rack",
				slog.String("player", string(rack.Owner)),
			)
			break
		}
		rack.Add(tile)
		drawn++
	}
	return drawn
}

// Exchange returns every tile in the rack to the inventory and draws a
// fresh rack. Fails without any change when the inventory is empty.
func (s *Service) Exchange(rack *model.Rack) (int, error) {
	if s.IsEmpty() {
		return 0, model.ErrInventoryExhausted
	}
	for _, tile := range rack.Clear() {
		s.Return(tile)
	}
	drawn := s.Fill(rack)

	s.logger.Debug("rack exchanged",
		slog.String("player", string(rack.Owner)),
		slog.Int("drawn", drawn),
	)
	return drawn, nil
}

// Remaining returns the number of undrawn tiles
func (s *Service) Remaining() int {
	return len(s.tiles)
}

// IsEmpty returns true when nothing is left to draw
func (s *Service) IsEmpty() bool {
	return len(s.tiles) == 0
}

// Tile looks up any tile of the set by handle, wherever it currently lives
func (s *Service) Tile(id model.TileID) (*model.Tile, bool) {
	tile, ok := s.all[id]
	return tile, ok
}

// AllTiles returns every tile of the set ordered by handle
func (s *Service) AllTiles() []*model.Tile {
	out := make([]*model.Tile, len(s.all))
	for id, tile := range s.all {
		out[id] = tile
	}
	return out
}

// Contains returns true if the tile is currently in the inventory
func (s *Service) Contains(id model.TileID) bool {
	for _, t := range s.tiles {
		if t.ID == id {
			return true
		}
	}
	return false
}

// LetterValue returns the fixed point value of a letter type.
// The blank letter type is always worth zero.
func LetterValue(letter rune) int {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	for _, row := range standardDistribution {
		if row.letter == letter {
			return row.value
		}
	}
	return 0
}

// Interface for dependency injection
type ServiceInterface interface {
	Draw() (*model.Tile, bool)
	Return(tile *model.Tile)
	Fill(rack *model.Rack) int
	Exchange(rack *model.Rack) (int, error)
	Remaining() int
	IsEmpty() bool
	Shuffle()
	Tile(id model.TileID) (*model.Tile, bool)
}

var _ ServiceInterface = (*Service)(nil)
