package model

// Placement assigns one tile to one cell
type Placement struct {
	Tile *Tile
	Pos  Position
	// Letter chosen for a blank tile in this placement, 0 otherwise
	BlankAs rune
}

// Move is a candidate or committed play
type Move struct {
	Placements  []Placement
	Orientation Orientation
	Word        string
	Score       int
}

// Start returns the cell of the first placement
func (m *Move) Start() Position {
	if len(m.Placements) == 0 {
		return Position{}
	}
	return m.Placements[0].Pos
}

// TileCount returns the number of tiles the move places
func (m *Move) TileCount() int {
	return len(m.Placements)
}

// TurnResult is the outcome of an end-turn request
type TurnResult struct {
	Success bool
	Message string
	// Placed is the number of tiles the turn used, and so the number to
	// draw when refilling the rack
	Placed int
	Score  int
	Words  []string
}
