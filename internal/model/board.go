package model

import "sort"

// BoardSize is the grid dimension
const BoardSize = 15

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Step returns the position n cells away along the orientation
func (p Position) Step(o Orientation, n int) Position {
	if o == Horizontal {
		return Position{Row: p.Row, Col: p.Col + n}
	}
	return Position{Row: p.Row + n, Col: p.Col}
}

// Orientation is the direction a word runs in
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Perpendicular returns the crossing orientation
func (o Orientation) Perpendicular() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Board is the shared grid of placed tiles plus the static bonus layout.
// Tiles placed since the last Commit form the current turn.
type Board struct {
	Size int

	cells   [][]*Tile
	bonuses [][]Bonus

	// Current-turn placements keyed by tile handle
	current map[TileID]Position
	// Location each current-turn tile had before it was placed
	prior map[TileID]Location

	tileCount int
}

// NewBoard creates an empty board with the standard bonus layout
func NewBoard() *Board {
	return NewBoardWithBonuses(standardBonusLayout())
}

// NewBoardWithBonuses creates an empty board using the given bonus layout.
// The layout is copied; the board never mutates it.
func NewBoardWithBonuses(layout [][]Bonus) *Board {
	size := len(layout)
	cells := make([][]*Tile, size)
	bonuses := make([][]Bonus, size)
	for i := range cells {
		cells[i] = make([]*Tile, size)
		bonuses[i] = make([]Bonus, size)
		copy(bonuses[i], layout[i])
	}
	return &Board{
		Size:    size,
		cells:   cells,
		bonuses: bonuses,
		current: make(map[TileID]Position),
		prior:   make(map[TileID]Location),
	}
}

// OpeningCell is the only cell a first move can start from
func (b *Board) OpeningCell() Position {
	return Position{Row: b.Size / 2, Col: b.Size / 2}
}

// InBounds returns true if the position is on the grid
func (b *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// TileAt returns the tile in a cell, or nil if empty or out of bounds
func (b *Board) TileAt(pos Position) *Tile {
	if !b.InBounds(pos) {
		return nil
	}
	return b.cells[pos.Row][pos.Col]
}

// IsOccupied returns true if a tile sits in the cell
func (b *Board) IsOccupied(pos Position) bool {
	return b.TileAt(pos) != nil
}

// CanPlace returns true if the cell is in bounds and empty
func (b *Board) CanPlace(pos Position) bool {
	return b.InBounds(pos) && b.cells[pos.Row][pos.Col] == nil
}

// Bonus returns the static bonus of a cell
func (b *Board) Bonus(pos Position) Bonus {
	if !b.InBounds(pos) {
		return BonusNone
	}
	return b.bonuses[pos.Row][pos.Col]
}

// IsEmpty returns true if no tiles at all are on the board
func (b *Board) IsEmpty() bool {
	return b.tileCount == 0
}

// TileCount returns the number of tiles on the board
func (b *Board) TileCount() int {
	return b.tileCount
}

// HasCommittedTiles returns true if any tile from an earlier turn is placed
func (b *Board) HasCommittedTiles() bool {
	return b.tileCount > len(b.current)
}

// IsCommitted returns true if the cell holds a tile from an earlier turn
func (b *Board) IsCommitted(pos Position) bool {
	t := b.TileAt(pos)
	if t == nil {
		return false
	}
	_, current := b.current[t.ID]
	return !current
}

// Place puts a tile in an empty in-bounds cell and adds it to the current
// turn. A current-turn tile already on the board is moved. Tiles committed
// in an earlier turn cannot be moved. Returns false without mutation on failure.
func (b *Board) Place(tile *Tile, pos Position) bool {
	if !b.CanPlace(pos) {
		return false
	}

	if tile.Location.Kind == LocationBoard {
		old := tile.Location.Pos
		if _, ok := b.current[tile.ID]; !ok || b.TileAt(old) != tile {
			return false
		}
		b.cells[old.Row][old.Col] = nil
		delete(b.current, tile.ID)
		b.tileCount--
	} else {
		b.prior[tile.ID] = tile.Location
	}

	b.cells[pos.Row][pos.Col] = tile
	b.current[tile.ID] = pos
	b.tileCount++
	tile.Location = Location{Kind: LocationBoard, Pos: pos}
	return true
}

// Remove vacates the tile's cell and drops it from the current turn.
// The tile gets back the location it had before it was placed.
// Returns false if the tile is not a current-turn tile on the board.
func (b *Board) Remove(tile *Tile) bool {
	if tile.Location.Kind != LocationBoard {
		return false
	}
	pos := tile.Location.Pos
	if _, ok := b.current[tile.ID]; !ok || b.TileAt(pos) != tile {
		return false
	}

	b.cells[pos.Row][pos.Col] = nil
	b.tileCount--
	delete(b.current, tile.ID)

	if prior, ok := b.prior[tile.ID]; ok {
		tile.Location = prior
		delete(b.prior, tile.ID)
	} else {
		tile.Location = Location{}
	}
	return true
}

// Lift takes a committed tile off the board and moves it to the given
// location. It undoes simulated plays. Returns false if the tile is not
// committed on the board.
func (b *Board) Lift(tile *Tile, to Location) bool {
	if tile.Location.Kind != LocationBoard || to.Kind == LocationBoard {
		return false
	}
	pos := tile.Location.Pos
	if _, current := b.current[tile.ID]; current || b.TileAt(pos) != tile {
		return false
	}

	b.cells[pos.Row][pos.Col] = nil
	b.tileCount--
	tile.Location = to
	return true
}

// InCurrentTurn returns true if the tile was placed this turn
func (b *Board) InCurrentTurn(id TileID) bool {
	_, ok := b.current[id]
	return ok
}

// CurrentTurnCount returns the number of tiles placed this turn
func (b *Board) CurrentTurnCount() int {
	return len(b.current)
}

// CurrentTurn returns the current-turn tiles ordered by row then column
func (b *Board) CurrentTurn() []*Tile {
	tiles := make([]*Tile, 0, len(b.current))
	for _, pos := range b.current {
		tiles = append(tiles, b.cells[pos.Row][pos.Col])
	}
	sort.Slice(tiles, func(i, j int) bool {
		pi, pj := tiles[i].Location.Pos, tiles[j].Location.Pos
		if pi.Row != pj.Row {
			return pi.Row < pj.Row
		}
		return pi.Col < pj.Col
	})
	return tiles
}

// CurrentPositions returns the current-turn cells ordered by row then column
func (b *Board) CurrentPositions() []Position {
	tiles := b.CurrentTurn()
	positions := make([]Position, len(tiles))
	for i, t := range tiles {
		positions[i] = t.Location.Pos
	}
	return positions
}

// Commit makes the current-turn tiles permanent and clears the turn
func (b *Board) Commit() {
	b.current = make(map[TileID]Position)
	b.prior = make(map[TileID]Location)
}

// WordStart scans backward from pos along the orientation to the first cell
// of the contiguous run of occupied cells
func (b *Board) WordStart(pos Position, o Orientation) Position {
	start := pos
	for b.IsOccupied(start.Step(o, -1)) {
		start = start.Step(o, -1)
	}
	return start
}

// WordAt returns the word formed through pos along the orientation, reading
// contiguous occupied cells in both directions. Empty if pos is empty.
func (b *Board) WordAt(pos Position, o Orientation) string {
	if !b.IsOccupied(pos) {
		return ""
	}
	var letters []rune
	for p := b.WordStart(pos, o); b.IsOccupied(p); p = p.Step(o, 1) {
		letters = append(letters, b.TileAt(p).Face())
	}
	return string(letters)
}

// HasOccupiedNeighbor returns true if any 4-adjacent cell holds a tile
func (b *Board) HasOccupiedNeighbor(pos Position) bool {
	for _, n := range b.Neighbors(pos) {
		if b.IsOccupied(n) {
			return true
		}
	}
	return false
}

// Neighbors returns the in-bounds 4-adjacent cells
func (b *Board) Neighbors(pos Position) []Position {
	candidates := [4]Position{
		{Row: pos.Row - 1, Col: pos.Col},
		{Row: pos.Row + 1, Col: pos.Col},
		{Row: pos.Row, Col: pos.Col - 1},
		{Row: pos.Row, Col: pos.Col + 1},
	}
	out := make([]Position, 0, 4)
	for _, c := range candidates {
		if b.InBounds(c) {
			out = append(out, c)
		}
	}
	return out
}
