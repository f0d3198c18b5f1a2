package model

// TileID is a stable handle assigned to a tile when the inventory is built.
// It stays valid while the tile moves between inventory, racks and the board.
type TileID int

// BlankLetter is the letter type of the two zero-value blank tiles
const BlankLetter = '_'

// LocationKind says where a tile currently lives
type LocationKind int

const (
	LocationNone LocationKind = iota
	LocationInventory
	LocationRack
	LocationBoard
)

func (k LocationKind) String() string {
	switch k {
	case LocationInventory:
		return "inventory"
	case LocationRack:
		return "rack"
	case LocationBoard:
		return "board"
	default:
		return "none"
	}
}

// Location records the single owner of a tile
type Location struct {
	Kind  LocationKind
	Owner PlayerID // Set when Kind is LocationRack
	Pos   Position // Set when Kind is LocationBoard
}

// Tile is a single letter tile
type Tile struct {
	ID       TileID
	Letter   rune // Letter type, BlankLetter for blanks
	Value    int
	Assigned rune // Display letter chosen for a blank, 0 if unassigned
	Location Location
}

// IsBlank returns true for blank tiles
func (t *Tile) IsBlank() bool {
	return t.Letter == BlankLetter
}

// Face returns the letter shown on the board. Blanks show their assigned
// letter once one has been chosen.
func (t *Tile) Face() rune {
	if t.IsBlank() && t.Assigned != 0 {
		return t.Assigned
	}
	return t.Letter
}
