package model

// RackSize is the maximum number of tiles a player may hold
const RackSize = 7

// Rack is a player's ordered hand of tiles
type Rack struct {
	Owner PlayerID
	tiles []*Tile
}

// NewRack creates an empty rack for the given player
func NewRack(owner PlayerID) *Rack {
	return &Rack{
		Owner: owner,
		tiles: make([]*Tile, 0, RackSize),
	}
}

// Add appends a tile and marks it as rack-resident.
// Returns false without mutation when the rack is full.
func (r *Rack) Add(tile *Tile) bool {
	if len(r.tiles) >= RackSize {
		return false
	}
	r.tiles = append(r.tiles, tile)
	tile.Location = Location{Kind: LocationRack, Owner: r.Owner}
	return true
}

// Remove detaches a tile from the rack. It does not change the tile's
// location; the next owner sets that. Returns false if the tile is absent.
func (r *Rack) Remove(tile *Tile) bool {
	i := r.index(tile.ID)
	if i < 0 {
		return false
	}
	// Keep order so the presentation layer shows a stable rack
	r.tiles = append(r.tiles[:i], r.tiles[i+1:]...)
	return true
}

// Contains returns true if the tile with the given ID is in the rack
func (r *Rack) Contains(id TileID) bool {
	return r.index(id) >= 0
}

// Get returns the tile with the given ID, or nil
func (r *Rack) Get(id TileID) *Tile {
	if i := r.index(id); i >= 0 {
		return r.tiles[i]
	}
	return nil
}

// Tiles returns a copy of the rack contents in order
func (r *Rack) Tiles() []*Tile {
	out := make([]*Tile, len(r.tiles))
	copy(out, r.tiles)
	return out
}

// Len returns the number of tiles held
func (r *Rack) Len() int {
	return len(r.tiles)
}

// IsFull returns true when the rack is at capacity
func (r *Rack) IsFull() bool {
	return len(r.tiles) >= RackSize
}

// Clear empties the rack and returns the tiles it held
func (r *Rack) Clear() []*Tile {
	out := r.tiles
	r.tiles = make([]*Tile, 0, RackSize)
	return out
}

// Letters returns the rack letters as a string, blanks as BlankLetter
func (r *Rack) Letters() string {
	letters := make([]rune, len(r.tiles))
	for i, t := range r.tiles {
		letters[i] = t.Letter
	}
	return string(letters)
}

func (r *Rack) index(id TileID) int {
	for i, t := range r.tiles {
		if t.ID == id {
			return i
		}
	}
	return -1
}
