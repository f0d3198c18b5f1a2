package request

// PlaceRequest is the request body for placing a rack tile on the board
type PlaceRequest struct {
	TileID int `json:"tile_id"`
	Row    int `json:"row"`
	Col    int `json:"col"`
}

// BlankRequest is the request body for choosing a blank tile's letter
type BlankRequest struct {
	TileID int    `json:"tile_id"`
	Letter string `json:"letter"`
}
