package model

import "errors"

// Common errors used across the application
var (
	// Placement errors
	ErrInvalidPosition = errors.New("invalid board position")
	ErrCellOccupied    = errors.New("cell is already occupied")

	// Tile and rack errors
	ErrTileNotFound       = errors.New("tile not found")
	ErrTileNotInRack      = errors.New("tile is not in the player's rack")
	ErrTileNotPlaced      = errors.New("tile is not placed this turn")
	ErrNotBlank           = errors.New("tile is not a blank")
	ErrInvalidLetter      = errors.New("invalid letter")
	ErrInventoryExhausted = errors.New("tile inventory is empty")

	// Turn errors
	ErrTilesPending     = errors.New("tiles from this turn are still on the board")
	ErrNoMoveFound      = errors.New("no move found")
	ErrNotPlayerTurn    = errors.New("not this player's turn")
	ErrGameComplete     = errors.New("game is already complete")
	ErrNoGameInProgress = errors.New("no game in progress")
	ErrGameNotFound     = errors.New("game not found")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
