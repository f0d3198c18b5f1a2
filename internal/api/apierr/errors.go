package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordgame/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidLetter       = "INVALID_LETTER"
	CodeInvalidPosition     = "INVALID_POSITION"
	CodeCellOccupied        = "CELL_OCCUPIED"
	CodeTileNotFound        = "TILE_NOT_FOUND"
	CodeTileNotInRack       = "TILE_NOT_IN_RACK"
	CodeTileNotPlaced       = "TILE_NOT_PLACED"
	CodeNotBlank            = "NOT_BLANK"
	CodeTilesPending        = "TILES_PENDING"
	CodeInventoryExhausted  = "INVENTORY_EXHAUSTED"
	CodeNotYourTurn         = "NOT_YOUR_TURN"
	CodeGameComplete        = "GAME_COMPLETE"
	CodeNoGameInProgress    = "NO_GAME_IN_PROGRESS"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Invalid board position"}}
	case errors.Is(err, model.ErrCellOccupied):
		return &httpError{http.StatusConflict, APIError{CodeCellOccupied, "Cell is already occupied"}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, "Letter must be A-Z"}}
	case errors.Is(err, model.ErrTileNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTileNotFound, "Tile not found"}}
	case errors.Is(err, model.ErrTileNotInRack):
		return &httpError{http.StatusBadRequest, APIError{CodeTileNotInRack, "Tile is not in your rack"}}
	case errors.Is(err, model.ErrTileNotPlaced):
		return &httpError{http.StatusConflict, APIError{CodeTileNotPlaced, "Tile was not placed this turn"}}
	case errors.Is(err, model.ErrNotBlank):
		return &httpError{http.StatusBadRequest, APIError{CodeNotBlank, "Tile is not a blank"}}
	case errors.Is(err, model.ErrTilesPending):
		return &httpError{http.StatusConflict, APIError{CodeTilesPending, "Retract the tiles placed this turn first"}}
	case errors.Is(err, model.ErrInventoryExhausted):
		return &httpError{http.StatusConflict, APIError{CodeInventoryExhausted, "No tiles left to draw"}}
	case errors.Is(err, model.ErrNotPlayerTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrGameComplete):
		return &httpError{http.StatusConflict, APIError{CodeGameComplete, "Game is already complete"}}
	case errors.Is(err, model.ErrNoGameInProgress):
		return &httpError{http.StatusNotFound, APIError{CodeNoGameInProgress, "No game in progress"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeDictionaryNotLoaded, "Dictionary is not loaded"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
