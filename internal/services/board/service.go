package board

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/mcoot/wordgame/internal/model"
)

// Dictionary is the word oracle turn validation consults
type Dictionary interface {
	IsValidWord(word string) bool
}

// Failure reasons reported by ValidateTurn
const (
	ReasonNoTiles        = "no tiles placed"
	ReasonUnassigned     = "every blank tile needs a letter"
	ReasonNotInLine      = "tiles must be placed in a single row or column"
	ReasonGap            = "tiles must form a continuous line without gaps"
	ReasonMissesOpening  = "the first word must cover the centre cell"
	ReasonNotConnected   = "tiles must connect to a word already on the board"
	reasonInvalidWordFmt = "%q is not a valid word"
)

// Validation is the outcome of ValidateTurn
type Validation struct {
	Valid  bool
	Reason string
	Main   WordRef
	Cross  []WordRef
}

// Words returns the main word followed by the crossing words
func (v Validation) Words() []string {
	if v.Main.Word == "" {
		return nil
	}
	words := []string{v.Main.Word}
	for _, w := range v.Cross {
		words = append(words, w.Word)
	}
	return words
}

// Service validates and ends turns on a board
type Service struct {
	dictionary Dictionary
	logger     *slog.Logger
}

// New creates a new BoardService
func New(dictionary Dictionary, logger *slog.Logger) *Service {
	return &Service{
		dictionary: dictionary,
		logger:     logger.With(slog.String("component", "board")),
	}
}

// PlaceTile puts a rack or current-turn tile on an empty cell
func (s *Service) PlaceTile(board *model.Board, tile *model.Tile, pos model.Position) error {
	if !board.InBounds(pos) {
		return model.ErrInvalidPosition
	}
	if board.IsOccupied(pos) {
		return model.ErrCellOccupied
	}
	if tile.Location.Kind == model.LocationBoard && !board.InCurrentTurn(tile.ID) {
		return model.ErrTileNotPlaced
	}
	if !board.Place(tile, pos) {
		return model.ErrInvalidPosition
	}
	return nil
}

// RetractTile removes a current-turn tile from the board
func (s *Service) RetractTile(board *model.Board, tile *model.Tile) error {
	if !board.InCurrentTurn(tile.ID) {
		return model.ErrTileNotPlaced
	}
	board.Remove(tile)
	return nil
}

// RetractAll removes every current-turn tile and returns them
func (s *Service) RetractAll(board *model.Board) []*model.Tile {
	tiles := board.CurrentTurn()
	for _, t := range tiles {
		board.Remove(t)
	}
	return tiles
}

// AssignBlank chooses the display letter of a blank tile
func (s *Service) AssignBlank(tile *model.Tile, letter rune) error {
	if !tile.IsBlank() {
		return model.ErrNotBlank
	}
	if err := ValidateLetter(letter); err != nil {
		return err
	}
	tile.Assigned = unicode.ToUpper(letter)
	return nil
}

// ValidateLetter checks if a letter is a valid A-Z character
func ValidateLetter(letter rune) error {
	upper := unicode.ToUpper(letter)
	if upper < 'A' || upper > 'Z' {
		return model.ErrInvalidLetter
	}
	return nil
}

// ValidateTurn checks the current-turn tiles: something is placed, the
// placement is a single gap-free line attached to the board (or covering the
// opening cell on the first move), and every word formed is in the dictionary.
func (s *Service) ValidateTurn(board *model.Board) Validation {
	positions := board.CurrentPositions()
	if len(positions) == 0 {
		return fail(ReasonNoTiles)
	}

	for _, t := range board.CurrentTurn() {
		if t.IsBlank() && t.Assigned == 0 {
			return fail(ReasonUnassigned)
		}
	}

	if reason := checkShape(board, positions); reason != "" {
		return fail(reason)
	}

	main, ok := MainWord(board)
	if !ok || main.Word == "" {
		return fail(ReasonNotInLine)
	}
	if !s.dictionary.IsValidWord(main.Word) {
		return fail(fmt.Sprintf(reasonInvalidWordFmt, strings.ToUpper(main.Word)))
	}

	cross := CrossWords(board, main)
	for _, w := range cross {
		if !s.dictionary.IsValidWord(w.Word) {
			return fail(fmt.Sprintf(reasonInvalidWordFmt, strings.ToUpper(w.Word)))
		}
	}

	return Validation{Valid: true, Main: main, Cross: cross}
}

// EndTurn validates the turn. On success the result reports how many tiles
// were placed; committing and scoring are left to the caller. On failure the
// tiles stay where they are.
func (s *Service) EndTurn(board *model.Board) model.TurnResult {
	v := s.ValidateTurn(board)
	if !v.Valid {
		s.logger.Debug("turn rejected", slog.String("reason", v.Reason))
		return model.TurnResult{Message: v.Reason}
	}
	return model.TurnResult{
		Success: true,
		Placed:  board.CurrentTurnCount(),
		Words:   v.Words(),
	}
}

func fail(reason string) Validation {
	return Validation{Reason: reason}
}

// checkShape returns a failure reason, or "" if the placement geometry is legal
func checkShape(board *model.Board, positions []model.Position) string {
	o, ok := lineOf(board, positions)
	if !ok {
		return ReasonNotInLine
	}

	first, last := positions[0], positions[len(positions)-1]
	for p := first; p != last; p = p.Step(o, 1) {
		if !board.IsOccupied(p) {
			return ReasonGap
		}
	}

	if !board.HasCommittedTiles() {
		opening := board.OpeningCell()
		for _, p := range positions {
			if p == opening {
				return ""
			}
		}
		return ReasonMissesOpening
	}

	for _, p := range positions {
		for _, n := range board.Neighbors(p) {
			if board.IsCommitted(n) {
				return ""
			}
		}
	}
	return ReasonNotConnected
}

// Interface for dependency injection
type ServiceInterface interface {
	PlaceTile(board *model.Board, tile *model.Tile, pos model.Position) error
	RetractTile(board *model.Board, tile *model.Tile) error
	RetractAll(board *model.Board) []*model.Tile
	AssignBlank(tile *model.Tile, letter rune) error
	ValidateTurn(board *model.Board) Validation
	EndTurn(board *model.Board) model.TurnResult
}

var _ ServiceInterface = (*Service)(nil)
