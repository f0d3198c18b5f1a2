package model

import "time"

// GameID uniquely identifies a session
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress"
	GameStateComplete   GameState = "complete"
)

// MaxScorelessTurns ends the game after this many consecutive turns
// without points (passes, exchanges, failed AI turns)
const MaxScorelessTurns = 6

// Game holds the session-level state outside the board and racks
type Game struct {
	ID            GameID
	State         GameState
	CurrentPlayer PlayerID
	Scores        map[PlayerID]int
	TurnNumber    int
	Scoreless     int
	// LastResult is the outcome of the most recent end-turn request
	LastResult *TurnResult
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsComplete returns true once the game has ended
func (g *Game) IsComplete() bool {
	return g.State == GameStateComplete
}

// CellView is the read-only rendering view of a single cell
type CellView struct {
	Pos      Position
	Bonus    Bonus
	TileID   TileID
	Letter   rune // Face letter, 0 for an empty cell
	Value    int
	Blank    bool
	Current  bool // Placed this turn and still retractable
	Occupied bool
}

// TileView is the read-only view of a rack tile
type TileView struct {
	ID       TileID
	Letter   rune
	Value    int
	Assigned rune
}

// Snapshot is the read-only session state handed to the presentation layer
type Snapshot struct {
	Game          Game
	Cells         [][]CellView
	Rack          []TileView
	OpponentTiles int
	Remaining     int
	Strategy      string
}

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	ID          GameID
	FinalScores map[PlayerID]int
	Winner      PlayerID // Empty if tie
	Turns       int
	CompletedAt time.Time
}
