package response

import (
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/wordgame/internal/model"
)

// Cell represents one board cell. Empty cells carry only their bonus.
type Cell struct {
	Bonus   string `json:"bonus,omitempty"`
	TileID  *int   `json:"tile_id,omitempty"`
	Letter  string `json:"letter,omitempty"`
	Value   int    `json:"value,omitempty"`
	Blank   bool   `json:"blank,omitempty"`
	Current bool   `json:"current,omitempty"`
}

// CellFromModel converts model.CellView
func CellFromModel(c model.CellView) Cell {
	cell := Cell{Bonus: c.Bonus.Code()}
	if !c.Occupied {
		return cell
	}
	id := int(c.TileID)
	cell.TileID = &id
	cell.Letter = string(c.Letter)
	cell.Value = c.Value
	cell.Blank = c.Blank
	cell.Current = c.Current
	return cell
}

// Tile represents a rack tile
type Tile struct {
	ID       int    `json:"id"`
	Letter   string `json:"letter"`
	Value    int    `json:"value"`
	Assigned string `json:"assigned,omitempty"`
}

// TileFromModel converts model.TileView
func TileFromModel(t model.TileView) Tile {
	tile := Tile{
		ID:     int(t.ID),
		Letter: string(t.Letter),
		Value:  t.Value,
	}
	if t.Assigned != 0 {
		tile.Assigned = string(t.Assigned)
	}
	return tile
}

// TurnResult represents the outcome of a turn
type TurnResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Placed  int      `json:"placed"`
	Score   int      `json:"score"`
	Words   []string `json:"words,omitempty"`
}

// TurnResultFromModel converts model.TurnResult
func TurnResultFromModel(r model.TurnResult) TurnResult {
	return TurnResult{
		Success: r.Success,
		Message: r.Message,
		Placed:  r.Placed,
		Score:   r.Score,
		Words:   r.Words,
	}
}

// Game represents the full session state shown to the human player
type Game struct {
	ID              string         `json:"id"`
	State           string         `json:"state"`
	CurrentPlayer   string         `json:"current_player"`
	TurnNumber      int            `json:"turn_number"`
	Scores          map[string]int `json:"scores"`
	ScorelessTurns  int            `json:"scoreless_turns"`
	Board           [][]Cell       `json:"board"`
	Rack            []Tile         `json:"rack"`
	OpponentTiles   int            `json:"opponent_tiles"`
	TilesRemaining  int            `json:"tiles_remaining"`
	Strategy        string         `json:"strategy"`
	StrategyDisplay string         `json:"strategy_display"`
	LastResult      *TurnResult    `json:"last_result,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// GameFromModel converts model.Snapshot to response Game
func GameFromModel(s *model.Snapshot) Game {
	board := lo.Map(s.Cells, func(row []model.CellView, _ int) []Cell {
		return lo.Map(row, func(c model.CellView, _ int) Cell { return CellFromModel(c) })
	})

	var last *TurnResult
	if s.Game.LastResult != nil {
		r := TurnResultFromModel(*s.Game.LastResult)
		last = &r
	}

	return Game{
		ID:              string(s.Game.ID),
		State:           string(s.Game.State),
		CurrentPlayer:   string(s.Game.CurrentPlayer),
		TurnNumber:      s.Game.TurnNumber,
		Scores:          scoresFromModel(s.Game.Scores),
		ScorelessTurns:  s.Game.Scoreless,
		Board:           board,
		Rack:            lo.Map(s.Rack, func(t model.TileView, _ int) Tile { return TileFromModel(t) }),
		OpponentTiles:   s.OpponentTiles,
		TilesRemaining:  s.Remaining,
		Strategy:        s.Strategy,
		StrategyDisplay: model.BotStrategyDisplayName(s.Strategy),
		LastResult:      last,
		CreatedAt:       s.Game.CreatedAt,
		UpdatedAt:       s.Game.UpdatedAt,
	}
}

// TurnResponse is returned by the turn-ending endpoints: the human's result,
// the computer's reply if it moved, and the state afterwards
type TurnResponse struct {
	Result   TurnResult  `json:"result"`
	Opponent *TurnResult `json:"opponent,omitempty"`
	Game     Game        `json:"game"`
}

// Event represents one history entry
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	PlayerID  string    `json:"player_id,omitempty"`
	Turn      int       `json:"turn"`
	Words     []string  `json:"words,omitempty"`
	Tiles     int       `json:"tiles,omitempty"`
	Score     int       `json:"score"`
	Message   string    `json:"message,omitempty"`
}

// EventFromModel converts model.Event
func EventFromModel(e model.Event) Event {
	return Event{
		Type:      string(e.Type),
		Timestamp: e.Timestamp,
		PlayerID:  string(e.PlayerID),
		Turn:      e.Turn,
		Words:     e.Words,
		Tiles:     e.Tiles,
		Score:     e.Score,
		Message:   e.Message,
	}
}

// GameSummary represents a completed game summary
type GameSummary struct {
	ID          string         `json:"id"`
	FinalScores map[string]int `json:"final_scores"`
	Winner      *string        `json:"winner"`
	Turns       int            `json:"turns"`
	CompletedAt time.Time      `json:"completed_at"`
}

// GameSummaryFromModel converts model.GameSummary
func GameSummaryFromModel(g *model.GameSummary) GameSummary {
	var winner *string
	if g.Winner != "" {
		w := string(g.Winner)
		winner = &w
	}
	return GameSummary{
		ID:          string(g.ID),
		FinalScores: scoresFromModel(g.FinalScores),
		Winner:      winner,
		Turns:       g.Turns,
		CompletedAt: g.CompletedAt,
	}
}

func scoresFromModel(scores map[model.PlayerID]int) map[string]int {
	return lo.MapKeys(scores, func(_ int, pid model.PlayerID) string { return string(pid) })
}
