package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout())
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case TurnResponse:
		o.printTurnResponse(v)
	case History:
		o.printHistory(v)
	case Results:
		o.printResults(v)
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		o.printJSON(data)
	}
}

// Cell response type
type Cell struct {
	Bonus   string `json:"bonus,omitempty"`
	TileID  *int   `json:"tile_id,omitempty"`
	Letter  string `json:"letter,omitempty"`
	Value   int    `json:"value,omitempty"`
	Blank   bool   `json:"blank,omitempty"`
	Current bool   `json:"current,omitempty"`
}

// Tile response type
type Tile struct {
	ID       int    `json:"id"`
	Letter   string `json:"letter"`
	Value    int    `json:"value"`
	Assigned string `json:"assigned,omitempty"`
}

// TurnResult response type
type TurnResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Placed  int      `json:"placed"`
	Score   int      `json:"score"`
	Words   []string `json:"words,omitempty"`
}

// Game response type
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
}

// TurnResponse is the result of end, exchange and pass
type TurnResponse struct {
	Result   TurnResult  `json:"result"`
	Opponent *TurnResult `json:"opponent,omitempty"`
	Game     Game        `json:"game"`
}

// Event response type
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

// History is the game's event list
type History []Event

// GameSummary response type
type GameSummary struct {
	ID          string         `json:"id"`
	FinalScores map[string]int `json:"final_scores"`
	Winner      *string        `json:"winner"`
	Turns       int            `json:"turns"`
	CompletedAt time.Time      `json:"completed_at"`
}

// Results is the list of completed games
type Results []GameSummary

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	fmt.Fprintf(o.w, "Game: %s (%s)\n", g.ID, g.State)
	fmt.Fprintf(o.w, "Turn %d, %s to play, opponent: %s\n", g.TurnNumber, g.CurrentPlayer, g.StrategyDisplay)
	fmt.Fprintf(o.w, "Scores: %s\n", formatScores(g.Scores))
	fmt.Fprintf(o.w, "Tiles left: %d, opponent rack: %d\n", g.TilesRemaining, g.OpponentTiles)
	fmt.Fprintln(o.w)

	o.printBoard(g.Board)

	fmt.Fprintln(o.w)
	fmt.Fprintf(o.w, "Rack: %s\n", formatRack(g.Rack))

	if g.LastResult != nil && !g.LastResult.Success && g.LastResult.Message != "" {
		fmt.Fprintf(o.w, "Last turn rejected: %s\n", g.LastResult.Message)
	}
}

// printBoard renders occupied cells by letter (blanks in lower case, this
// turn's tiles in brackets) and empty cells by bonus code
func (o *Output) printBoard(board [][]Cell) {
	if len(board) == 0 {
		return
	}
	size := len(board)

	fmt.Fprint(o.w, "    ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(o.w, "%2d ", col)
	}
	fmt.Fprintln(o.w)

	for row := 0; row < size; row++ {
		fmt.Fprintf(o.w, " %2d ", row)
		for col := 0; col < size; col++ {
			fmt.Fprint(o.w, formatCell(board[row][col]))
		}
		fmt.Fprintln(o.w)
	}
}

func formatCell(c Cell) string {
	if c.TileID == nil {
		if c.Bonus == "" {
			return " . "
		}
		return c.Bonus + " "
	}

	letter := c.Letter
	if c.Blank {
		letter = strings.ToLower(letter)
	}
	if c.Current {
		return "[" + letter + "]"
	}
	return " " + letter + " "
}

func formatRack(rack []Tile) string {
	if len(rack) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(rack))
	for i, t := range rack {
		letter := t.Letter
		if t.Assigned != "" {
			letter += "=" + t.Assigned
		}
		parts[i] = fmt.Sprintf("%d:%s(%d)", t.ID, letter, t.Value)
	}
	return strings.Join(parts, " ")
}

func formatScores(scores map[string]int) string {
	players := lo.Keys(scores)
	sort.Strings(players)
	return strings.Join(lo.Map(players, func(p string, _ int) string {
		return fmt.Sprintf("%s %d", p, scores[p])
	}), ", ")
}

func (o *Output) printTurnResult(who string, r TurnResult) {
	switch {
	case !r.Success:
		fmt.Fprintf(o.w, "%s: turn rejected: %s\n", who, r.Message)
	case len(r.Words) > 0:
		fmt.Fprintf(o.w, "%s: played %s for %d points\n", who, strings.Join(r.Words, ", "), r.Score)
	case r.Message != "":
		fmt.Fprintf(o.w, "%s: %s\n", who, r.Message)
	default:
		fmt.Fprintf(o.w, "%s: turn over\n", who)
	}
}

func (o *Output) printTurnResponse(t TurnResponse) {
	o.printTurnResult("You", t.Result)
	if t.Opponent != nil {
		o.printTurnResult("Computer", *t.Opponent)
	}
	fmt.Fprintln(o.w)
	o.printGame(t.Game)
}

func (o *Output) printHistory(h History) {
	if len(h) == 0 {
		fmt.Fprintln(o.w, "No turns yet")
		return
	}
	for _, e := range h {
		line := fmt.Sprintf("%3d  %-15s %-6s", e.Turn, e.Type, e.PlayerID)
		if len(e.Words) > 0 {
			line += fmt.Sprintf(" %s (%d pts)", strings.Join(e.Words, ", "), e.Score)
		}
		if e.Message != "" {
			line += " " + e.Message
		}
		fmt.Fprintln(o.w, strings.TrimRight(line, " "))
	}
}

func (o *Output) printResults(r Results) {
	if len(r) == 0 {
		fmt.Fprintln(o.w, "No completed games")
		return
	}
	for _, s := range r {
		winner := "tie"
		if s.Winner != nil {
			winner = *s.Winner + " won"
		}
		fmt.Fprintf(o.w, "%s  %s  %s after %d turns (%s)\n",
			s.CompletedAt.Format(time.DateTime), s.ID, winner, s.Turns, formatScores(s.FinalScores))
	}
}
