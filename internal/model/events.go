package model

import "time"

// EventType identifies the type of turn event
type EventType string

const (
	EventGameStarted   EventType = "game_started"
	EventMoveCommitted EventType = "move_committed"
	EventRackExchanged EventType = "rack_exchanged"
	EventTurnPassed    EventType = "turn_passed"
	EventMoveFailed    EventType = "move_failed"
	EventGameComplete  EventType = "game_complete"
)

// Event is one entry in a game's turn history
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID
	PlayerID  PlayerID // The player who acted, empty for game-level events
	Turn      int
	Words     []string
	Tiles     int
	Score     int
	Message   string
}
