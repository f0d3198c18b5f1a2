package model

// PlayerID identifies one of the two seats in a session
type PlayerID string

const (
	PlayerHuman PlayerID = "human"
	PlayerAI    PlayerID = "ai"
)

// Opponent returns the other seat
func (p PlayerID) Opponent() PlayerID {
	if p == PlayerHuman {
		return PlayerAI
	}
	return PlayerHuman
}
