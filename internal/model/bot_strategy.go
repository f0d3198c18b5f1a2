package model

// Bot strategy constants
const (
	BotStrategyGreedy  = "greedy"
	BotStrategyMinimax = "minimax"
)

// DefaultBotStrategy is the search policy used when none is configured
const DefaultBotStrategy = BotStrategyGreedy

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyGreedy:
		return "Greedy"
	case BotStrategyMinimax:
		return "Minimax (depth 2)"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyGreedy, BotStrategyMinimax}
}
