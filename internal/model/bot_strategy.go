package model

import "slices"

// Bot strategy constants
const (
	BotStrategyRandom = "random"
	BotStrategyFirst  = "first"

	DefaultBotStrategy = BotStrategyRandom
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyRandom:
		return "Random"
	case BotStrategyFirst:
		return "First legal move"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyRandom, BotStrategyFirst}
}

// IsValidBotStrategy reports whether name is a known strategy
func IsValidBotStrategy(name string) bool {
	return slices.Contains(ValidBotStrategies(), name)
}
