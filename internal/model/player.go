package model

import (
	"fmt"
	"strings"
)

// PlayerKind distinguishes human-controlled seats from bots
type PlayerKind string

const (
	PlayerHuman PlayerKind = "human"
	PlayerBot   PlayerKind = "bot"
)

// Seat describes who plays one side of a game
type Seat struct {
	Kind     PlayerKind `json:"kind"`
	Strategy string     `json:"strategy,omitempty"` // Bot strategy name, empty for humans
}

// HumanSeat returns a seat controlled by a human
func HumanSeat() Seat {
	return Seat{Kind: PlayerHuman}
}

// BotSeat returns a seat played by the named bot strategy
func BotSeat(strategy string) Seat {
	return Seat{Kind: PlayerBot, Strategy: strategy}
}

// IsBot returns true if the seat is played by a bot
func (s Seat) IsBot() bool {
	return s.Kind == PlayerBot
}

// String returns "human" or "bot:<strategy>"
func (s Seat) String() string {
	if s.IsBot() {
		return string(PlayerBot) + ":" + s.Strategy
	}
	return string(PlayerHuman)
}

// ParseSeat reads "human", "bot" or "bot:<strategy>".
// A bare "bot" uses the default strategy.
func ParseSeat(s string) (Seat, error) {
	kind, strategy, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	switch PlayerKind(kind) {
	case PlayerHuman, "":
		if strategy != "" {
			return Seat{}, fmt.Errorf("%w: human seat takes no strategy", ErrInvalidSeat)
		}
		return HumanSeat(), nil
	case PlayerBot:
		if strategy == "" {
			strategy = DefaultBotStrategy
		}
		return BotSeat(strategy), nil
	default:
		return Seat{}, fmt.Errorf("%w: %q", ErrInvalidSeat, s)
	}
}

// Validate checks that the seat kind and strategy are known
func (s Seat) Validate() error {
	switch s.Kind {
	case PlayerHuman:
		return nil
	case PlayerBot:
		if !IsValidBotStrategy(s.Strategy) {
			return fmt.Errorf("%w: %q", ErrUnknownStrategy, s.Strategy)
		}
		return nil
	default:
		return fmt.Errorf("%w: kind %q", ErrInvalidSeat, s.Kind)
	}
}
