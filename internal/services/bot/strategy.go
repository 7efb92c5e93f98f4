package bot

import (
	"fmt"

	"github.com/mcoot/othello/internal/dependencies/random"
	"github.com/mcoot/othello/internal/model"
)

// Strategy defines how a bot chooses a placement
type Strategy interface {
	// ChooseMove selects one of the legal placements, which is never empty
	ChooseMove(p model.Position, legal []model.Action) model.Action
}

// DefaultStrategies builds every registered strategy keyed by name
func DefaultStrategies(rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		model.BotStrategyRandom: NewRandomStrategy(rnd),
		model.BotStrategyFirst:  NewFirstStrategy(),
	}
}

// Lookup returns the named strategy or ErrUnknownStrategy
func Lookup(strategies map[string]Strategy, name string) (Strategy, error) {
	st, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownStrategy, name)
	}
	return st, nil
}
