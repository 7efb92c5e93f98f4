package bot

import (
	"github.com/mcoot/othello/internal/dependencies/random"
	"github.com/mcoot/othello/internal/model"
)

// RandomStrategy picks uniformly among the legal placements
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseMove returns a random legal placement
func (s *RandomStrategy) ChooseMove(p model.Position, legal []model.Action) model.Action {
	return legal[s.random.Intn(len(legal))]
}
