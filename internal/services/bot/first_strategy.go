package bot

import "github.com/mcoot/othello/internal/model"

// FirstStrategy always takes the first legal placement in row-major order.
// It makes bot games reproducible.
type FirstStrategy struct{}

// NewFirstStrategy creates a new FirstStrategy
func NewFirstStrategy() *FirstStrategy {
	return &FirstStrategy{}
}

// ChooseMove returns the lowest legal placement in row-major order
func (s *FirstStrategy) ChooseMove(p model.Position, legal []model.Action) model.Action {
	return legal[0]
}
