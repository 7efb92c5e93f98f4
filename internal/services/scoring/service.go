package scoring

import (
	"github.com/mcoot/othello/internal/model"
	"github.com/mcoot/othello/internal/services/rules"
)

// Outcome summarises a position for display and for recording results
type Outcome struct {
	Score    model.Score
	Winner   model.Side // NoSide while undecided or drawn
	Terminal bool
}

// Service provides disc counting and winner determination
type Service struct {
	rules *rules.Service
}

// New creates a new ScoringService
func New(rules *rules.Service) *Service {
	return &Service{
		rules: rules,
	}
}

// Score counts the discs of each colour and the empty cells
func (s *Service) Score(p model.Position) model.Score {
	return model.Score{
		Light: p.Count(model.Light),
		Dark:  p.Count(model.Dark),
		Empty: p.Count(model.Empty),
	}
}

// Outcome scores p and names the winner if the position is terminal
func (s *Service) Outcome(p model.Position) Outcome {
	score := s.Score(p)
	outcome := Outcome{
		Score:    score,
		Terminal: s.rules.IsTerminal(p),
	}
	if outcome.Terminal {
		outcome.Winner = s.DetermineWinner(score)
	}
	return outcome
}

// Result builds the stored result for a finished game
func (s *Service) Result(p model.Position) *model.GameResult {
	score := s.Score(p)
	return &model.GameResult{
		Score:  score,
		Winner: s.DetermineWinner(score),
	}
}

// DetermineWinner returns the side with more discs, or NoSide for a tie
func (s *Service) DetermineWinner(score model.Score) model.Side {
	switch {
	case score.Light > score.Dark:
		return model.LightSide
	case score.Dark > score.Light:
		return model.DarkSide
	default:
		return model.NoSide
	}
}
