package rules

import (
	"github.com/mcoot/othello/internal/model"
)

// Status classifies a position from the point of view of the side to move
type Status string

const (
	StatusPlaying      Status = "playing"       // Side to move has at least one legal move
	StatusPassRequired Status = "pass_required" // Side to move is blocked but the opponent is not
	StatusTerminal     Status = "terminal"      // Neither side can move, or the board is full
)

// Service implements the Othello rules over model.Position values.
// It holds no state; every method is a pure function of its arguments.
type Service struct{}

// New creates a new rules Service
func New() *Service {
	return &Service{}
}

// IsLegal reports whether the side to move may place a disc at a
func (s *Service) IsLegal(p model.Position, a model.Action) bool {
	return isLegalFor(p, a, p.SideToMove())
}

// LegalMoves returns every legal action for the side to move in row-major order
func (s *Service) LegalMoves(p model.Position) []model.Action {
	return s.LegalMovesFor(p, p.SideToMove())
}

// LegalMovesFor returns every legal action for side, whoever is to move
func (s *Service) LegalMovesFor(p model.Position, side model.Side) []model.Action {
	moves := []model.Action{}
	for row := 0; row < model.Size; row++ {
		for col := 0; col < model.Size; col++ {
			a := model.Action{Row: row, Col: col}
			if isLegalFor(p, a, side) {
				moves = append(moves, a)
			}
		}
	}
	return moves
}

// HasAnyLegalMove reports whether side has at least one legal placement
func (s *Service) HasAnyLegalMove(p model.Position, side model.Side) bool {
	for row := 0; row < model.Size; row++ {
		for col := 0; col < model.Size; col++ {
			if isLegalFor(p, model.Action{Row: row, Col: col}, side) {
				return true
			}
		}
	}
	return false
}

// Flips returns the cells that would change colour if the side to move played a,
// or nil if a is not legal
func (s *Service) Flips(p model.Position, a model.Action) []model.Action {
	side := p.SideToMove()
	if !isLegalFor(p, a, side) {
		return nil
	}

	var flips []model.Action
	for _, d := range directions {
		n := bracketed(p, a, d, side)
		for i := 1; i <= n; i++ {
			flips = append(flips, model.Action{Row: a.Row + i*d.dRow, Col: a.Col + i*d.dCol})
		}
	}
	return flips
}

// Apply plays a for the side to move and returns the resulting position.
// The input position is never modified. An illegal action returns an
// *model.IllegalMoveError.
func (s *Service) Apply(p model.Position, a model.Action) (model.Position, error) {
	side := p.SideToMove()
	if !isLegalFor(p, a, side) {
		return p, model.NewIllegalMoveError(a, side)
	}

	disc := side.Disc()
	cells := p.Cells()
	cells[a.Row][a.Col] = disc
	for _, d := range directions {
		n := bracketed(p, a, d, side)
		for i := 1; i <= n; i++ {
			cells[a.Row+i*d.dRow][a.Col+i*d.dCol] = disc
		}
	}

	return model.NewPosition(cells, side.Opponent()), nil
}

// Pass hands the turn to the opponent. It is only allowed when the side to
// move has no legal placement and the opponent does.
func (s *Service) Pass(p model.Position) (model.Position, error) {
	if !s.NeedsPass(p) {
		return p, model.ErrPassNotAllowed
	}
	return p.WithSideToMove(p.SideToMove().Opponent()), nil
}

// NeedsPass reports whether the side to move is blocked while the opponent can still play
func (s *Service) NeedsPass(p model.Position) bool {
	side := p.SideToMove()
	if !side.IsValid() || p.IsFull() {
		return false
	}
	return !s.HasAnyLegalMove(p, side) && s.HasAnyLegalMove(p, side.Opponent())
}

// IsTerminal reports whether the game is over: the board is full or neither side can move
func (s *Service) IsTerminal(p model.Position) bool {
	if p.IsFull() {
		return true
	}
	return !s.HasAnyLegalMove(p, model.LightSide) && !s.HasAnyLegalMove(p, model.DarkSide)
}

// Status classifies p as playing, pass-required or terminal
func (s *Service) Status(p model.Position) Status {
	switch {
	case s.IsTerminal(p):
		return StatusTerminal
	case s.NeedsPass(p):
		return StatusPassRequired
	default:
		return StatusPlaying
	}
}

// isLegalFor checks the target is empty and at least one direction brackets
// a run of opponent discs with one of side's own
func isLegalFor(p model.Position, a model.Action, side model.Side) bool {
	if !side.IsValid() || !a.OnBoard() {
		return false
	}
	if p.At(a.Row, a.Col) != model.Empty {
		return false
	}
	for _, d := range directions {
		if bracketed(p, a, d, side) > 0 {
			return true
		}
	}
	return false
}

// bracketed walks from a in direction d and returns the number of opponent
// discs between a and the first disc owned by side. It returns 0 if the walk
// leaves the board or reaches an empty cell first.
func bracketed(p model.Position, a model.Action, d direction, side model.Side) int {
	own := side.Disc()
	opp := side.Opponent().Disc()

	count := 0
	row, col := a.Row+d.dRow, a.Col+d.dCol
	for onBoard(row, col) {
		switch p.At(row, col) {
		case opp:
			count++
		case own:
			return count
		default:
			return 0
		}
		row += d.dRow
		col += d.dCol
	}
	return 0
}

func onBoard(row, col int) bool {
	return row >= 0 && row < model.Size && col >= 0 && col < model.Size
}

// Interface for dependency injection
type ServiceInterface interface {
	IsLegal(p model.Position, a model.Action) bool
	LegalMoves(p model.Position) []model.Action
	LegalMovesFor(p model.Position, side model.Side) []model.Action
	HasAnyLegalMove(p model.Position, side model.Side) bool
	Flips(p model.Position, a model.Action) []model.Action
	Apply(p model.Position, a model.Action) (model.Position, error)
	Pass(p model.Position) (model.Position, error)
	NeedsPass(p model.Position) bool
	IsTerminal(p model.Position) bool
	Status(p model.Position) Status
}

var _ ServiceInterface = (*Service)(nil)
