// Package tui plays a local game against a bot in the terminal.
package tui

import (
	"errors"
	"fmt"

	"github.com/mcoot/othello/internal/model"
	"github.com/mcoot/othello/internal/services/rules"
	"github.com/mcoot/othello/internal/services/scoring"
)

// MovePicker chooses a bot move for a position
type MovePicker interface {
	NextMove(p model.Position, strategy string) (model.Move, error)
}

// Options configures a local game
type Options struct {
	Position model.Position
	Human    model.Side
	Strategy string
}

// Session holds the state of a local game between a human and a bot.
// It is driven by the board view and knows nothing about the terminal.
type Session struct {
	rules   *rules.Service
	scoring *scoring.Service
	picker  MovePicker

	strategy string
	human    model.Side
	position model.Position
	moves    []model.Move
	cursor   model.Action
	message  string
}

// NewSession starts a game, letting the bot move first if it holds the turn
func NewSession(rulesService *rules.Service, scoringService *scoring.Service, picker MovePicker, opts Options) (*Session, error) {
	if !opts.Human.IsValid() {
		return nil, fmt.Errorf("%w: human must play light or dark", model.ErrInvalidSide)
	}
	if !model.IsValidBotStrategy(opts.Strategy) {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownStrategy, opts.Strategy)
	}

	s := &Session{
		rules:    rulesService,
		scoring:  scoringService,
		picker:   picker,
		strategy: opts.Strategy,
		human:    opts.Human,
		position: opts.Position,
		cursor:   model.Action{Row: model.Size/2 - 1, Col: model.Size/2 - 1},
	}

	if err := s.playBot(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Position() model.Position { return s.position }
func (s *Session) Human() model.Side        { return s.human }
func (s *Session) Cursor() model.Action     { return s.cursor }
func (s *Session) Moves() []model.Move      { return s.moves }
func (s *Session) Message() string          { return s.message }

// Finished reports whether neither side can move
func (s *Session) Finished() bool {
	return s.rules.IsTerminal(s.position)
}

// HumanToMove reports whether the game is waiting on the human
func (s *Session) HumanToMove() bool {
	return !s.Finished() && s.position.SideToMove() == s.human
}

// LegalMoves returns the placements open to the human, or none while the bot is to move
func (s *Session) LegalMoves() []model.Action {
	if !s.HumanToMove() {
		return nil
	}
	return s.rules.LegalMoves(s.position)
}

// Outcome scores the current position
func (s *Session) Outcome() scoring.Outcome {
	return s.scoring.Outcome(s.position)
}

// MoveCursor shifts the cursor, clamped to the board
func (s *Session) MoveCursor(dRow, dCol int) {
	next := model.Action{Row: s.cursor.Row + dRow, Col: s.cursor.Col + dCol}
	if next.OnBoard() {
		s.cursor = next
	}
}

// PlayCursor places a disc for the human at the cursor
func (s *Session) PlayCursor() error {
	return s.Play(s.cursor)
}

// Play places a disc for the human and lets the bot reply
func (s *Session) Play(a model.Action) error {
	if !s.HumanToMove() {
		return s.fail(errors.New("not your turn"))
	}

	next, err := s.rules.Apply(s.position, a)
	if err != nil {
		return s.fail(err)
	}
	s.record(next, model.PlaceMove(s.human, a))
	s.message = ""

	return s.playBot()
}

// Pass gives up the human's turn when no placement exists
func (s *Session) Pass() error {
	if !s.HumanToMove() {
		return s.fail(errors.New("not your turn"))
	}

	next, err := s.rules.Pass(s.position)
	if err != nil {
		return s.fail(err)
	}
	s.record(next, model.PassMove(s.human))
	s.message = ""

	return s.playBot()
}

// playBot plays bot turns until the human is to move or the game ends
func (s *Session) playBot() error {
	// Each bot turn fills a cell or passes to the human, so this is bounded
	for range 2 * model.Size * model.Size {
		if s.Finished() || s.position.SideToMove() == s.human {
			return nil
		}

		move, err := s.picker.NextMove(s.position, s.strategy)
		if err != nil {
			return err
		}

		var next model.Position
		if move.Pass {
			next, err = s.rules.Pass(s.position)
			s.message = "Bot passed"
		} else {
			next, err = s.rules.Apply(s.position, move.Action)
			s.message = "Bot played " + move.Action.String()
		}
		if err != nil {
			return err
		}
		s.record(next, move)
	}
	return nil
}

func (s *Session) record(next model.Position, move model.Move) {
	s.position = next
	s.moves = append(s.moves, move)
}

func (s *Session) fail(err error) error {
	s.message = err.Error()
	return err
}

// Status is the one-line summary shown under the board
func (s *Session) Status() string {
	outcome := s.Outcome()
	score := fmt.Sprintf("O %d - X %d", outcome.Score.Light, outcome.Score.Dark)

	switch {
	case s.Finished():
		if outcome.Winner == model.NoSide {
			return "Game over: draw, " + score
		}
		if outcome.Winner == s.human {
			return "Game over: you win, " + score
		}
		return "Game over: bot wins, " + score
	case s.rules.NeedsPass(s.position):
		return "No legal moves: press p to pass, " + score
	default:
		return fmt.Sprintf("Your move (%s), %s", discName(s.human), score)
	}
}

func discName(side model.Side) string {
	if side == model.LightSide {
		return "O"
	}
	return "X"
}
