package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/othello/internal/model"
	"github.com/mcoot/othello/internal/services/bot"
	"github.com/mcoot/othello/internal/services/rules"
	"github.com/mcoot/othello/internal/services/scoring"
	"github.com/mcoot/othello/internal/testutil"
)

type SessionSuite struct {
	suite.Suite
	rules   *rules.Service
	scoring *scoring.Service
	bots    *bot.Service
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.rules = rules.New()
	s.scoring = scoring.New(s.rules)
	strategies := map[string]bot.Strategy{
		model.BotStrategyFirst:  bot.NewFirstStrategy(),
		model.BotStrategyRandom: bot.NewFirstStrategy(),
	}
	s.bots = bot.NewService(nil, s.rules, strategies, testutil.NopLogger())
}

func (s *SessionSuite) newSession(p model.Position, human model.Side) *Session {
	session, err := NewSession(s.rules, s.scoring, s.bots, Options{
		Position: p,
		Human:    human,
		Strategy: model.BotStrategyFirst,
	})
	s.Require().NoError(err)
	return session
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func (s *SessionSuite) TestHumanMovesFirstAsLight() {
	session := s.newSession(model.InitialPosition(), model.LightSide)

	s.True(session.HumanToMove())
	s.Len(session.LegalMoves(), 4)
	s.Empty(session.Moves())
	s.Contains(session.Status(), "Your move (O)")
}

func (s *SessionSuite) TestBotOpensWhenHumanIsDark() {
	session := s.newSession(model.InitialPosition(), model.DarkSide)

	s.True(session.HumanToMove())
	s.Require().Len(session.Moves(), 1)
	s.Equal(model.Action{Row: 2, Col: 4}, session.Moves()[0].Action)
	s.Equal("Bot played (2,4)", session.Message())
}

func (s *SessionSuite) TestPlayThenBotReplies() {
	session := s.newSession(model.InitialPosition(), model.LightSide)

	s.Require().NoError(session.Play(model.Action{Row: 2, Col: 4}))

	s.Len(session.Moves(), 2)
	s.Equal(model.LightSide, session.Position().SideToMove())
	s.Equal(model.DarkSide, session.Moves()[1].Side)
}

func (s *SessionSuite) TestIllegalPlayKeepsPosition() {
	session := s.newSession(model.InitialPosition(), model.LightSide)

	err := session.Play(model.Action{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrIllegalMove)
	s.Equal(model.InitialPosition(), session.Position())
	s.NotEmpty(session.Message())
}

func (s *SessionSuite) TestPassOnlyWhenBlocked() {
	session := s.newSession(model.InitialPosition(), model.LightSide)
	s.ErrorIs(session.Pass(), model.ErrPassNotAllowed)

	blocked := model.MustDecodePosition("B" + strings.ReplaceAll("OX......"+strings.Repeat(".", 56), ".", "E"))
	session = s.newSession(blocked, model.DarkSide)
	s.Contains(session.Status(), "press p to pass")

	// Light replies by capturing the last dark disc, ending the game
	s.Require().NoError(session.Pass())
	s.True(session.Finished())
	s.Contains(session.Status(), "bot wins")
}

func (s *SessionSuite) TestCursorStaysOnBoard() {
	session := s.newSession(model.InitialPosition(), model.LightSide)

	for range 20 {
		session.MoveCursor(-1, -1)
	}
	s.Equal(model.Action{Row: 0, Col: 0}, session.Cursor())

	session.MoveCursor(1, 2)
	s.Equal(model.Action{Row: 1, Col: 2}, session.Cursor())
}

func (s *SessionSuite) TestHandleKeys() {
	session := s.newSession(model.InitialPosition(), model.LightSide)

	// Cursor starts at (3,3); move to (2,4) and play
	s.False(handleKey(session, key('k')))
	s.False(handleKey(session, key('l')))
	s.False(handleKey(session, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	s.Len(session.Moves(), 2)

	s.True(handleKey(session, key('q')))
}

func (s *SessionSuite) TestRejectsBadOptions() {
	_, err := NewSession(s.rules, s.scoring, s.bots, Options{
		Position: model.InitialPosition(),
		Human:    model.NoSide,
		Strategy: model.BotStrategyFirst,
	})
	s.ErrorIs(err, model.ErrInvalidSide)

	_, err = NewSession(s.rules, s.scoring, s.bots, Options{
		Position: model.InitialPosition(),
		Human:    model.LightSide,
		Strategy: "minimax",
	})
	s.ErrorIs(err, model.ErrUnknownStrategy)
}
