package bot

import (
	"context"
	"log/slog"

	"github.com/mcoot/othello/internal/model"
	"github.com/mcoot/othello/internal/services/game"
	"github.com/mcoot/othello/internal/services/rules"
)

// MaxBotIterations is a safety limit for the ProcessBotActions loop
const MaxBotIterations = 1000

// BotActionType represents the type of action a bot took
type BotActionType string

const (
	ActionMove         BotActionType = "move"
	ActionPass         BotActionType = "pass"
	ActionGameComplete BotActionType = "game_complete"
)

// BotAction represents a single action taken by a bot during ProcessBotActions
type BotAction struct {
	Type   BotActionType `json:"type"`
	Side   model.Side    `json:"side,omitempty"`
	Action *model.Action `json:"action,omitempty"`
}

// Service plays the bot seats of a game
type Service struct {
	gameController *game.Controller
	rulesService   *rules.Service
	strategies     map[string]Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	gameController *game.Controller,
	rulesService *rules.Service,
	strategies map[string]Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{
		gameController: gameController,
		rulesService:   rulesService,
		strategies:     strategies,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// Strategy returns the registered strategy with the given name
func (s *Service) Strategy(name string) (Strategy, error) {
	return Lookup(s.strategies, name)
}

// NextMove decides what a bot using the named strategy does in p.
// A pass is returned when the side to move has no placement.
func (s *Service) NextMove(p model.Position, strategy string) (model.Move, error) {
	st, err := s.Strategy(strategy)
	if err != nil {
		return model.Move{}, err
	}

	side := p.SideToMove()
	legal := s.rulesService.LegalMoves(p)
	if len(legal) == 0 {
		return model.PassMove(side), nil
	}
	return model.PlaceMove(side, st.ChooseMove(p, legal)), nil
}

// ProcessBotActions plays bot turns until a human is to move or the game ends.
// It returns all actions taken so handlers can report them.
func (s *Service) ProcessBotActions(ctx context.Context, gameID model.GameID) ([]BotAction, error) {
	var actions []BotAction

	for range MaxBotIterations {
		g, err := s.gameController.GetGame(ctx, gameID)
		if err != nil {
			return actions, err
		}

		if g.IsFinished() {
			if g.State == model.GameStateComplete && len(actions) > 0 {
				actions = append(actions, BotAction{Type: ActionGameComplete})
			}
			break
		}

		seat := g.CurrentSeat()
		if !seat.IsBot() {
			break // Human's turn
		}

		move, err := s.NextMove(g.Position, seat.Strategy)
		if err != nil {
			return actions, err
		}

		if move.Pass {
			if _, err := s.gameController.Pass(ctx, gameID, move.Side); err != nil {
				return actions, err
			}
			actions = append(actions, BotAction{Type: ActionPass, Side: move.Side})
			continue
		}

		if _, err := s.gameController.PlayMove(ctx, gameID, move.Side, move.Action); err != nil {
			return actions, err
		}
		action := move.Action
		actions = append(actions, BotAction{Type: ActionMove, Side: move.Side, Action: &action})
	}

	if len(actions) > 0 {
		s.logger.Debug("bot actions processed",
			slog.String("game_id", string(gameID)),
			slog.Int("actions", len(actions)),
		)
	}

	return actions, nil
}
