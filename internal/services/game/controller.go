package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/othello/internal/dependencies/clock"
	"github.com/mcoot/othello/internal/dependencies/random"
	"github.com/mcoot/othello/internal/model"
	"github.com/mcoot/othello/internal/services/rules"
	"github.com/mcoot/othello/internal/services/scoring"
	"github.com/mcoot/othello/internal/storage"
)

const (
	// GameIDAlphabet is the character set for generated game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
)

// CreateGameOptions configures a new game
type CreateGameOptions struct {
	// Position is an encoded start position; empty means the standard opening
	Position string
	Light    model.Seat
	Dark     model.Seat
}

// Controller manages the game lifecycle and turn flow
type Controller struct {
	storage        storage.Storage
	rulesService   *rules.Service
	scoringService *scoring.Service
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	rulesService *rules.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		rulesService:   rulesService,
		scoringService: scoringService,
		clock:          clock,
		random:         random,
		logger:         logger.With(slog.String("component", "game-controller")),
	}
}

// CreateGame starts a new game from the standard opening or a supplied position
func (c *Controller) CreateGame(ctx context.Context, opts CreateGameOptions) (*model.Game, error) {
	light, dark := withDefaultSeat(opts.Light), withDefaultSeat(opts.Dark)
	if err := light.Validate(); err != nil {
		return nil, err
	}
	if err := dark.Validate(); err != nil {
		return nil, err
	}

	position := model.InitialPosition()
	if opts.Position != "" {
		decoded, err := model.DecodePosition(opts.Position)
		if err != nil {
			return nil, err
		}
		position = decoded
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(c.random.String(GameIDLength, GameIDAlphabet)),
		State:     model.GameStateInProgress,
		Position:  position,
		Light:     light,
		Dark:      dark,
		Moves:     []model.Move{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	// A decoded position may already be finished
	c.completeIfTerminal(game)

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("light", light.String()),
		slog.String("dark", dark.String()),
		slog.String("position", position.Encode()),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns all stored games
func (c *Controller) ListGames(ctx context.Context) ([]*model.Game, error) {
	return c.storage.ListGames(ctx)
}

// LegalMoves returns the legal placements for the side to move in a game
func (c *Controller) LegalMoves(ctx context.Context, gameID model.GameID) ([]model.Action, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsFinished() {
		return []model.Action{}, nil
	}
	return c.rulesService.LegalMoves(game.Position), nil
}

// PlayMove places a disc for side, which must be the side to move
func (c *Controller) PlayMove(ctx context.Context, gameID model.GameID, side model.Side, action model.Action) (*model.Game, error) {
	game, err := c.loadPlayable(ctx, gameID, side)
	if err != nil {
		return nil, err
	}

	flips := len(c.rulesService.Flips(game.Position, action))
	next, err := c.rulesService.Apply(game.Position, action)
	if err != nil {
		return nil, err
	}

	move := model.PlaceMove(side, action)
	move.Flipped = flips
	return c.record(ctx, game, next, move)
}

// Pass gives the turn away when side has no legal placement
func (c *Controller) Pass(ctx context.Context, gameID model.GameID, side model.Side) (*model.Game, error) {
	game, err := c.loadPlayable(ctx, gameID, side)
	if err != nil {
		return nil, err
	}

	next, err := c.rulesService.Pass(game.Position)
	if err != nil {
		return nil, err
	}

	return c.record(ctx, game, next, model.PassMove(side))
}

// AbandonGame ends a game prematurely
func (c *Controller) AbandonGame(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.IsFinished() {
		return nil // Already finished
	}

	game.State = model.GameStateAbandoned
	game.UpdatedAt = c.clock.Now()

	c.logger.Info("game abandoned",
		slog.String("game_id", string(gameID)),
		slog.Int("moves", len(game.Moves)),
	)

	return c.storage.SaveGame(ctx, game)
}

// loadPlayable fetches a game and checks it is side's turn in a live game
func (c *Controller) loadPlayable(ctx context.Context, gameID model.GameID, side model.Side) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	switch game.State {
	case model.GameStateComplete:
		return nil, model.ErrGameComplete
	case model.GameStateAbandoned:
		return nil, model.ErrGameAbandoned
	}

	if side != game.Position.SideToMove() {
		return nil, model.ErrNotPlayerTurn
	}
	return game, nil
}

// record stores the position after a move and completes the game if it is over
func (c *Controller) record(ctx context.Context, game *model.Game, next model.Position, move model.Move) (*model.Game, error) {
	game.Position = next
	game.Moves = append(game.Moves, move)
	game.UpdatedAt = c.clock.Now()
	c.completeIfTerminal(game)

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("move played",
		slog.String("game_id", string(game.ID)),
		slog.String("side", move.Side.String()),
		slog.String("move", move.String()),
		slog.Int("flipped", move.Flipped),
	)

	return game, nil
}

// completeIfTerminal marks the game complete and records the result once
// neither side can move
func (c *Controller) completeIfTerminal(game *model.Game) {
	if game.State != model.GameStateInProgress || !c.rulesService.IsTerminal(game.Position) {
		return
	}

	game.State = model.GameStateComplete
	game.Result = c.scoringService.Result(game.Position)

	c.logger.Info("game completed",
		slog.String("game_id", string(game.ID)),
		slog.String("winner", game.Result.Winner.String()),
		slog.Int("light", game.Result.Score.Light),
		slog.Int("dark", game.Result.Score.Dark),
	)
}

// withDefaultSeat treats a zero seat as human
func withDefaultSeat(seat model.Seat) model.Seat {
	if seat.Kind == "" {
		return model.HumanSeat()
	}
	return seat
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, opts CreateGameOptions) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	LegalMoves(ctx context.Context, gameID model.GameID) ([]model.Action, error)
	PlayMove(ctx context.Context, gameID model.GameID, side model.Side, action model.Action) (*model.Game, error)
	Pass(ctx context.Context, gameID model.GameID, side model.Side) (*model.Game, error)
	AbandonGame(ctx context.Context, gameID model.GameID) error
}

var _ ControllerInterface = (*Controller)(nil)
