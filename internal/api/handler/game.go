package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/othello/internal/api/request"
	"github.com/mcoot/othello/internal/api/response"
	"github.com/mcoot/othello/internal/model"
	"github.com/mcoot/othello/internal/services/bot"
	"github.com/mcoot/othello/internal/services/game"
	"github.com/mcoot/othello/internal/services/rules"
	"github.com/mcoot/othello/internal/services/scoring"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	rulesService   *rules.Service
	scoringService *scoring.Service
	botService     *bot.Service
	logger         *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	gameController *game.Controller,
	rulesService *rules.Service,
	scoringService *scoring.Service,
	botService *bot.Service,
	logger *slog.Logger,
) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		rulesService:   rulesService,
		scoringService: scoringService,
		botService:     botService,
		logger:         logger,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := decodeBody(w, r, &req, true); err != nil {
		WriteError(w, err)
		return
	}

	opts := game.CreateGameOptions{Position: req.Position}
	if req.Light != nil {
		opts.Light = *req.Light
	}
	if req.Dark != nil {
		opts.Dark = *req.Dark
	}

	g, err := h.gameController.CreateGame(r.Context(), opts)
	if err != nil {
		WriteError(w, err)
		return
	}

	// A bot may hold the opening move
	if _, err := h.processBotActions(r.Context(), g.ID); err != nil {
		WriteError(w, err)
		return
	}

	h.writeGame(w, r.Context(), g.ID, http.StatusCreated)
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameController.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.GameList{Games: make([]response.GameSummary, len(games))}
	for i, g := range games {
		resp.Games[i] = response.GameSummaryFromModel(g)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeGame(w, r.Context(), gameIDFromRequest(r), http.StatusOK)
}

// Abandon handles DELETE /api/v1/games/{id}
func (h *GameHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.AbandonGame(r.Context(), gameIDFromRequest(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// LegalMoves handles GET /api/v1/games/{id}/moves
func (h *GameHandler) LegalMoves(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDFromRequest(r)

	g, err := h.gameController.GetGame(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	moves, err := h.gameController.LegalMoves(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LegalMoves{
		SideToMove: g.Position.SideToMove().String(),
		Moves:      moves,
	})
}

// Move handles POST /api/v1/games/{id}/moves
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDFromRequest(r)

	var req request.MoveRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	side, err := h.humanSide(r.Context(), gameID, req.Side)
	if err != nil {
		WriteError(w, err)
		return
	}

	if _, err := h.gameController.PlayMove(r.Context(), gameID, side, model.Action{Row: req.Row, Col: req.Col}); err != nil {
		WriteError(w, err)
		return
	}

	h.respondAfterTurn(w, r.Context(), gameID)
}

// Pass handles POST /api/v1/games/{id}/pass
func (h *GameHandler) Pass(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDFromRequest(r)

	var req request.PassRequest
	if err := decodeBody(w, r, &req, true); err != nil {
		WriteError(w, err)
		return
	}

	side, err := h.humanSide(r.Context(), gameID, req.Side)
	if err != nil {
		WriteError(w, err)
		return
	}

	if _, err := h.gameController.Pass(r.Context(), gameID, side); err != nil {
		WriteError(w, err)
		return
	}

	h.respondAfterTurn(w, r.Context(), gameID)
}

// humanSide resolves the side a request acts for. Bots move on their own,
// so a request for a bot seat is refused.
func (h *GameHandler) humanSide(ctx context.Context, gameID model.GameID, requested string) (model.Side, error) {
	g, err := h.gameController.GetGame(ctx, gameID)
	if err != nil {
		return model.NoSide, err
	}

	side, err := model.ParseSide(requested)
	if err != nil {
		return model.NoSide, err
	}
	if side == model.NoSide {
		side = g.Position.SideToMove()
	}

	// Finished games are rejected by the controller with a more specific error
	if !g.IsFinished() && g.SeatFor(side).IsBot() {
		return model.NoSide, model.ErrNotPlayerTurn
	}
	return side, nil
}

// respondAfterTurn lets bots reply and writes the resulting game
func (h *GameHandler) respondAfterTurn(w http.ResponseWriter, ctx context.Context, gameID model.GameID) {
	actions, err := h.processBotActions(ctx, gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.GetGame(ctx, gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	if actions == nil {
		actions = []bot.BotAction{}
	}
	response.JSON(w, http.StatusOK, response.MoveResponse{
		Game:       h.gameView(g),
		BotActions: actions,
	})
}

// processBotActions runs bot turns for the game
func (h *GameHandler) processBotActions(ctx context.Context, gameID model.GameID) ([]bot.BotAction, error) {
	if h.botService == nil {
		return nil, nil
	}

	actions, err := h.botService.ProcessBotActions(ctx, gameID)
	if err != nil {
		h.logger.Error("bot actions failed",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
		return actions, err
	}
	return actions, nil
}

func (h *GameHandler) writeGame(w http.ResponseWriter, ctx context.Context, gameID model.GameID, status int) {
	g, err := h.gameController.GetGame(ctx, gameID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, status, h.gameView(g))
}

// gameView adds the rule-derived fields to a stored game
func (h *GameHandler) gameView(g *model.Game) response.Game {
	var legal []model.Action
	status := string(rules.StatusTerminal)
	if !g.IsFinished() {
		legal = h.rulesService.LegalMoves(g.Position)
		status = string(h.rulesService.Status(g.Position))
	}
	return response.GameFromModel(g, status, h.scoringService.Score(g.Position), legal)
}

func gameIDFromRequest(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}
