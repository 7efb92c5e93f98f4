package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/othello/internal/api"
	"github.com/mcoot/othello/internal/api/apierr"
	"github.com/mcoot/othello/internal/api/response"
	"github.com/mcoot/othello/internal/factory"
	"github.com/mcoot/othello/internal/model"
)

const initialEncoding = "WEEEEEEEEEEEEEEEEEEEEEEEEEEEOXEEEEEEXOEEEEEEEEEEEEEEEEEEEEEEEEEEE"

// Dark to move with no placement; Light can capture at (0,2)
var passEncoding = "B" + strings.ReplaceAll("OX......"+strings.Repeat(".", 56), ".", "E")

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		RulesService:   app.RulesService,
		ScoringService: app.ScoringService,
		BotService:     app.BotService,
	})

	return &testServer{handler: router}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) createGame(t *testing.T, body any) response.Game {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/games", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var g response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
	return g
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestCreateGameDefaults(t *testing.T) {
	ts := newTestServer(t)

	g := ts.createGame(t, nil)

	assert.Len(t, g.ID, 12)
	assert.Equal(t, "in_progress", g.State)
	assert.Equal(t, initialEncoding, g.Position)
	assert.Equal(t, "light", g.SideToMove)
	assert.Equal(t, "playing", g.Status)
	assert.Equal(t, model.HumanSeat(), g.Light)
	assert.Equal(t, response.Score{Light: 2, Dark: 2, Empty: 60}, g.Score)
	assert.Len(t, g.LegalMoves, 4)
	assert.Empty(t, g.Moves)
}

func TestCreateGameWithBadPosition(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]string{"position": "WEEE"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidPositionFormat, errorCode(t, rr))
}

func TestCreateGameWithUnknownStrategy(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"dark": map[string]string{"kind": "bot", "strategy": "minimax"}}
	rr := ts.request(http.MethodPost, "/api/v1/games", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeUnknownStrategy, errorCode(t, rr))
}

func TestCreateGameRejectsUnknownFields(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]string{"grid_size": "5"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rr))
}

func TestOversizedBodyRejected(t *testing.T) {
	ts := newTestServer(t)

	body := `{"position":"` + strings.Repeat("E", 70000) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/positions/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, apierr.CodeInvalidRequest, resp.Error.Code)
	assert.Equal(t, "Request body too large", resp.Error.Message)
}

func TestBotOpensWhenHoldingFirstMove(t *testing.T) {
	ts := newTestServer(t)

	g := ts.createGame(t, map[string]any{"light": map[string]string{"kind": "bot", "strategy": "first"}})

	require.Len(t, g.Moves, 1)
	assert.Equal(t, model.Action{Row: 2, Col: 4}, g.Moves[0].Action)
	assert.Equal(t, "dark", g.SideToMove)
}

func TestPlayMoveAndBotReply(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t, map[string]any{"dark": map[string]string{"kind": "bot", "strategy": "first"}})

	rr := ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/moves", map[string]int{"row": 2, "col": 4})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp response.MoveResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	require.Len(t, resp.BotActions, 1)
	assert.Equal(t, "move", string(resp.BotActions[0].Type))
	assert.Equal(t, model.DarkSide, resp.BotActions[0].Side)
	assert.Len(t, resp.Game.Moves, 2)
	assert.Equal(t, "light", resp.Game.SideToMove)
}

func TestIllegalMove(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/moves", map[string]int{"row": 0, "col": 0})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeIllegalMove, errorCode(t, rr))
}

func TestMoveForWrongSide(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t, nil)

	body := map[string]any{"row": 2, "col": 3, "side": "dark"}
	rr := ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/moves", body)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, apierr.CodeNotYourTurn, errorCode(t, rr))
}

func TestMoveForBotSeat(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t, map[string]any{"light": map[string]string{"kind": "bot", "strategy": "first"}})

	body := map[string]any{"row": 2, "col": 3, "side": "light"}
	rr := ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/moves", body)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, apierr.CodeNotYourTurn, errorCode(t, rr))
}

func TestPassThenBotFinishes(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t, map[string]any{
		"position": passEncoding,
		"light":    map[string]string{"kind": "bot", "strategy": "first"},
	})

	// Dark is human and passes; the Light bot then finishes the game
	rr := ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/pass", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp response.MoveResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "complete", resp.Game.State)
	require.NotNil(t, resp.Game.Result)
	assert.Equal(t, "light", resp.Game.Result.Winner)
}

func TestPassNotAllowed(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/pass", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodePassNotAllowed, errorCode(t, rr))
}

func TestLegalMovesEndpoint(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t, map[string]string{"position": passEncoding})

	rr := ts.request(http.MethodGet, "/api/v1/games/"+g.ID+"/moves", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.LegalMoves
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "dark", resp.SideToMove)
	assert.NotNil(t, resp.Moves)
	assert.Empty(t, resp.Moves)
}

func TestGetListAndAbandon(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/games/"+g.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list response.GameList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Games, 1)
	assert.Equal(t, g.ID, list.Games[0].ID)

	rr = ts.request(http.MethodDelete, "/api/v1/games/"+g.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/moves", map[string]int{"row": 2, "col": 4})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeGameAbandoned, errorCode(t, rr))
}

func TestGameNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/NOPE", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeGameNotFound, errorCode(t, rr))
}

func TestAnalyzePosition(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/positions/analyze", map[string]string{"position": passEncoding})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.Analysis
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "dark", resp.SideToMove)
	assert.Equal(t, "pass_required", resp.Status)
	assert.Empty(t, resp.LegalMoves)
	assert.Nil(t, resp.Winner)
}

func TestApplyPosition(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"position": initialEncoding, "row": 2, "col": 4}
	rr := ts.request(http.MethodPost, "/api/v1/positions/apply", body)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.ApplyResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []model.Action{{Row: 3, Col: 4}}, resp.Flipped)

	next := model.MustDecodePosition(resp.Position)
	assert.Equal(t, model.DarkSide, next.SideToMove())
	assert.Equal(t, model.Light, next.At(2, 4))
}

func TestApplyIllegal(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"position": initialEncoding, "row": 0, "col": 0}
	rr := ts.request(http.MethodPost, "/api/v1/positions/apply", body)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeIllegalMove, errorCode(t, rr))
}
