package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/othello/internal/api"
	"github.com/mcoot/othello/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	configFile string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "othello-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/othello")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		configFile: filepath.Join(t.TempDir(), "config.json"),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	// Keep the developer's own config file out of the test
	cmd.Env = append(os.Environ(), "OTHELLO_CONFIG="+r.configFile)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// Create application
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		RulesService:   app.RulesService,
		ScoringService: app.ScoringService,
		BotService:     app.BotService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: apiRouter,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type gameResponse struct {
	ID         string `json:"id"`
	State      string `json:"state"`
	Position   string `json:"position"`
	SideToMove string `json:"side_to_move"`
	Status     string `json:"status"`
	LegalMoves []struct {
		Row int `json:"row"`
		Col int `json:"col"`
	} `json:"legal_moves"`
	Moves  []json.RawMessage `json:"moves"`
	Result *struct {
		Winner string `json:"winner"`
	} `json:"result"`
}

type moveResponse struct {
	Game       gameResponse `json:"game"`
	BotActions []struct {
		Type string `json:"type"`
	} `json:"bot_actions"`
}

func TestCLIHealth(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()
	cli := newCLIRunner(t, ts.addr)

	out, err := cli.run("health")
	require.NoError(t, err, out)
	assert.Contains(t, out, `"ok"`)
}

func TestCLIGameAgainstBot(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()
	cli := newCLIRunner(t, ts.addr)

	out, err := cli.run("game", "new", "--dark", "bot:first")
	require.NoError(t, err, out)

	var game gameResponse
	require.NoError(t, json.Unmarshal([]byte(out), &game))
	require.Len(t, game.ID, 12)
	assert.Equal(t, "light", game.SideToMove)

	// Play the first legal move until the game ends or Light must pass
	for range 64 {
		if game.State != "in_progress" {
			break
		}

		var args []string
		if len(game.LegalMoves) == 0 {
			args = []string{"game", "pass", game.ID}
		} else {
			m := game.LegalMoves[0]
			args = []string{"game", "move", game.ID, strconv.Itoa(m.Row), strconv.Itoa(m.Col)}
		}

		out, err = cli.run(args...)
		require.NoError(t, err, out)

		var resp moveResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		game = resp.Game
	}

	assert.Equal(t, "complete", game.State)
	require.NotNil(t, game.Result)

	out, err = cli.run("game", "list")
	require.NoError(t, err, out)
	assert.Contains(t, out, game.ID)
}

func TestCLIErrors(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()
	cli := newCLIRunner(t, ts.addr)

	out, err := cli.run("game", "get", "NOPE")
	assert.Error(t, err)
	assert.Contains(t, out, "GAME_NOT_FOUND")

	out, err = cli.run("game", "new")
	require.NoError(t, err, out)
	var game gameResponse
	require.NoError(t, json.Unmarshal([]byte(out), &game))

	out, err = cli.run("game", "move", game.ID, "0", "0")
	assert.Error(t, err)
	assert.Contains(t, out, "ILLEGAL_MOVE")

	out, err = cli.run("game", "pass", game.ID)
	assert.Error(t, err)
	assert.Contains(t, out, "PASS_NOT_ALLOWED")

	out, err = cli.run("game", "abandon", game.ID)
	require.NoError(t, err, out)

	out, err = cli.run("game", "move", game.ID, "2", "4")
	assert.Error(t, err)
	assert.Contains(t, out, "GAME_ABANDONED")
}

func TestCLIPositionOffline(t *testing.T) {
	// Offline commands never contact the server
	cli := newCLIRunner(t, "http://127.0.0.1:1")

	out, err := cli.run("position", "moves")
	require.NoError(t, err, out)
	assert.True(t, strings.Contains(out, `"side_to_move": "light"`), out)
}
