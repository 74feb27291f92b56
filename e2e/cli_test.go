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
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/connectfour-go/internal/api"
	"github.com/mcoot/connectfour-go/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	env        []string
}

func newCLIRunner(t *testing.T, env ...string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "connectfour-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/connectfour")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		env:        env,
	}
}

// run executes the CLI and returns stdout
func (r *cliRunner) run(stdin string, args ...string) (string, error) {
	cmd := exec.Command(r.binaryPath, args...)
	cmd.Env = append(os.Environ(), r.env...)
	cmd.Stdin = strings.NewReader(stdin)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return string(output) + stderr.String(), err
	}
	return string(output), nil
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

// startTestServer runs the API over a real listener backed by the given app
func startTestServer(t *testing.T, app *factory.App) string {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		GameController:  app.GameController,
		AnalysisService: app.AnalysisService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")
	return serverURL
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
	ID         string   `json:"id"`
	XPlayer    string   `json:"x_player"`
	OPlayer    string   `json:"o_player"`
	Winner     string   `json:"winner"`
	Tie        bool     `json:"tie"`
	NumMoves   int      `json:"num_moves"`
	FinalBoard []string `json:"final_board"`
	Moves      []struct {
		Checker string `json:"checker"`
		Column  int    `json:"column"`
	} `json:"moves"`
}

type gameListResponse struct {
	Games []gameResponse `json:"games"`
}

type analysisResponse struct {
	Checker    string `json:"checker"`
	Scores     []int  `json:"scores"`
	BestColumn int    `json:"best_column"`
	Full       bool   `json:"full"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_PlayHumanAgainstAI(t *testing.T) {
	cli := newCLIRunner(t)

	output, err := cli.run("3\n3\n3\n3\n", "play", "--o", "ai", "--o-lookahead", "0")
	require.NoError(t, err, "output: %s", output)

	assert.Contains(t, output, "Welcome to Connect Four!")
	assert.Contains(t, output, "Enter a column: ")
	assert.Contains(t, output, "Player X wins in 4 moves\nCongratulations!\n")
}

func TestCLI_PlaySeededGamesReplay(t *testing.T) {
	cli := newCLIRunner(t)

	args := []string{"--output", "json", "play", "--x", "random", "--o", "ai", "--o-tiebreak", "RANDOM", "--o-lookahead", "2", "--seed", "11"}
	first, err := cli.run("", args...)
	require.NoError(t, err, "output: %s", first)
	second, err := cli.run("", args...)
	require.NoError(t, err, "output: %s", second)

	var g1, g2 gameResponse
	require.NoError(t, json.Unmarshal([]byte(first), &g1))
	require.NoError(t, json.Unmarshal([]byte(second), &g2))
	assert.Equal(t, g1.ID, g2.ID)
	assert.Equal(t, g1.Moves, g2.Moves)
	assert.Equal(t, "Player O (RANDOM, 2)", g1.OPlayer)
}

func TestCLI_Analyze(t *testing.T) {
	cli := newCLIRunner(t)

	output, err := cli.run("", "--output", "json", "analyze", "606152", "--lookahead", "2")
	require.NoError(t, err, "output: %s", output)

	var resp analysisResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "X", resp.Checker)
	assert.Equal(t, []int{0, 0, 0, 50, 0, 0, 0}, resp.Scores)
	assert.Equal(t, 3, resp.BestColumn)
}

func TestCLI_RedisHistory(t *testing.T) {
	mini := miniredis.RunT(t)
	cli := newCLIRunner(t,
		"CONNECTFOUR_STORAGE=redis",
		"CONNECTFOUR_REDIS_URL=redis://"+mini.Addr(),
	)

	output, err := cli.run("", "--output", "json", "play", "--x", "ai", "--x-lookahead", "1", "--o", "ai", "--o-lookahead", "0")
	require.NoError(t, err, "output: %s", output)

	var played gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &played))
	assert.Equal(t, "X", played.Winner)
	assert.Equal(t, 8, played.NumMoves)

	// A second process reads the game back out of Redis
	output, err = cli.run("", "--output", "json", "history", "list")
	require.NoError(t, err, "output: %s", output)

	var list gameListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	require.Len(t, list.Games, 1)
	assert.Equal(t, played.ID, list.Games[0].ID)

	output, err = cli.run("", "history", "show", played.ID)
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "Result: X wins in 8 moves")
	assert.Contains(t, output, "|X|X|X|X| | | |")
}

func TestCLI_RemoteCommands(t *testing.T) {
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)
	serverURL := startTestServer(t, app)

	cli := newCLIRunner(t, "CONNECTFOUR_SERVER="+serverURL)

	output, err := cli.run("", "--output", "json", "health")
	require.NoError(t, err, "output: %s", output)
	var health healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &health))
	assert.Equal(t, "ok", health.Status)

	output, err = cli.run("", "--output", "json", "analyze", "061626", "--lookahead", "1", "--remote")
	require.NoError(t, err, "output: %s", output)
	var resp analysisResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, 3, resp.BestColumn)

	output, err = cli.run("", "--output", "json", "history", "list", "--remote")
	require.NoError(t, err, "output: %s", output)
	var list gameListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	assert.Empty(t, list.Games)
}

func TestCLI_ErrorHandling(t *testing.T) {
	cli := newCLIRunner(t)

	output, err := cli.run("", "play", "--x", "robot")
	require.Error(t, err)
	assert.Contains(t, output, "invalid player kind")

	output, err = cli.run("", "analyze", "12a")
	require.Error(t, err)
	assert.Contains(t, output, "invalid move sequence")

	_, err = cli.run("", "play")
	require.Error(t, err, "closed stdin should end a human game with an error")
}
