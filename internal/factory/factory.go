package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/connectfour-go/internal/dependencies/clock"
	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/services/analysis"
	"github.com/mcoot/connectfour-go/internal/services/game"
	"github.com/mcoot/connectfour-go/internal/services/player"
	"github.com/mcoot/connectfour-go/internal/storage"
	"github.com/mcoot/connectfour-go/internal/storage/memory"
	redisstorage "github.com/mcoot/connectfour-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Output receives game transcripts and human prompts
	Output io.Writer

	// Services
	GameController  *game.Controller
	AnalysisService *analysis.Service

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Game sets the board size (optional)
	// If zero value, defaults to game.DefaultConfig()
	Game game.Config
	// Output receives game output (optional)
	// If nil, output is discarded
	Output io.Writer
	// Seed makes every random choice reproducible when set
	Seed *uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	var closer io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig, logger)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closer = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	gameCfg := cfg.Game
	if gameCfg.Height == 0 && gameCfg.Width == 0 {
		gameCfg = game.DefaultConfig()
	}

	out := cfg.Output
	if out == nil {
		out = io.Discard
	}

	app := newWithDependencies(store, clk, rnd, out, gameCfg, logger)
	app.closer = closer
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	out io.Writer,
	gameCfg game.Config,
	logger *slog.Logger,
) *App {
	gameController := game.NewController(store, clk, rnd, out, logger, gameCfg)
	analysisService := analysis.New(rnd, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		Output:          out,
		GameController:  gameController,
		AnalysisService: analysisService,
	}
}

// NewPlayer builds a player sharing the app's randomness and output.
// in is only read by human players.
func (a *App) NewPlayer(cfg player.Config, in io.Reader) (player.Player, error) {
	return player.New(cfg, player.Deps{
		Random: a.Random,
		In:     in,
		Out:    a.Output,
	})
}

// Close releases the storage connection, if any
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
