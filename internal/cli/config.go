package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/connectfour-go/internal/factory"
	"github.com/mcoot/connectfour-go/internal/services/game"
	redisstorage "github.com/mcoot/connectfour-go/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Storage   string
	RedisURL  string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("CONNECTFOUR_SERVER", "http://localhost:8080"),
		Storage:   getEnvOrDefault("CONNECTFOUR_STORAGE", factory.StorageTypeMemory),
		RedisURL:  getEnvOrDefault("CONNECTFOUR_REDIS_URL", redisstorage.DefaultConfig().URL),
		Output:    getEnvOrDefault("CONNECTFOUR_OUTPUT", "text"),
		Verbose:   false,
	}
}

// NewLogger builds the CLI logger. Logs go to w as JSON so they never mix with game output.
func (c *Config) NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// FactoryConfig translates CLI settings into application settings
func (c *Config) FactoryConfig(logger *slog.Logger, out io.Writer, gameCfg game.Config, seed *uint64) factory.Config {
	fc := factory.Config{
		Logger:      logger,
		StorageType: c.Storage,
		Game:        gameCfg,
		Output:      out,
		Seed:        seed,
	}
	if c.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
