package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mcoot/connectfour-go/internal/api"
	"github.com/mcoot/connectfour-go/internal/factory"
	redisstorage "github.com/mcoot/connectfour-go/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
		Output:      io.Discard,
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		GameController:  app.GameController,
		AnalysisService: app.AnalysisService,
		MaxLookahead:    intFromEnv(logger, "MAX_LOOKAHEAD", api.DefaultMaxLookahead),
		MaxHeight:       intFromEnv(logger, "MAX_HEIGHT", api.DefaultMaxHeight),
		MaxWidth:        intFromEnv(logger, "MAX_WIDTH", api.DefaultMaxWidth),
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = intFromEnv(logger, "PORT", serverConfig.Port)
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// intFromEnv reads an integer setting, exiting if it is not a number
func intFromEnv(logger *slog.Logger, key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logger.Error(key+" must be an integer", slog.String("value", raw))
		os.Exit(1)
	}
	return v
}
