package cli

import (
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour-go/internal/api"
	"github.com/mcoot/connectfour-go/internal/factory"
	"github.com/mcoot/connectfour-go/internal/services/game"
)

func newServeCmd() *cobra.Command {
	serverCfg := api.DefaultServerConfig()
	var maxLookahead, maxHeight, maxWidth int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve analysis and game history over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serveLogger := cfg.NewLogger(cmd.ErrOrStderr(), slog.LevelInfo)

			app, err := factory.New(cfg.FactoryConfig(serveLogger, io.Discard, game.DefaultConfig(), nil))
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			router := api.NewRouter(api.RouterConfig{
				Logger:          serveLogger,
				GameController:  app.GameController,
				AnalysisService: app.AnalysisService,
				MaxLookahead:    maxLookahead,
				MaxHeight:       maxHeight,
				MaxWidth:        maxWidth,
			})
			server := api.NewServer(router, serverCfg, serveLogger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&serverCfg.Host, "host", serverCfg.Host, "Listen host")
	cmd.Flags().IntVar(&serverCfg.Port, "port", serverCfg.Port, "Listen port")
	cmd.Flags().IntVar(&maxLookahead, "max-lookahead", api.DefaultMaxLookahead, "Largest lookahead a client may request")
	cmd.Flags().IntVar(&maxHeight, "max-height", api.DefaultMaxHeight, "Most board rows a client may request")
	cmd.Flags().IntVar(&maxWidth, "max-width", api.DefaultMaxWidth, "Most board columns a client may request")

	return cmd
}
