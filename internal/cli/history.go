package cli

import (
	"fmt"
	"io"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour-go/internal/api/response"
	"github.com/mcoot/connectfour-go/internal/factory"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/game"
)

func newHistoryCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse finished games",
		Long: `Browse finished games. History only outlives a single process with
--storage redis, or with --remote against a running server.`,
	}

	cmd.PersistentFlags().BoolVar(&remote, "remote", false, "Read history from the server given by --server")

	cmd.AddCommand(newHistoryListCmd(&remote))
	cmd.AddCommand(newHistoryShowCmd(&remote))

	return cmd
}

func newHistoryListCmd(remote *bool) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout())

			if *remote {
				var result response.GameList
				if err := client.Get(fmt.Sprintf("/api/v1/games?limit=%d", limit), &result); err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			app, err := newHistoryApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			records, err := app.GameController.ListGames(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out.Print(response.GameListFromModel(records))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of games")

	return cmd
}

func newHistoryShowCmd(remote *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a finished game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout())

			if *remote {
				var result response.Game
				if err := client.Get("/api/v1/games/"+url.PathEscape(args[0]), &result); err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			app, err := newHistoryApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			record, err := app.GameController.GetGame(cmd.Context(), model.GameID(args[0]))
			if err != nil {
				return err
			}
			out.Print(response.GameFromModel(record))
			return nil
		},
	}
}

func newHistoryApp() (*factory.App, error) {
	return factory.New(cfg.FactoryConfig(logger, io.Discard, game.DefaultConfig(), nil))
}
