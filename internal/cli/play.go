package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour-go/internal/api/response"
	"github.com/mcoot/connectfour-go/internal/factory"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/game"
	"github.com/mcoot/connectfour-go/internal/services/player"
)

type sideFlags struct {
	kind      string
	tiebreak  string
	lookahead int
}

func (f sideFlags) config(checker model.Checker) (player.Config, error) {
	kind, err := model.ParsePlayerKind(f.kind)
	if err != nil {
		return player.Config{}, fmt.Errorf("player %s: %w (want one of %v)", checker, err, model.ValidPlayerKinds())
	}
	pc := player.Config{Kind: kind, Checker: checker}
	if kind == model.PlayerKindAI {
		tiebreak, err := model.ParseTiebreak(f.tiebreak)
		if err != nil {
			return player.Config{}, fmt.Errorf("player %s: %w (want one of %v)", checker, err, model.ValidTiebreaks())
		}
		pc.Tiebreak = tiebreak
		pc.Lookahead = f.lookahead
	}
	return pc, nil
}

func newPlayCmd() *cobra.Command {
	var (
		x, o          sideFlags
		height, width int
		oFirst        bool
		seed          uint64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Long: `Play a game between two players. Each side is one of human, random or ai.
Human players type a column number when prompted.`,
		Example: `  connectfour play --o ai --o-lookahead 4
  connectfour play --x ai --o ai --x-tiebreak RANDOM --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			xCfg, err := x.config(model.CheckerX)
			if err != nil {
				return err
			}
			oCfg, err := o.config(model.CheckerO)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			// Keep stdout clean for the JSON record
			transcript := cmd.OutOrStdout()
			if out.IsJSON() {
				transcript = cmd.ErrOrStderr()
			}

			var seedPtr *uint64
			if cmd.Flags().Changed("seed") {
				seedPtr = &seed
			}

			app, err := factory.New(cfg.FactoryConfig(logger, transcript, game.Config{Height: height, Width: width}, seedPtr))
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			// Two human players share one buffered reader
			in := bufio.NewReader(cmd.InOrStdin())
			xPlayer, err := app.NewPlayer(xCfg, in)
			if err != nil {
				return err
			}
			oPlayer, err := app.NewPlayer(oCfg, in)
			if err != nil {
				return err
			}

			first, second := xPlayer, oPlayer
			if oFirst {
				first, second = oPlayer, xPlayer
			}

			record, err := app.GameController.PlayGame(cmd.Context(), first, second)
			if err != nil {
				return err
			}

			if out.IsJSON() {
				out.Print(response.GameFromModel(record))
			} else {
				out.PrintMessage(fmt.Sprintf("Game ID: %s", record.ID))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&x.kind, "x", string(model.PlayerKindHuman), "X player: human, random, ai")
	cmd.Flags().StringVar(&x.tiebreak, "x-tiebreak", string(model.TiebreakLeft), "X AI tiebreak: LEFT, RIGHT, RANDOM")
	cmd.Flags().IntVar(&x.lookahead, "x-lookahead", 3, "X AI lookahead")
	cmd.Flags().StringVar(&o.kind, "o", string(model.PlayerKindAI), "O player: human, random, ai")
	cmd.Flags().StringVar(&o.tiebreak, "o-tiebreak", string(model.TiebreakLeft), "O AI tiebreak: LEFT, RIGHT, RANDOM")
	cmd.Flags().IntVar(&o.lookahead, "o-lookahead", 3, "O AI lookahead")
	cmd.Flags().IntVar(&height, "height", model.DefaultHeight, "Board rows")
	cmd.Flags().IntVar(&width, "width", model.DefaultWidth, "Board columns")
	cmd.Flags().BoolVar(&oFirst, "o-first", false, "Let O make the first move")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible random moves")

	return cmd
}
