package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour-go/internal/api/request"
	"github.com/mcoot/connectfour-go/internal/api/response"
	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/analysis"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		checker       string
		tiebreak      string
		lookahead     int
		height, width int
		remote        bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [moves]",
		Short: "Score every column of a position with the AI",
		Long: `Replay a sequence of column digits (X moves first) and score each column
for the side to move, or for --checker if given.`,
		Example: `  connectfour analyze 061626 --lookahead 1
  connectfour analyze 3344 --checker O --tiebreak RIGHT`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var moves string
			if len(args) == 1 {
				moves = args[0]
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())

			if remote {
				req := request.AnalysisRequest{
					Moves:     moves,
					Height:    height,
					Width:     width,
					Checker:   checker,
					Tiebreak:  tiebreak,
					Lookahead: &lookahead,
				}
				var result response.Analysis
				if err := client.Post("/api/v1/analysis", req, &result); err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			req := analysis.Request{
				Height:    height,
				Width:     width,
				Moves:     moves,
				Tiebreak:  model.Tiebreak(tiebreak),
				Lookahead: lookahead,
			}
			if checker != "" {
				c, err := model.ParseChecker(checker)
				if err != nil {
					return err
				}
				req.Checker = c
			}

			service := analysis.New(random.New(), logger)
			result, err := service.Analyze(req)
			if err != nil {
				return err
			}

			out.Print(response.AnalysisFromResult(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&checker, "checker", "", "Side to score for: X or O (default: side to move)")
	cmd.Flags().StringVar(&tiebreak, "tiebreak", string(model.TiebreakLeft), "Tiebreak: LEFT, RIGHT, RANDOM")
	cmd.Flags().IntVar(&lookahead, "lookahead", 3, "Moves to look ahead")
	cmd.Flags().IntVar(&height, "height", model.DefaultHeight, "Board rows")
	cmd.Flags().IntVar(&width, "width", model.DefaultWidth, "Board columns")
	cmd.Flags().BoolVar(&remote, "remote", false, "Analyze on the server given by --server")

	return cmd
}
