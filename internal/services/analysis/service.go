package analysis

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/player"
)

// Request describes a position to analyze
type Request struct {
	Height int
	Width  int
	// Moves is a column-digit sequence played alternately starting with X
	Moves string
	// Checker is the side to score for. CheckerEmpty means the side to move.
	Checker   model.Checker
	Tiebreak  model.Tiebreak
	Lookahead int
}

// Result is the AI's view of a position
type Result struct {
	Checker    model.Checker
	Scores     []int
	BestColumn int // -1 when no column can take a checker
	Board      *model.Board
	XWins      bool
	OWins      bool
	Full       bool
}

// Service scores positions with the lookahead AI
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new analysis Service
func New(random random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: random,
		logger: logger.With(slog.String("component", "analysis")),
	}
}

// Analyze replays req.Moves onto an empty board and scores every column for req.Checker
func (s *Service) Analyze(req Request) (*Result, error) {
	b, err := model.NewBoard(req.Height, req.Width)
	if err != nil {
		return nil, err
	}
	if err := b.AddCheckers(req.Moves); err != nil {
		return nil, err
	}

	checker := req.Checker
	if checker == model.CheckerEmpty || checker == 0 {
		checker = SideToMove(req.Moves)
	}

	ai, err := player.NewAIPlayer(checker, req.Tiebreak, req.Lookahead, s.random)
	if err != nil {
		return nil, err
	}

	scores, err := ai.ScoresFor(b)
	if err != nil {
		return nil, fmt.Errorf("scoring position: %w", err)
	}

	best := -1
	if !b.IsFull() {
		best = ai.ChooseBest(scores)
	}

	s.logger.Debug("position analyzed",
		slog.String("moves", req.Moves),
		slog.String("checker", checker.String()),
		slog.Int("lookahead", req.Lookahead),
		slog.Int("best_column", best),
	)

	return &Result{
		Checker:    checker,
		Scores:     scores,
		BestColumn: best,
		Board:      b,
		XWins:      b.IsWinFor(model.CheckerX),
		OWins:      b.IsWinFor(model.CheckerO),
		Full:       b.IsFull(),
	}, nil
}

// SideToMove returns the checker due to play after moves
func SideToMove(moves string) model.Checker {
	if len(moves)%2 == 0 {
		return model.CheckerX
	}
	return model.CheckerO
}
