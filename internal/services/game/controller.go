package game

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/connectfour-go/internal/dependencies/clock"
	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/player"
	"github.com/mcoot/connectfour-go/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Config holds the board size used for new games
type Config struct {
	Height int
	Width  int
}

// DefaultConfig returns the standard 6x7 board
func DefaultConfig() Config {
	return Config{
		Height: model.DefaultHeight,
		Width:  model.DefaultWidth,
	}
}

// Controller runs games between two players and records the results
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	out     io.Writer
	logger  *slog.Logger
	cfg     Config
}

// NewController creates a new game Controller. Game output is written to out.
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	out io.Writer,
	logger *slog.Logger,
	cfg Config,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		out:     out,
		logger:  logger.With(slog.String("component", "game")),
		cfg:     cfg,
	}
}

// PlayGame alternates moves between p1 and p2, p1 first, until one of them wins
// or the board fills. The finished game is saved to storage and returned.
func (c *Controller) PlayGame(ctx context.Context, p1, p2 player.Player) (*model.GameRecord, error) {
	if !p1.Checker().IsValid() || !p2.Checker().IsValid() || p1.Checker() == p2.Checker() {
		fmt.Fprintln(c.out, "need one X player and one O player.")
		return nil, model.ErrCheckerConflict
	}

	b, err := model.NewBoard(c.cfg.Height, c.cfg.Width)
	if err != nil {
		return nil, err
	}

	record := &model.GameRecord{
		ID:        model.GameID(c.random.String(12, gameIDAlphabet)),
		Height:    b.Height,
		Width:     b.Width,
		StartedAt: c.clock.Now(),
	}
	for _, p := range []player.Player{p1, p2} {
		if p.Checker() == model.CheckerX {
			record.XPlayer = p.String()
		} else {
			record.OPlayer = p.String()
		}
	}

	logger := c.logger.With(slog.String("game_id", string(record.ID)))
	logger.Info("game started",
		slog.String("x_player", record.XPlayer),
		slog.String("o_player", record.OPlayer),
		slog.Int("height", b.Height),
		slog.Int("width", b.Width),
	)

	fmt.Fprintln(c.out, "Welcome to Connect Four!")
	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, b)

	players := [2]player.Player{p1, p2}
	var current player.Player
	outcome := model.OutcomeContinue
	for turn := 0; outcome == model.OutcomeContinue; turn++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current = players[turn%2]
		var move model.Move
		move, outcome, err = c.ProcessMove(current, b)
		if err != nil {
			logger.Warn("game aborted",
				slog.String("player", current.String()),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		record.Moves = append(record.Moves, move)
	}

	if outcome == model.OutcomeWin {
		record.Winner = current.Checker()
		record.NumMoves = current.NumMoves()
	} else {
		record.Winner = model.CheckerEmpty
		record.NumMoves = len(record.Moves)
	}

	record.FinalBoard = b.Rows()
	record.EndedAt = c.clock.Now()

	logger.Info("game finished",
		slog.String("winner", record.Winner.String()),
		slog.Int("num_moves", record.NumMoves),
		slog.Int("total_moves", len(record.Moves)),
		slog.Duration("duration", record.EndedAt.Sub(record.StartedAt)),
	)

	// A finished game is still a result even if it could not be recorded
	if err := c.storage.SaveGame(ctx, record); err != nil {
		logger.Error("failed to save game", slog.String("error", err.Error()))
	}

	return record, nil
}

// ProcessMove asks p for a move, applies it to b and reports whether the game is over
func (c *Controller) ProcessMove(p player.Player, b *model.Board) (model.Move, model.MoveOutcome, error) {
	fmt.Fprintf(c.out, "%s's turn\n", p)

	col, err := p.NextMove(b)
	if err != nil {
		return model.Move{}, "", fmt.Errorf("%s: %w", p, err)
	}
	if err := b.Place(p.Checker(), col); err != nil {
		return model.Move{}, "", fmt.Errorf("%s played column %d: %w", p, col, err)
	}
	move := model.Move{Checker: p.Checker(), Column: col}

	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, b)

	if b.IsWinFor(p.Checker()) {
		fmt.Fprintf(c.out, "%s wins in %d moves\n", p, p.NumMoves())
		fmt.Fprintln(c.out, "Congratulations!")
		return move, model.OutcomeWin, nil
	}
	if b.IsFull() {
		fmt.Fprintln(c.out, "It's a tie!")
		return move, model.OutcomeTie, nil
	}
	return move, model.OutcomeContinue, nil
}

// GetGame retrieves a finished game by ID
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error) {
	return c.storage.GetGame(ctx, id)
}

// ListGames returns the most recent finished games
func (c *Controller) ListGames(ctx context.Context, limit int) ([]*model.GameRecord, error) {
	return c.storage.ListGames(ctx, limit)
}
