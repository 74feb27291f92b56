package player

import (
	"io"

	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
)

// Config describes one side of a game
type Config struct {
	Kind      model.PlayerKind
	Checker   model.Checker
	Tiebreak  model.Tiebreak // AI only
	Lookahead int            // AI only
}

// Deps holds the collaborators a player may need
type Deps struct {
	Random random.Random
	In     io.Reader // Human only
	Out    io.Writer // Human only
}

// New builds the player variant selected by cfg.Kind
func New(cfg Config, deps Deps) (Player, error) {
	switch cfg.Kind {
	case model.PlayerKindHuman:
		return NewHumanPlayer(cfg.Checker, deps.In, deps.Out)
	case model.PlayerKindRandom:
		return NewRandomPlayer(cfg.Checker, deps.Random)
	case model.PlayerKindAI:
		return NewAIPlayer(cfg.Checker, cfg.Tiebreak, cfg.Lookahead, deps.Random)
	default:
		return nil, model.ErrInvalidPlayerKind
	}
}

var (
	_ Player = (*HumanPlayer)(nil)
	_ Player = (*RandomPlayer)(nil)
	_ Player = (*AIPlayer)(nil)
)
