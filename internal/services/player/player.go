package player

import (
	"github.com/mcoot/connectfour-go/internal/model"
)

// Player supplies moves for one side of a game
type Player interface {
	// Checker returns the marker this player drops
	Checker() model.Checker
	// NumMoves returns how many moves this player has made
	NumMoves() int
	// NextMove returns the column to play on b
	NextMove(b *model.Board) (int, error)
	String() string
}

// base holds the state every player variant shares
type base struct {
	checker  model.Checker
	numMoves int
}

func newBase(checker model.Checker) (base, error) {
	if !checker.IsValid() {
		return base{}, model.ErrInvalidChecker
	}
	return base{checker: checker}, nil
}

func (p *base) Checker() model.Checker {
	return p.checker
}

func (p *base) NumMoves() int {
	return p.numMoves
}

// OpponentChecker returns the marker used by the other side
func (p *base) OpponentChecker() model.Checker {
	return p.checker.Opponent()
}

func (p *base) String() string {
	return "Player " + p.checker.String()
}
