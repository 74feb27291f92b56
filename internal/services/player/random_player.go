package player

import (
	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
)

// RandomPlayer picks uniformly among the columns that can take a checker
type RandomPlayer struct {
	base
	random random.Random
}

// NewRandomPlayer creates a new RandomPlayer
func NewRandomPlayer(checker model.Checker, rnd random.Random) (*RandomPlayer, error) {
	b, err := newBase(checker)
	if err != nil {
		return nil, err
	}
	return &RandomPlayer{base: b, random: rnd}, nil
}

// NextMove returns a random playable column
func (p *RandomPlayer) NextMove(b *model.Board) (int, error) {
	p.numMoves++

	var columns []int
	for col := 0; col < b.Width; col++ {
		if b.CanPlace(col) {
			columns = append(columns, col)
		}
	}
	if len(columns) == 0 {
		return -1, model.ErrBoardFull
	}
	return columns[p.random.Intn(len(columns))], nil
}
