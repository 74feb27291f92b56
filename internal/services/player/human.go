package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/connectfour-go/internal/model"
)

// HumanPlayer reads columns from an input stream, prompting until a playable one is given
type HumanPlayer struct {
	base
	in  *bufio.Reader
	out io.Writer
}

// NewHumanPlayer creates a HumanPlayer. Pass the same *bufio.Reader to both
// players when they share a terminal so neither buffers the other's input.
func NewHumanPlayer(checker model.Checker, in io.Reader, out io.Writer) (*HumanPlayer, error) {
	b, err := newBase(checker)
	if err != nil {
		return nil, err
	}
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}
	return &HumanPlayer{base: b, in: reader, out: out}, nil
}

// NextMove prompts until a column in [0, width) with room for a checker is
// entered. A full column is refused here too, so the move returned can always
// be placed.
func (p *HumanPlayer) NextMove(b *model.Board) (int, error) {
	for {
		fmt.Fprint(p.out, "Enter a column: ")

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return -1, fmt.Errorf("reading move: %w", err)
		}
		if errors.Is(err, io.EOF) && line == "" {
			return -1, model.ErrInputClosed
		}

		col, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && b.CanPlace(col) {
			p.numMoves++
			return col, nil
		}
		fmt.Fprintln(p.out, "Try again!")
	}
}
