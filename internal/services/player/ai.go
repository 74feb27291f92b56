package player

import (
	"fmt"
	"slices"

	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
)

// Column scores produced by ScoresFor
const (
	ScoreIllegal = -1  // column cannot take a checker
	ScoreLoss    = 0   // the opponent wins
	ScoreNeutral = 50  // no forced result within the lookahead
	ScoreWin     = 100 // this player wins
)

// AIPlayer scores every column with a depth-limited search and plays the best one
type AIPlayer struct {
	base
	tiebreak  model.Tiebreak
	lookahead int
	random    random.Random
}

// NewAIPlayer creates an AIPlayer. rnd is only consulted for the RANDOM tiebreak.
func NewAIPlayer(checker model.Checker, tiebreak model.Tiebreak, lookahead int, rnd random.Random) (*AIPlayer, error) {
	b, err := newBase(checker)
	if err != nil {
		return nil, err
	}
	if !tiebreak.IsValid() {
		return nil, model.ErrInvalidTiebreak
	}
	if lookahead < 0 {
		return nil, model.ErrNegativeLookahead
	}
	return &AIPlayer{
		base:      b,
		tiebreak:  tiebreak,
		lookahead: lookahead,
		random:    rnd,
	}, nil
}

func (p *AIPlayer) Tiebreak() model.Tiebreak {
	return p.tiebreak
}

func (p *AIPlayer) Lookahead() int {
	return p.lookahead
}

func (p *AIPlayer) String() string {
	return fmt.Sprintf("Player %s (%s, %d)", p.checker, p.tiebreak, p.lookahead)
}

// NextMove scores the board and picks the best column
func (p *AIPlayer) NextMove(b *model.Board) (int, error) {
	p.numMoves++
	scores, err := p.ScoresFor(b)
	if err != nil {
		return -1, err
	}
	return p.ChooseBest(scores), nil
}

// ScoresFor returns one score per column of b. The board is mutated during the
// search and restored before returning.
func (p *AIPlayer) ScoresFor(b *model.Board) ([]int, error) {
	// Both checks look at the board before any candidate move, so the verdict
	// is the same for every column.
	opponentWon := b.IsWinFor(p.OpponentChecker())
	selfWon := b.IsWinFor(p.checker)

	scores := make([]int, b.Width)
	for col := range scores {
		switch {
		case !b.CanPlace(col):
			scores[col] = ScoreIllegal
		case opponentWon:
			scores[col] = ScoreLoss
		case selfWon:
			scores[col] = ScoreWin
		case p.lookahead == 0:
			scores[col] = ScoreNeutral
		default:
			score, err := p.lookaheadScore(b, col)
			if err != nil {
				return nil, err
			}
			scores[col] = score
		}
	}
	return scores, nil
}

// lookaheadScore plays col, lets the opponent score its replies, then takes the checker back
func (p *AIPlayer) lookaheadScore(b *model.Board, col int) (int, error) {
	if err := b.Place(p.checker, col); err != nil {
		return ScoreIllegal, fmt.Errorf("simulating column %d: %w", col, err)
	}
	defer b.RemoveTop(col)

	opponent := &AIPlayer{
		base:      base{checker: p.OpponentChecker()},
		tiebreak:  p.tiebreak,
		lookahead: p.lookahead - 1,
		random:    p.random,
	}
	replies, err := opponent.ScoresFor(b)
	if err != nil {
		return ScoreIllegal, err
	}

	switch slices.Max(replies) {
	case ScoreLoss:
		return ScoreWin, nil
	case ScoreWin:
		return ScoreLoss, nil
	default:
		return ScoreNeutral, nil
	}
}

// ChooseBest returns the index of the highest score, resolving ties with the tiebreak policy
func (p *AIPlayer) ChooseBest(scores []int) int {
	if len(scores) == 0 {
		return -1
	}
	best := slices.Max(scores)

	var tied []int
	for col, score := range scores {
		if score == best {
			tied = append(tied, col)
		}
	}

	switch p.tiebreak {
	case model.TiebreakRight:
		return tied[len(tied)-1]
	case model.TiebreakRandom:
		return tied[p.random.Intn(len(tied))]
	default:
		return tied[0]
	}
}
