package response

import (
	"time"

	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/analysis"
)

// Move represents a single move in API responses
type Move struct {
	Checker string `json:"checker"`
	Column  int    `json:"column"`
}

// Game represents a finished game in API responses
type Game struct {
	ID         string    `json:"id"`
	Height     int       `json:"height"`
	Width      int       `json:"width"`
	XPlayer    string    `json:"x_player"`
	OPlayer    string    `json:"o_player"`
	Winner     string    `json:"winner,omitempty"`
	Tie        bool      `json:"tie"`
	NumMoves   int       `json:"num_moves"`
	Moves      []Move    `json:"moves"`
	FinalBoard []string  `json:"final_board"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
}

// GameFromModel converts a model.GameRecord to a response Game
func GameFromModel(r *model.GameRecord) Game {
	moves := make([]Move, len(r.Moves))
	for i, m := range r.Moves {
		moves[i] = Move{Checker: m.Checker.String(), Column: m.Column}
	}

	g := Game{
		ID:         string(r.ID),
		Height:     r.Height,
		Width:      r.Width,
		XPlayer:    r.XPlayer,
		OPlayer:    r.OPlayer,
		Tie:        r.IsTie(),
		NumMoves:   r.NumMoves,
		Moves:      moves,
		FinalBoard: r.FinalBoard,
		StartedAt:  r.StartedAt,
		EndedAt:    r.EndedAt,
	}
	if !r.IsTie() {
		g.Winner = r.Winner.String()
	}
	return g
}

// GameList is the response for listing finished games
type GameList struct {
	Games []Game `json:"games"`
}

// GameListFromModel converts a slice of records
func GameListFromModel(records []*model.GameRecord) GameList {
	games := make([]Game, len(records))
	for i, r := range records {
		games[i] = GameFromModel(r)
	}
	return GameList{Games: games}
}

// Analysis is the response for a position analysis
type Analysis struct {
	Checker    string   `json:"checker"`
	Scores     []int    `json:"scores"`
	BestColumn int      `json:"best_column"`
	Board      []string `json:"board"`
	Rendered   string   `json:"rendered"`
	XWins      bool     `json:"x_wins"`
	OWins      bool     `json:"o_wins"`
	Full       bool     `json:"full"`
}

// AnalysisFromResult converts an analysis.Result
func AnalysisFromResult(r *analysis.Result) Analysis {
	return Analysis{
		Checker:    r.Checker.String(),
		Scores:     r.Scores,
		BestColumn: r.BestColumn,
		Board:      r.Board.Rows(),
		Rendered:   r.Board.String(),
		XWins:      r.XWins,
		OWins:      r.OWins,
		Full:       r.Full,
	}
}
