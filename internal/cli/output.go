package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mcoot/connectfour-go/internal/api/response"
	"github.com/mcoot/connectfour-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// IsJSON reports whether output is machine readable
func (o *Output) IsJSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.IsJSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.IsJSON() {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Analysis:
		o.printAnalysis(v)
	case response.Game:
		o.printGame(v)
	case response.GameList:
		o.printGameList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAnalysis(a response.Analysis) {
	fmt.Fprint(o.w, a.Rendered)
	fmt.Fprintln(o.w)

	switch {
	case a.XWins:
		fmt.Fprintln(o.w, "X has already won")
	case a.OWins:
		fmt.Fprintln(o.w, "O has already won")
	}

	fmt.Fprintf(o.w, "Scores for %s:\n", a.Checker)
	for col, score := range a.Scores {
		fmt.Fprintf(o.w, "  %d: %s\n", col, describeScore(score))
	}

	if a.BestColumn < 0 {
		fmt.Fprintln(o.w, "Best column: none (board is full)")
	} else {
		fmt.Fprintf(o.w, "Best column: %d\n", a.BestColumn)
	}
}

func describeScore(score int) string {
	switch score {
	case -1:
		return "-1 (full)"
	case 0:
		return "0 (loss)"
	case 100:
		return "100 (win)"
	default:
		return fmt.Sprintf("%d", score)
	}
}

func (o *Output) printGame(g response.Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "X: %s\n", g.XPlayer)
	fmt.Fprintf(o.w, "O: %s\n", g.OPlayer)
	fmt.Fprintf(o.w, "Result: %s\n", gameResult(g))
	fmt.Fprintf(o.w, "Ended: %s\n", g.EndedAt.Format(time.RFC3339))

	cols := make([]string, len(g.Moves))
	for i, m := range g.Moves {
		cols[i] = fmt.Sprintf("%d", m.Column)
	}
	fmt.Fprintf(o.w, "Moves: %s\n", strings.Join(cols, " "))

	if b, err := model.BoardFromRows(g.FinalBoard); err == nil {
		fmt.Fprintln(o.w)
		fmt.Fprint(o.w, b)
	}
}

func (o *Output) printGameList(l response.GameList) {
	if len(l.Games) == 0 {
		fmt.Fprintln(o.w, "No games recorded")
		return
	}
	for _, g := range l.Games {
		fmt.Fprintf(o.w, "%s  %s  %s\n", g.ID, g.EndedAt.Format(time.RFC3339), gameResult(g))
	}
}

func gameResult(g response.Game) string {
	if g.Tie {
		return fmt.Sprintf("tie after %d moves", g.NumMoves)
	}
	return fmt.Sprintf("%s wins in %d moves", g.Winner, g.NumMoves)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
