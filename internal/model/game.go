package model

import (
	"slices"
	"time"
)

// GameID uniquely identifies a finished game
type GameID string

// MoveOutcome is the state of the game after a single move
type MoveOutcome string

const (
	OutcomeContinue MoveOutcome = "continue"
	OutcomeWin      MoveOutcome = "win"
	OutcomeTie      MoveOutcome = "tie"
)

// Move is a single column choice made during a game
type Move struct {
	Checker Checker
	Column  int
}

// GameRecord is the persisted summary of a completed game
type GameRecord struct {
	ID      GameID
	Height  int
	Width   int
	XPlayer string // Player description, e.g. "Player X (LEFT, 2)"
	OPlayer string

	Winner   Checker // CheckerEmpty on a tie
	NumMoves int     // Moves made by the winner, or total moves on a tie
	Moves    []Move
	// FinalBoard holds the board rows top to bottom (see Board.Rows)
	FinalBoard []string

	StartedAt time.Time
	EndedAt   time.Time
}

// IsTie returns true if the game ended without a winner
func (r *GameRecord) IsTie() bool {
	return r.Winner == CheckerEmpty
}

// Clone returns a copy of the record that shares no slices with r
func (r *GameRecord) Clone() *GameRecord {
	c := *r
	c.Moves = slices.Clone(r.Moves)
	c.FinalBoard = slices.Clone(r.FinalBoard)
	return &c
}
