package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrInvalidDimensions   = errors.New("board dimensions must be positive")
	ErrInvalidChecker      = errors.New("checker must be X or O")
	ErrInvalidColumn       = errors.New("column out of range")
	ErrColumnFull          = errors.New("column is full")
	ErrBoardFull           = errors.New("board is full")
	ErrInvalidMoveSequence = errors.New("invalid move sequence")

	// Player errors
	ErrInvalidTiebreak   = errors.New("tiebreak must be LEFT, RIGHT or RANDOM")
	ErrNegativeLookahead = errors.New("lookahead must not be negative")
	ErrInvalidPlayerKind = errors.New("invalid player kind")
	ErrInputClosed       = errors.New("input closed before a move was entered")

	// Game errors
	ErrCheckerConflict = errors.New("need one X player and one O player")
	ErrGameNotFound    = errors.New("game not found")
)
