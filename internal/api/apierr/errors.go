package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mcoot/connectfour-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidDimensions = "INVALID_DIMENSIONS"
	CodeInvalidChecker    = "INVALID_CHECKER"
	CodeInvalidTiebreak   = "INVALID_TIEBREAK"
	CodeInvalidLookahead  = "INVALID_LOOKAHEAD"
	CodeInvalidMoves      = "INVALID_MOVES"
	CodeGameNotFound      = "GAME_NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrInvalidDimensions):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDimensions, "Board height and width must be positive"}}
	case errors.Is(err, model.ErrInvalidChecker):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidChecker, "Checker must be X or O"}}
	case errors.Is(err, model.ErrInvalidTiebreak):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTiebreak, "Tiebreak must be LEFT, RIGHT or RANDOM"}}
	case errors.Is(err, model.ErrNegativeLookahead):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLookahead, "Lookahead must not be negative"}}
	case errors.Is(err, model.ErrInvalidMoveSequence):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMoves, "Moves must be a string of column digits"}}
	case errors.Is(err, model.ErrColumnFull):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMoves, "Moves overfill a column"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewLookaheadTooLargeError rejects a lookahead above the server's limit
func NewLookaheadTooLargeError(max int) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidLookahead, fmt.Sprintf("Lookahead must be at most %d", max)}}
}

// NewBoardTooLargeError rejects a board bigger than the server's limit
func NewBoardTooLargeError(maxHeight, maxWidth int) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidDimensions, fmt.Sprintf("Board must be at most %d rows by %d columns", maxHeight, maxWidth)}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
