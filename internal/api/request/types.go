package request

// AnalysisRequest is the request body for analyzing a position.
// Omitted fields fall back to a 6x7 board, the side to move, LEFT and the default lookahead.
type AnalysisRequest struct {
	Moves     string `json:"moves"`
	Height    int    `json:"height,omitempty"`
	Width     int    `json:"width,omitempty"`
	Checker   string `json:"checker,omitempty"`
	Tiebreak  string `json:"tiebreak,omitempty"`
	Lookahead *int   `json:"lookahead,omitempty"`
}
