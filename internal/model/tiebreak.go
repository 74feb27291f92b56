package model

// Tiebreak selects among equally scored columns
type Tiebreak string

const (
	TiebreakLeft   Tiebreak = "LEFT"
	TiebreakRight  Tiebreak = "RIGHT"
	TiebreakRandom Tiebreak = "RANDOM"
)

// ParseTiebreak validates a tiebreak policy name
func ParseTiebreak(s string) (Tiebreak, error) {
	t := Tiebreak(s)
	if !t.IsValid() {
		return "", ErrInvalidTiebreak
	}
	return t, nil
}

// IsValid returns true for LEFT, RIGHT and RANDOM
func (t Tiebreak) IsValid() bool {
	switch t {
	case TiebreakLeft, TiebreakRight, TiebreakRandom:
		return true
	default:
		return false
	}
}

// ValidTiebreaks returns all valid tiebreak names
func ValidTiebreaks() []Tiebreak {
	return []Tiebreak{TiebreakLeft, TiebreakRight, TiebreakRandom}
}
