package model

// Checker is the marker held by a board cell
type Checker rune

const (
	CheckerEmpty Checker = ' '
	CheckerX     Checker = 'X'
	CheckerO     Checker = 'O'
)

// IsValid returns true for the two playable markers
func (c Checker) IsValid() bool {
	return c == CheckerX || c == CheckerO
}

// Opponent returns the other playable marker
func (c Checker) Opponent() Checker {
	if c == CheckerX {
		return CheckerO
	}
	return CheckerX
}

func (c Checker) String() string {
	return string(rune(c))
}

// ParseChecker converts "X" or "O" into a Checker
func ParseChecker(s string) (Checker, error) {
	if len(s) != 1 {
		return CheckerEmpty, ErrInvalidChecker
	}
	c := Checker(s[0])
	if !c.IsValid() {
		return CheckerEmpty, ErrInvalidChecker
	}
	return c, nil
}

// MarshalText encodes the checker as a one-character string
func (c Checker) MarshalText() ([]byte, error) {
	if c == 0 {
		c = CheckerEmpty
	}
	return []byte(string(rune(c))), nil
}

// UnmarshalText accepts "X", "O", " " or an empty string
func (c *Checker) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = CheckerEmpty
		return nil
	}
	if len(text) != 1 {
		return ErrInvalidChecker
	}
	v := Checker(text[0])
	if v != CheckerEmpty && !v.IsValid() {
		return ErrInvalidChecker
	}
	*c = v
	return nil
}
