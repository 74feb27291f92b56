package model

import (
	"fmt"
	"strings"
)

// WinLength is the number of aligned checkers needed to win
const WinLength = 4

// Default board dimensions used by the game driver
const (
	DefaultHeight = 6
	DefaultWidth  = 7
)

// Board is a Connect Four grid of arbitrary dimensions.
// Occupied cells in a column always form a contiguous run from the bottom row.
type Board struct {
	Height int
	Width  int
	Slots  [][]Checker // Row-major: Slots[row][col], row 0 is the top
}

// NewBoard creates an empty board with the given dimensions
func NewBoard(height, width int) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrInvalidDimensions
	}
	slots := make([][]Checker, height)
	for row := range slots {
		slots[row] = make([]Checker, width)
		for col := range slots[row] {
			slots[row][col] = CheckerEmpty
		}
	}
	return &Board{
		Height: height,
		Width:  width,
		Slots:  slots,
	}, nil
}

// BoardFromRows rebuilds a board from its rendered rows (see Rows)
func BoardFromRows(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	b, err := NewBoard(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for row, line := range rows {
		if len(line) != b.Width {
			return nil, ErrInvalidDimensions
		}
		for col := 0; col < b.Width; col++ {
			c := Checker(line[col])
			if c != CheckerEmpty && !c.IsValid() {
				return nil, ErrInvalidChecker
			}
			b.Slots[row][col] = c
		}
	}
	return b, nil
}

// Rows returns one string per row, top to bottom
func (b *Board) Rows() []string {
	rows := make([]string, b.Height)
	for row := 0; row < b.Height; row++ {
		var sb strings.Builder
		for col := 0; col < b.Width; col++ {
			sb.WriteRune(rune(b.Slots[row][col]))
		}
		rows[row] = sb.String()
	}
	return rows
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	slots := make([][]Checker, b.Height)
	for row := range slots {
		slots[row] = make([]Checker, b.Width)
		copy(slots[row], b.Slots[row])
	}
	return &Board{Height: b.Height, Width: b.Width, Slots: slots}
}

// IsValidColumn returns true if col is within bounds
func (b *Board) IsValidColumn(col int) bool {
	return col >= 0 && col < b.Width
}

// Place drops checker into the lowest empty row of col.
// Callers are expected to check CanPlace first.
func (b *Board) Place(checker Checker, col int) error {
	if !checker.IsValid() {
		return ErrInvalidChecker
	}
	if !b.IsValidColumn(col) {
		return ErrInvalidColumn
	}
	for row := b.Height - 1; row >= 0; row-- {
		if b.Slots[row][col] == CheckerEmpty {
			b.Slots[row][col] = checker
			return nil
		}
	}
	return ErrColumnFull
}

// CanPlace reports whether col is in bounds and its top cell is empty
func (b *Board) CanPlace(col int) bool {
	return b.IsValidColumn(col) && b.Slots[0][col] == CheckerEmpty
}

// IsFull returns true if no column accepts another checker
func (b *Board) IsFull() bool {
	for col := 0; col < b.Width; col++ {
		if b.CanPlace(col) {
			return false
		}
	}
	return true
}

// RemoveTop clears the topmost checker in col. Empty columns are left alone.
func (b *Board) RemoveTop(col int) {
	if !b.IsValidColumn(col) {
		return
	}
	for row := 0; row < b.Height; row++ {
		if b.Slots[row][col] != CheckerEmpty {
			b.Slots[row][col] = CheckerEmpty
			return
		}
	}
}

// Reset clears every cell
func (b *Board) Reset() {
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			b.Slots[row][col] = CheckerEmpty
		}
	}
}

// AddCheckers plays a sequence of column digits, alternating checkers
// starting with X. Digits outside the board are skipped but still use up a turn.
func (b *Board) AddCheckers(moves string) error {
	checker := CheckerX
	for i, ch := range moves {
		if ch < '0' || ch > '9' {
			return fmt.Errorf("%w: %q at index %d", ErrInvalidMoveSequence, ch, i)
		}
		col := int(ch - '0')
		if b.IsValidColumn(col) {
			if err := b.Place(checker, col); err != nil {
				return fmt.Errorf("move %d in column %d: %w", i, col, err)
			}
		}
		checker = checker.Opponent()
	}
	return nil
}

// IsWinFor returns true if checker has four in a row in any direction
func (b *Board) IsWinFor(checker Checker) bool {
	if !checker.IsValid() {
		return false
	}
	return b.isHorizontalWin(checker) ||
		b.isVerticalWin(checker) ||
		b.isDownDiagonalWin(checker) ||
		b.isUpDiagonalWin(checker)
}

func (b *Board) isHorizontalWin(checker Checker) bool {
	for row := 0; row < b.Height; row++ {
		for col := 0; col+WinLength <= b.Width; col++ {
			if b.runFrom(checker, row, col, 0, 1) {
				return true
			}
		}
	}
	return false
}

func (b *Board) isVerticalWin(checker Checker) bool {
	for row := 0; row+WinLength <= b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			if b.runFrom(checker, row, col, 1, 0) {
				return true
			}
		}
	}
	return false
}

// isDownDiagonalWin checks runs going down and to the right
func (b *Board) isDownDiagonalWin(checker Checker) bool {
	for row := 0; row+WinLength <= b.Height; row++ {
		for col := 0; col+WinLength <= b.Width; col++ {
			if b.runFrom(checker, row, col, 1, 1) {
				return true
			}
		}
	}
	return false
}

// isUpDiagonalWin checks runs going down and to the left
func (b *Board) isUpDiagonalWin(checker Checker) bool {
	for row := 0; row+WinLength <= b.Height; row++ {
		for col := WinLength - 1; col < b.Width; col++ {
			if b.runFrom(checker, row, col, 1, -1) {
				return true
			}
		}
	}
	return false
}

// runFrom assumes the whole run lies inside the grid
func (b *Board) runFrom(checker Checker, row, col, dRow, dCol int) bool {
	for i := 0; i < WinLength; i++ {
		if b.Slots[row+i*dRow][col+i*dCol] != checker {
			return false
		}
	}
	return true
}

// String renders the board as rows of |c| cells followed by a column index footer
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.Height; row++ {
		sb.WriteString("|")
		for col := 0; col < b.Width; col++ {
			sb.WriteRune(rune(b.Slots[row][col]))
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat("-", b.Width*2+1))
	sb.WriteString("\n")
	for col := 0; col < b.Width; col++ {
		fmt.Fprintf(&sb, " %d", col%10)
	}
	sb.WriteString("\n")
	return sb.String()
}
