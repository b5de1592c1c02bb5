package battleship

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

// Coordinates is a single board position. Row and Col are both
// zero based, Col 0 maps to column letter 'A'.
type Coordinates struct {
	Row int
	Col int
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// Next returns the neighbouring position one step away in the
// direction the orientation extends.
func (c Coordinates) Next(o Orientation) Coordinates {
	switch o {
	case OrientationHorizontal:
		c.Col++
	case OrientationVertical:
		c.Row++
	case OrientationDiagonal:
		c.Row++
		c.Col++
	}
	return c
}

func (c Coordinates) String() string {
	return string(ColumnLetter(c.Col)) + strconv.Itoa(c.Row)
}

// ColumnLetter converts a column index to its board letter (0 -> 'A').
// The caller guarantees col is within the board.
func ColumnLetter(col int) byte {
	return byte('A' + col)
}

// ColumnIndex converts a column letter to its index (A/a -> 0).
// Returns -1 for anything outside A-J.
func ColumnIndex(letter byte) int {
	switch {
	case letter >= 'A' && letter <= 'J':
		return int(letter - 'A')
	case letter >= 'a' && letter <= 'j':
		return int(letter - 'a')
	default:
		return -1
	}
}

// ParseCoordinates reads a board position out of its text form: one
// column letter immediately followed by the row number, e.g. "A5" or
// "j9". The row part must consume the rest of the token, so trailing
// garbage like "A5X" is rejected.
func ParseCoordinates(input string) (Coordinates, error) {
	input = strings.TrimSpace(input)
	if len(input) < 2 {
		return Coordinates{}, cerr.ErrCoordinatesTooShort(input)
	}

	col := ColumnIndex(input[0])
	if col == -1 {
		return Coordinates{}, cerr.ErrColumnLetter(input[0])
	}

	row, err := strconv.Atoi(input[1:])
	if err != nil || row < 0 || row >= GridSize {
		return Coordinates{}, cerr.ErrRowNumber(input[1:])
	}

	return NewCoordinates(row, col), nil
}
