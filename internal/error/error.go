package error

import (
	"errors"
	"fmt"
)

// Sentinels for every recoverable failure. Callers discriminate
// with errors.Is and decide whether to re-prompt or bail.
var (
	ErrOutOfBounds = errors.New("position is out of the board bounds")
	ErrOccupied    = errors.New("position is blocked by another ship")

	ErrInvalidFormat      = errors.New("coordinates must be in LetterDigit format")
	ErrInvalidColumn      = errors.New("column letter must be between A and J")
	ErrInvalidRow         = errors.New("row must be a number between 0 and 9")
	ErrInvalidOrientation = errors.New("orientation must be one of H, V or D")
)

func ErrPlacementOutOfBounds(shipName string, row, col int) error {
	return fmt.Errorf("cannot place %s, ship exits the board\trow: %d\tcol: %d\t%w", shipName, row, col, ErrOutOfBounds)
}

func ErrPlacementOccupied(shipName string, row, col int) error {
	return fmt.Errorf("cannot place %s, cell already taken\trow: %d\tcol: %d\t%w", shipName, row, col, ErrOccupied)
}

func ErrCellOutOfBounds(row, col int) error {
	return fmt.Errorf("cell query out of board bounds\trow: %d\tcol: %d\t%w", row, col, ErrOutOfBounds)
}

func ErrCoordinatesTooShort(input string) error {
	return fmt.Errorf("input %q is too short, expected something like A5\t%w", input, ErrInvalidFormat)
}

func ErrColumnLetter(letter byte) error {
	return fmt.Errorf("invalid column letter %q\t%w", string(letter), ErrInvalidColumn)
}

func ErrRowNumber(input string) error {
	return fmt.Errorf("invalid row part %q\t%w", input, ErrInvalidRow)
}

func ErrOrientationChar(input string) error {
	return fmt.Errorf("invalid orientation %q\t%w", input, ErrInvalidOrientation)
}

func ErrShipIndex(idx int) error {
	return fmt.Errorf("fleet has no ship with index %d", idx)
}
