package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

// Orientation is the direction a ship extends from its origin.
type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
	OrientationDiagonal
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	case OrientationDiagonal:
		return "diagonal"
	default:
		return "unknown"
	}
}

// ParseOrientation reads the single-letter orientation the player
// types: H, V or D, case-insensitive.
func ParseOrientation(input string) (Orientation, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "H":
		return OrientationHorizontal, nil
	case "V":
		return OrientationVertical, nil
	case "D":
		return OrientationDiagonal, nil
	default:
		return OrientationHorizontal, cerr.ErrOrientationChar(input)
	}
}

type Ship struct {
	Id          int
	Name        string
	Origin      Coordinates
	Length      int
	Orientation Orientation

	destroyed bool
}

func NewShip(id int, name string, length int) *Ship {
	return &Ship{
		Id:     id,
		Name:   name,
		Length: length,
	}
}

// Cells recomputes the footprint by stepping Length times from the
// origin. Positions are returned even when they fall off the board;
// bounds are the caller's concern.
func (sh *Ship) Cells() []Coordinates {
	cells := make([]Coordinates, 0, sh.Length)
	coord := sh.Origin
	for i := 0; i < sh.Length; i++ {
		cells = append(cells, coord)
		coord = coord.Next(sh.Orientation)
	}
	return cells
}

func (sh *Ship) IsDestroyed() bool {
	return sh.destroyed
}

// markDestroyed is one-way; a destroyed ship never comes back.
func (sh *Ship) markDestroyed() {
	sh.destroyed = true
}

// NewFleet builds the fixed fleet in its assignment order:
// Battleship(4), Cruiser(3), Cruiser(3), Destroyer(2). Origins and
// orientations are bound later, during placement.
func NewFleet() []*Ship {
	return []*Ship{
		NewShip(1, "Battleship", 4),
		NewShip(2, "Cruiser 1", 3),
		NewShip(3, "Cruiser 2", 3),
		NewShip(4, "Destroyer", 2),
	}
}
