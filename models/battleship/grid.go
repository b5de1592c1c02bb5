package battleship

import (
	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

const GridSize = 10

// CellState is the status of one board position. The numeric values
// double as the render codes the board display contract expects.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellHitWater
	CellHit
	CellShip
)

func (cs CellState) String() string {
	switch cs {
	case CellEmpty:
		return "empty"
	case CellHitWater:
		return "hit water"
	case CellHit:
		return "hit"
	case CellShip:
		return "ship"
	default:
		return "unknown"
	}
}

type Grid [][]CellState

// NewGrid creates the 10x10 board with every position empty.
func NewGrid() Grid {
	grid := make(Grid, GridSize)
	for i := 0; i < GridSize; i++ {
		grid[i] = make([]CellState, GridSize)
	}
	return grid
}

func (g Grid) IsInBounds(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}

// IsAvailable reports whether a position can still take a ship cell.
func (g Grid) IsAvailable(row, col int) bool {
	return g.IsInBounds(row, col) && g[row][col] == CellEmpty
}

// State returns the cell state, failing for positions off the board
// so an out-of-range query is never mistaken for a valid state.
func (g Grid) State(row, col int) (CellState, error) {
	if !g.IsInBounds(row, col) {
		return CellEmpty, cerr.ErrCellOutOfBounds(row, col)
	}
	return g[row][col], nil
}

// SetState writes a cell state without validation. Placement and
// combat run their own checks before calling this.
func (g Grid) SetState(row, col int, state CellState) {
	g[row][col] = state
}

// PlaceShip commits a ship footprint onto the grid with a two-phase
// pass: every cell of the footprint is validated before any cell is
// written, so a rejected placement leaves the grid untouched. Cells
// are walked in step order and each one checks bounds before
// occupancy; the first failing cell decides the reported error.
func (g Grid) PlaceShip(ship *Ship) error {
	cells := ship.Cells()

	for _, c := range cells {
		if !g.IsInBounds(c.Row, c.Col) {
			return cerr.ErrPlacementOutOfBounds(ship.Name, c.Row, c.Col)
		}
		if g[c.Row][c.Col] != CellEmpty {
			return cerr.ErrPlacementOccupied(ship.Name, c.Row, c.Col)
		}
	}

	for _, c := range cells {
		g.SetState(c.Row, c.Col, CellShip)
	}
	return nil
}

// RenderCodes flattens the grid into the numeric render contract:
// 0=empty, 1=hit water, 2=hit, 3=ship.
func (g Grid) RenderCodes() [][]uint8 {
	codes := make([][]uint8, GridSize)
	for i := 0; i < GridSize; i++ {
		codes[i] = make([]uint8, GridSize)
		for j := 0; j < GridSize; j++ {
			codes[i][j] = uint8(g[i][j])
		}
	}
	return codes
}

// ShipCells lists every position currently holding an intact ship
// cell, in row-major order.
func (g Grid) ShipCells() []Coordinates {
	var cells []Coordinates
	for i := 0; i < GridSize; i++ {
		for j := 0; j < GridSize; j++ {
			if g[i][j] == CellShip {
				cells = append(cells, NewCoordinates(i, j))
			}
		}
	}
	return cells
}
