package battleship

import (
	cerr "github.com/saeidalz13/battleship-sim/internal/error"

	"github.com/google/uuid"
)

// Game is one self-contained session: the board, the fixed fleet and
// the running stats. A single caller drives it sequentially.
type Game struct {
	Uuid  string
	Grid  Grid
	Fleet []*Ship
	Stats *GameStats
}

func NewGame() *Game {
	return &Game{
		Uuid:  uuid.NewString()[:6],
		Grid:  NewGrid(),
		Fleet: NewFleet(),
		Stats: NewGameStats(),
	}
}

// PlaceShip binds an origin and orientation to the fleet ship at idx
// and commits its footprint to the grid. On failure the grid is
// untouched and the same ship can be retried with new input.
func (g *Game) PlaceShip(idx int, origin Coordinates, o Orientation) error {
	if idx < 0 || idx >= len(g.Fleet) {
		return cerr.ErrShipIndex(idx)
	}

	ship := g.Fleet[idx]
	ship.Origin = origin
	ship.Orientation = o

	return g.Grid.PlaceShip(ship)
}

// LaunchAttack fires one pattern at the chosen center and folds the
// outcome into the session stats.
func (g *Game) LaunchAttack(pattern AttackPattern, center Coordinates) AttackReport {
	return ApplyAttack(g.Grid, pattern, center, g.Fleet, g.Stats)
}

// FleetDestroyed reports whether every ship has gone down.
func (g *Game) FleetDestroyed() bool {
	for _, ship := range g.Fleet {
		if !ship.IsDestroyed() {
			return false
		}
	}
	return true
}
