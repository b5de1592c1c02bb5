package battleship

// ShotOutcome classifies one resolved shot of an attack.
type ShotOutcome uint8

const (
	// OutcomeHit is an intact ship cell struck for the first time.
	OutcomeHit ShotOutcome = iota
	// OutcomeMiss is open water struck for the first time.
	OutcomeMiss
	// OutcomeRepeatHit lands on a ship cell that was already hit.
	// No new damage, still a counted shot.
	OutcomeRepeatHit
	// OutcomeRepeatMiss lands on water that was already struck.
	OutcomeRepeatMiss
)

func (so ShotOutcome) String() string {
	switch so {
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	case OutcomeRepeatHit:
		return "already hit"
	case OutcomeRepeatMiss:
		return "water already hit"
	default:
		return "unknown"
	}
}

// IsHit reports whether the shot dealt new damage. Repeat strikes of
// any kind count as misses in the tallies.
func (so ShotOutcome) IsHit() bool {
	return so == OutcomeHit
}

type Shot struct {
	Target  Coordinates
	Outcome ShotOutcome
}

// AttackReport enumerates what a single attack did, cell by cell, for
// whoever renders the results.
type AttackReport struct {
	PatternName string
	Center      Coordinates
	Shots       []Shot
	Hits        int
	Misses      int
	SunkShips   []*Ship
}

func (r AttackReport) TotalShots() int {
	return r.Hits + r.Misses
}

// ApplyAttack aligns the mask center to the chosen grid position and
// resolves every affected mask cell. Mask cells that map off the
// board are skipped without counting a shot. Destruction detection
// runs only when the attack scored new damage, then the stats take
// this attack's tallies.
func ApplyAttack(grid Grid, pattern AttackPattern, center Coordinates, fleet []*Ship, stats *GameStats) AttackReport {
	report := AttackReport{
		PatternName: pattern.Name(),
		Center:      center,
	}

	for i := 0; i < PatternSize; i++ {
		for j := 0; j < PatternSize; j++ {
			if !pattern.Affected(i, j) {
				continue
			}

			row := center.Row - patternCenter + i
			col := center.Col - patternCenter + j
			if !grid.IsInBounds(row, col) {
				continue
			}

			var outcome ShotOutcome
			switch grid[row][col] {
			case CellShip:
				grid.SetState(row, col, CellHit)
				outcome = OutcomeHit
				report.Hits++
			case CellEmpty:
				grid.SetState(row, col, CellHitWater)
				outcome = OutcomeMiss
				report.Misses++
			case CellHit:
				outcome = OutcomeRepeatHit
				report.Misses++
			default:
				outcome = OutcomeRepeatMiss
				report.Misses++
			}

			report.Shots = append(report.Shots, Shot{
				Target:  NewCoordinates(row, col),
				Outcome: outcome,
			})
		}
	}

	if report.Hits > 0 {
		report.SunkShips = sweepDestroyedShips(grid, fleet, stats)
	}

	stats.RecordAttack(report.TotalShots(), report.Hits)
	return report
}

// sweepDestroyedShips recomputes every surviving ship's footprint and
// marks the ones whose cells are all hit.
func sweepDestroyedShips(grid Grid, fleet []*Ship, stats *GameStats) []*Ship {
	var sunk []*Ship
	for _, ship := range fleet {
		if ship.IsDestroyed() {
			continue
		}

		hitCells := 0
		for _, c := range ship.Cells() {
			if grid.IsInBounds(c.Row, c.Col) && grid[c.Row][c.Col] == CellHit {
				hitCells++
			}
		}

		if hitCells == ship.Length {
			ship.markDestroyed()
			stats.shipsDestroyed++
			sunk = append(sunk, ship)
		}
	}
	return sunk
}
