package cli

import (
	"fmt"
	"io"

	mb "github.com/saeidalz13/battleship-sim/models/battleship"
)

// Renderer owns every piece of player-facing text. It writes plain
// lines to one io.Writer so tests can capture the whole transcript.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) Println(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(r.w, line)
	}
}

func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// RenderBoard prints the grid as its numeric cell codes with the A-J
// column header and 0-9 row header.
func (r *Renderer) RenderBoard(grid mb.Grid) {
	fmt.Fprint(r.w, "\n   ")
	for j := 0; j < mb.GridSize; j++ {
		fmt.Fprintf(r.w, " %c ", mb.ColumnLetter(j))
	}
	fmt.Fprintln(r.w)

	for i, row := range grid.RenderCodes() {
		fmt.Fprintf(r.w, " %d ", i)
		for _, code := range row {
			fmt.Fprintf(r.w, " %d ", code)
		}
		fmt.Fprintln(r.w)
	}

	fmt.Fprintln(r.w, "\nLegend: 0 = water, 1 = hit water, 2 = hit ship, 3 = ship")
}

// RenderShipPositions lists every intact ship cell in board notation.
func (r *Renderer) RenderShipPositions(grid mb.Grid) {
	cells := grid.ShipCells()
	fmt.Fprintln(r.w, "\nShip positions:")
	for _, c := range cells {
		fmt.Fprintf(r.w, "  %s\n", c)
	}
	fmt.Fprintf(r.w, "Total cells occupied by ships: %d\n", len(cells))
}

// RenderPattern prints the 5x5 mask with 0-4 indices, x for affected
// positions and . for untouched ones.
func (r *Renderer) RenderPattern(pattern mb.AttackPattern) {
	fmt.Fprintf(r.w, "\nAttack pattern: %s\n   ", pattern.Name())
	for j := 0; j < mb.PatternSize; j++ {
		fmt.Fprintf(r.w, " %d ", j)
	}
	fmt.Fprintln(r.w)

	mask := pattern.Mask()
	for i := 0; i < mb.PatternSize; i++ {
		fmt.Fprintf(r.w, " %d ", i)
		for j := 0; j < mb.PatternSize; j++ {
			if mask[i][j] {
				fmt.Fprint(r.w, " x ")
			} else {
				fmt.Fprint(r.w, " . ")
			}
		}
		fmt.Fprintln(r.w)
	}
}

// RenderAttackReport prints each resolved shot and the attack tallies.
func (r *Renderer) RenderAttackReport(report mb.AttackReport) {
	fmt.Fprintf(r.w, "\n%s attack centered at %s:\n", report.PatternName, report.Center)
	for _, shot := range report.Shots {
		fmt.Fprintf(r.w, "  [%s] %s\n", shot.Target, shot.Outcome)
	}

	fmt.Fprintf(r.w, "Shots fired: %d\n", report.TotalShots())
	fmt.Fprintf(r.w, "Hits: %d\n", report.Hits)
	fmt.Fprintf(r.w, "Misses: %d\n", report.Misses)
	if report.TotalShots() > 0 && report.Hits > 0 {
		fmt.Fprintf(r.w, "Hit rate this attack: %.1f%%\n", float64(report.Hits)/float64(report.TotalShots())*100)
	}

	for _, ship := range report.SunkShips {
		fmt.Fprintf(r.w, "SHIP DESTROYED! The %s went down.\n", ship.Name)
	}
}

// RenderStats prints the end-of-session counters.
func (r *Renderer) RenderStats(stats *mb.GameStats, fleetSize int) {
	fmt.Fprintln(r.w, "\nFinal statistics:")
	fmt.Fprintf(r.w, "  Total shots fired: %d\n", stats.TotalShots())
	fmt.Fprintf(r.w, "  Hits: %d\n", stats.Hits())
	fmt.Fprintf(r.w, "  Misses: %d\n", stats.Misses())
	if stats.TotalShots() > 0 {
		fmt.Fprintf(r.w, "  Overall hit rate: %.1f%%\n", stats.HitRate())
	}
	fmt.Fprintf(r.w, "  Ships destroyed: %d of %d\n", stats.ShipsDestroyed(), fleetSize)
}
