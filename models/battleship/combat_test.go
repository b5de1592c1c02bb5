package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// destroyerGame is a session with only the destroyer placed, at
// (0,0)-(0,1) horizontally.
func destroyerGame(t *testing.T) *Game {
	t.Helper()
	game := NewGame()
	require.NoError(t, game.PlaceShip(3, NewCoordinates(0, 0), OrientationHorizontal))
	return game
}

func TestApplyAttackCrossAtCorner(t *testing.T) {
	game := destroyerGame(t)

	// Centered at (0,1), the cross arm along row 0 covers both
	// destroyer cells; 3 of the 9 mask cells fall off the board.
	report := game.LaunchAttack(NewCrossPattern(), NewCoordinates(0, 1))

	assert.Equal(t, 6, report.TotalShots())
	assert.Equal(t, 2, report.Hits)
	assert.Equal(t, 4, report.Misses)
	require.Len(t, report.SunkShips, 1)
	assert.Equal(t, "Destroyer", report.SunkShips[0].Name)

	state, err := game.Grid.State(0, 0)
	require.NoError(t, err)
	assert.Equal(t, CellHit, state)
	state, err = game.Grid.State(0, 3)
	require.NoError(t, err)
	assert.Equal(t, CellHitWater, state)
}

func TestApplyAttackTwoStageDestruction(t *testing.T) {
	game := destroyerGame(t)
	octahedron := NewOctahedronPattern()

	// First strike clips only the rear destroyer cell.
	first := game.LaunchAttack(octahedron, NewCoordinates(2, 1))
	assert.Equal(t, 5, first.TotalShots())
	assert.Equal(t, 1, first.Hits)
	assert.Empty(t, first.SunkShips, "one of two cells hit, still afloat")
	assert.False(t, game.Fleet[3].IsDestroyed())

	// Second strike at the corner: only the mask center maps onto
	// the board, and it lands on the remaining cell.
	second := game.LaunchAttack(octahedron, NewCoordinates(0, 0))
	assert.Equal(t, 1, second.TotalShots())
	assert.Equal(t, 1, second.Hits)
	require.Len(t, second.SunkShips, 1)
	assert.True(t, game.Fleet[3].IsDestroyed())

	assert.Equal(t, 6, game.Stats.TotalShots())
	assert.Equal(t, 2, game.Stats.Hits())
	assert.Equal(t, 4, game.Stats.Misses())
	assert.Equal(t, 1, game.Stats.ShipsDestroyed())
}

func TestApplyAttackIdempotence(t *testing.T) {
	game := NewGame()
	require.NoError(t, game.PlaceShip(0, NewCoordinates(4, 3), OrientationHorizontal))
	cross := NewCrossPattern()
	center := NewCoordinates(4, 5)

	first := game.LaunchAttack(cross, center)
	require.Positive(t, first.Hits)
	shotsBefore := game.Stats.TotalShots()
	destroyedBefore := game.Stats.ShipsDestroyed()

	second := game.LaunchAttack(cross, center)

	assert.Zero(t, second.Hits, "no new damage on the repeat attack")
	assert.Equal(t, first.TotalShots(), second.TotalShots(), "repeats still count as shots")
	assert.Equal(t, shotsBefore+second.TotalShots(), game.Stats.TotalShots())
	assert.Equal(t, destroyedBefore, game.Stats.ShipsDestroyed())

	for _, shot := range second.Shots {
		assert.Contains(t, []ShotOutcome{OutcomeRepeatHit, OutcomeRepeatMiss}, shot.Outcome)
	}
}

// Striking an already-hit ship cell and already-struck water report
// different outcomes even though both count as misses.
func TestApplyAttackRepeatOutcomesStayDistinct(t *testing.T) {
	game := destroyerGame(t)
	octahedron := NewOctahedronPattern()

	game.LaunchAttack(octahedron, NewCoordinates(2, 1))
	repeat := game.LaunchAttack(octahedron, NewCoordinates(2, 1))

	outcomes := make(map[Coordinates]ShotOutcome, len(repeat.Shots))
	for _, shot := range repeat.Shots {
		outcomes[shot.Target] = shot.Outcome
	}

	assert.Equal(t, OutcomeRepeatHit, outcomes[NewCoordinates(0, 1)])
	assert.Equal(t, OutcomeRepeatMiss, outcomes[NewCoordinates(1, 1)])
	assert.Equal(t, 0, repeat.Hits)
	assert.Equal(t, repeat.TotalShots(), repeat.Misses)
}

func TestApplyAttackSkipsOffBoardCells(t *testing.T) {
	game := NewGame()

	report := game.LaunchAttack(NewCrossPattern(), NewCoordinates(0, 0))

	assert.Equal(t, 5, report.TotalShots(), "4 of 9 cross cells fall off the board")
	assert.Equal(t, 0, report.Hits)
	assert.Equal(t, 5, report.Misses)
}

func TestDestructionRequiresEveryCellHit(t *testing.T) {
	game := NewGame()
	require.NoError(t, game.PlaceShip(0, NewCoordinates(5, 2), OrientationHorizontal))
	stats := game.Stats

	// Octahedron middle row covers exactly three battleship cells.
	report := game.LaunchAttack(NewOctahedronPattern(), NewCoordinates(6, 3))
	require.Equal(t, 3, report.Hits)

	assert.False(t, game.Fleet[0].IsDestroyed(), "3 of 4 cells hit is not destruction")
	assert.Zero(t, stats.ShipsDestroyed())

	finisher := game.LaunchAttack(NewOctahedronPattern(), NewCoordinates(5, 5))
	require.Equal(t, 1, finisher.Hits)
	assert.True(t, game.Fleet[0].IsDestroyed())
	assert.Equal(t, 1, stats.ShipsDestroyed())
}

func TestGameSession(t *testing.T) {
	game := NewGame()

	assert.Len(t, game.Uuid, 6)
	assert.Len(t, game.Fleet, 4)
	assert.False(t, game.FleetDestroyed())

	other := NewGame()
	assert.NotEqual(t, game.Uuid, other.Uuid)
}

func TestGameStats(t *testing.T) {
	stats := NewGameStats()
	assert.Zero(t, stats.HitRate())

	stats.RecordAttack(9, 3)
	stats.RecordAttack(5, 0)

	assert.Equal(t, 14, stats.TotalShots())
	assert.Equal(t, 3, stats.Hits())
	assert.Equal(t, 11, stats.Misses())
	assert.InDelta(t, 21.4, stats.HitRate(), 0.05)
}
