package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRunner builds a Runner fed from a canned input script,
// capturing the transcript and muting the logger.
func scriptedRunner(script string) (*Runner, *bytes.Buffer) {
	var out bytes.Buffer
	runner := NewRunner(strings.NewReader(script), &out, zerolog.Nop())
	return runner, &out
}

func TestRunnerFullSession(t *testing.T) {
	// Fleet down the left side, then one strike per pattern.
	script := strings.Join([]string{
		"A0", "H", // Battleship (0,0)-(0,3)
		"A2", "H", // Cruiser 1  (2,0)-(2,2)
		"A4", "V", // Cruiser 2  (4,0)-(6,0)
		"A8", "D", // Destroyer  (8,0),(9,1)
		"B1", // Cone center
		"A0", // Cross center
		"F5", // Octahedron center
	}, "\n")

	runner, out := scriptedRunner(script)
	err := runner.Run()
	require.NoError(t, err)

	transcript := out.String()
	assert.Contains(t, transcript, "All ships placed.")
	assert.Contains(t, transcript, "Attack pattern: Cone")
	assert.Contains(t, transcript, "Attack pattern: Cross")
	assert.Contains(t, transcript, "Attack pattern: Octahedron")
	assert.Contains(t, transcript, "Cone attack centered at B1")
	assert.Contains(t, transcript, "Cross attack centered at A0")
	assert.Contains(t, transcript, "Octahedron attack centered at F5")
	assert.Contains(t, transcript, "=== FINAL BOARD ===")
	assert.Contains(t, transcript, "Final statistics:")
	assert.Contains(t, transcript, "Ships destroyed:")
}

func TestRunnerPlacementRetries(t *testing.T) {
	// Battleship rejected twice (bad column letter, then exits the
	// board), lands on the third attempt; remaining ships go first try.
	script := strings.Join([]string{
		"Z0",
		"H8", "H",
		"A0", "H",
		"A2", "H",
		"A4", "V",
		"A8", "D",
		"B1",
		"A0",
		"F5",
	}, "\n")

	runner, out := scriptedRunner(script)
	err := runner.Run()
	require.NoError(t, err)

	transcript := out.String()
	assert.Contains(t, transcript, "Invalid column. Use letters A through J.")
	assert.Contains(t, transcript, "the ship exits the board")
	assert.Contains(t, transcript, "Attempt 3 of 5")
	assert.Contains(t, transcript, "All ships placed.")
}

func TestRunnerPlacementExhaustion(t *testing.T) {
	// Five bad reads burn the whole budget for the first ship.
	script := strings.Join([]string{"Z0", "Z0", "Z0", "Z0", "Z0"}, "\n")

	runner, out := scriptedRunner(script)
	err := runner.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not place Battleship")
	assert.NotContains(t, out.String(), "All ships placed.")
}

func TestRunnerOccupiedFeedback(t *testing.T) {
	script := strings.Join([]string{
		"A0", "H",
		"A0", "V", // overlaps the battleship origin
		"A2", "H",
		"A4", "V",
		"A8", "D",
		"B1",
		"A0",
		"F5",
	}, "\n")

	runner, out := scriptedRunner(script)
	err := runner.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "another ship blocks that position")
}

func TestRunnerSkipsAttackOnBadRead(t *testing.T) {
	// Garbage center for the cone, valid cross center, then the
	// input dries up before the octahedron.
	script := strings.Join([]string{
		"A0", "H",
		"A2", "H",
		"A4", "V",
		"A8", "D",
		"XX",
		"A0",
	}, "\n")

	runner, out := scriptedRunner(script)
	err := runner.Run()
	require.NoError(t, err, "skipped attacks never kill the session")

	transcript := out.String()
	assert.Contains(t, transcript, "Skipping the Cone attack.")
	assert.Contains(t, transcript, "Cross attack centered at A0")
	assert.Contains(t, transcript, "Skipping the Octahedron attack.")
	assert.Contains(t, transcript, "Final statistics:")
}
