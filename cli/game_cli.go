package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	cerr "github.com/saeidalz13/battleship-sim/internal/error"
	mb "github.com/saeidalz13/battleship-sim/models/battleship"
)

// A ship must land within this many attempts or the session dies.
// Attack coordinates get no such budget; one bad read just skips
// that attack.
const maxPlacementAttempts = 5

// Runner drives one session front to back: manual placement of the
// fleet, one strike per attack pattern, final board and stats.
type Runner struct {
	game     *mb.Game
	prompter *Prompter
	renderer *Renderer
	logger   zerolog.Logger
}

func NewRunner(in io.Reader, out io.Writer, logger zerolog.Logger) *Runner {
	return &Runner{
		game:     mb.NewGame(),
		prompter: NewPrompter(in, out),
		renderer: NewRenderer(out),
		logger:   logger,
	}
}

func (ru *Runner) Run() error {
	ru.logger.Info().Str("game", ru.game.Uuid).Msg("session started")

	ru.renderer.Println(
		"=== NAVAL STRIKE SIMULATOR ===",
		"Place your fleet, then fire three special attacks.",
		"Coordinates use LetterRow form (A5, B3, J9); columns A-J, rows 0-9.",
		"Orientations: H (horizontal), V (vertical), D (diagonal).",
	)
	ru.renderer.RenderBoard(ru.game.Grid)

	if err := ru.placeFleet(); err != nil {
		ru.logger.Error().Err(err).Str("game", ru.game.Uuid).Msg("placement phase failed")
		return err
	}

	ru.renderer.RenderBoard(ru.game.Grid)
	ru.renderer.RenderShipPositions(ru.game.Grid)

	patterns := []mb.AttackPattern{
		mb.NewConePattern(),
		mb.NewCrossPattern(),
		mb.NewOctahedronPattern(),
	}
	for _, pattern := range patterns {
		ru.renderer.RenderPattern(pattern)
	}

	for _, pattern := range patterns {
		ru.launchAttack(pattern)
	}

	ru.renderer.Println("\n=== FINAL BOARD ===")
	ru.renderer.RenderBoard(ru.game.Grid)
	ru.renderer.RenderStats(ru.game.Stats, len(ru.game.Fleet))

	if ru.game.FleetDestroyed() {
		ru.renderer.Println("The whole fleet went down!")
	}

	ru.logger.Info().
		Str("game", ru.game.Uuid).
		Int("totalShots", ru.game.Stats.TotalShots()).
		Int("hits", ru.game.Stats.Hits()).
		Int("shipsDestroyed", ru.game.Stats.ShipsDestroyed()).
		Msg("session finished")
	return nil
}

// placeFleet walks the fleet in assignment order. Every failed read
// or rejected placement burns one of the ship's attempts.
func (ru *Runner) placeFleet() error {
	for idx, ship := range ru.game.Fleet {
		ru.renderer.Printf("\nPlacing ship %d: %s (size %d)\n", ship.Id, ship.Name, ship.Length)

		placed := false
		for attempt := 1; attempt <= maxPlacementAttempts; attempt++ {
			ru.renderer.Printf("Attempt %d of %d:\n", attempt, maxPlacementAttempts)

			origin, err := ru.prompter.PromptCoordinates("Starting position")
			if err != nil {
				ru.renderer.Printf("%s\n", placementFeedback(err))
				continue
			}

			orientation, err := ru.prompter.PromptOrientation()
			if err != nil {
				ru.renderer.Printf("%s\n", placementFeedback(err))
				continue
			}

			if err := ru.game.PlaceShip(idx, origin, orientation); err != nil {
				ru.renderer.Printf("%s\n", placementFeedback(err))
				continue
			}

			ru.renderer.Printf("%s placed at %s.\n", ship.Name, origin)
			ru.renderer.RenderBoard(ru.game.Grid)
			ru.logger.Info().
				Str("game", ru.game.Uuid).
				Str("ship", ship.Name).
				Str("origin", origin.String()).
				Str("orientation", orientation.String()).
				Msg("ship placed")
			placed = true
			break
		}

		if !placed {
			return fmt.Errorf("could not place %s after %d attempts", ship.Name, maxPlacementAttempts)
		}
	}

	ru.renderer.Println("\nAll ships placed.")
	return nil
}

// launchAttack reads one center and fires. A failed read skips the
// attack entirely; no retry.
func (ru *Runner) launchAttack(pattern mb.AttackPattern) {
	ru.renderer.Printf("\nChoose where to strike with %s.\n", pattern.Name())

	center, err := ru.prompter.PromptCoordinates("Attack center")
	if err != nil {
		ru.renderer.Printf("%s\nSkipping the %s attack.\n", placementFeedback(err), pattern.Name())
		ru.logger.Warn().Err(err).Str("pattern", pattern.Name()).Msg("attack skipped")
		return
	}

	report := ru.game.LaunchAttack(pattern, center)
	ru.renderer.RenderAttackReport(report)
	ru.logger.Info().
		Str("game", ru.game.Uuid).
		Str("pattern", report.PatternName).
		Str("center", report.Center.String()).
		Int("hits", report.Hits).
		Int("misses", report.Misses).
		Int("sunk", len(report.SunkShips)).
		Msg("attack resolved")
}

// placementFeedback turns a domain error into the message the player
// sees next to the re-prompt.
func placementFeedback(err error) string {
	switch {
	case errors.Is(err, cerr.ErrOutOfBounds):
		return "Error: the ship exits the board there. Mind the size and direction."
	case errors.Is(err, cerr.ErrOccupied):
		return "Error: another ship blocks that position. Pick a free area."
	case errors.Is(err, cerr.ErrInvalidFormat):
		return "Invalid format. Use LetterRow, e.g. A5."
	case errors.Is(err, cerr.ErrInvalidColumn):
		return "Invalid column. Use letters A through J."
	case errors.Is(err, cerr.ErrInvalidRow):
		return "Invalid row. Use numbers 0 through 9."
	case errors.Is(err, cerr.ErrInvalidOrientation):
		return "Invalid orientation. Use H, V or D."
	case errors.Is(err, io.EOF):
		return "No more input available."
	default:
		return fmt.Sprintf("Error: %v. Try again.", err)
	}
}
