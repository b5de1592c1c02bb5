package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds the session logger: console writer, level parsed from
// its name with info as the fallback. Logs carry operational events
// only; player-facing output never goes through here.
func New(w io.Writer, levelName string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}

	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
