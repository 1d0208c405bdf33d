// Package logging builds the zerolog logger used by the CLI.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps a successful run quiet.
const DefaultLevel = "warn"

// New returns a console logger writing to w at the named level
// (trace, debug, info, warn, error, disabled).
func New(w io.Writer, level string) (zerolog.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	writer := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger(), nil
}
