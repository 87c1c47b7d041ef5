// Package log builds the zerolog logger used by the kvconf command.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Config captures options for configuring a logger.
type Config struct {
	Level  string    // optional log level ("debug", "info", etc.), defaults to "warn"
	Output io.Writer // optional writer (defaults to os.Stderr)
}

// New returns a logger writing to cfg.Output. Terminals get human readable console output,
// everything else gets one JSON object per line.
func New(cfg Config) (zerolog.Logger, error) {
	level := zerolog.WarnLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	if isTerminal(writer) {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen}
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
