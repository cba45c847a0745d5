package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/samsaffron/imgedit/internal/redact"
)

// New constructs the CLI logger. Output goes to stderr so stdout stays
// reserved for the result URL.
func New(debug bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, debug)
}

// NewWithWriter builds a console logger on w.
func NewWithWriter(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// WithSecret builds a console logger on w whose output has secret scrubbed.
func WithSecret(w io.Writer, debug bool, secret string) zerolog.Logger {
	return NewWithWriter(redact.NewWriter(w, secret), debug)
}
