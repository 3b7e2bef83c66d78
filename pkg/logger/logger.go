// Package logger builds the zerolog logger used as the diagnostic channel
// for the whole application. Core components report recoverable failures
// here; nothing user-facing goes through it.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger construction.
type Options struct {
	// Output is the writer logs are sent to. Defaults to os.Stderr so
	// diagnostics never mix with interactive output on stdout.
	Output io.Writer
	// Level is the minimum level: trace, debug, info, warn, error.
	// Unrecognised or empty values mean info.
	Level string
	// Pretty enables the human-friendly console writer instead of JSON.
	Pretty bool
}

// New constructs a zerolog.Logger from opts. Components receive the logger
// through their constructors; there is no package-level singleton.
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime}
	}

	return zerolog.New(out).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a level name to a zerolog.Level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
