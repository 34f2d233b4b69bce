// Package logctx provides the package-scoped structured logger used across
// the engine for observational logging — resolved collisions, fixture
// loading — none of which affects engine semantics.
package logctx

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the engine-wide structured logger. It writes to stderr at info
// level by default; call SetLevel to change verbosity.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger().Level(zerolog.InfoLevel)

// SetLevel sets the minimum level Log will emit.
func SetLevel(level zerolog.Level) {
	Log = Log.Level(level)
}
