// Package log provides the structured logger used for coordinator-level
// diagnostics (input size, chosen window width, window count), grounded
// on gnark's use of github.com/rs/zerolog for backend-level diagnostics.
// No timings are logged. This core never logs anything on the
// correctness-critical path (BatchAffineAdder, WindowWorker's inner loop)
// — only the coordinator emits a single debug-level event per MultiExp
// call.
package log

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-wide structured logger. Tests and callers that
// want quieter output can call SetLevel.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.InfoLevel)

// SetLevel adjusts the minimum level Logger emits.
func SetLevel(level zerolog.Level) {
	Logger = Logger.Level(level)
}
