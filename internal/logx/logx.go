// Package logx configures the global zerolog logger for the CLI.
//
// All diagnostics go to stderr so stdout stays usable as a pipe. The
// default level is warn; --verbose lowers it to debug.
package logx

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	base zerolog.Logger
)

// Setup initialises the global logger exactly once. verbose enables
// debug-level output.
func Setup(verbose bool, out io.Writer) {
	once.Do(func() {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		if env := os.Getenv("LOG_LEVEL"); env != "" {
			if parsed, err := zerolog.ParseLevel(env); err == nil {
				level = parsed
			}
		}
		zerolog.SetGlobalLevel(level)

		if out == nil {
			out = os.Stderr
		}
		writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
		base = zerolog.New(writer).With().Timestamp().Logger()
	})
}

// L returns the configured base logger.
func L() zerolog.Logger {
	Setup(false, nil)
	return base
}

// WithTool returns a child logger annotated with the tool name.
func WithTool(tool string) zerolog.Logger {
	l := L().With().Str("tool", tool).Logger()
	return l
}
