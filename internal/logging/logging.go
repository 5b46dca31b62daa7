// Package logging configures the console logger.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	ReportTimestamp bool
}

// DefaultOptions returns the default console logging options.
func DefaultOptions() Options {
	return Options{
		Level:           log.WarnLevel,
		ReportTimestamp: false,
	}
}

// New creates a leveled console logger writing to out. Petal logs are
// quiet by default: persistence failures are swallowed by design and only
// surface here at debug level.
func New(out io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(out, log.Options{
		Level:           opts.Level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          "petal",
	})
}

// ParseLevel maps a config string to a log level, defaulting to warn.
func ParseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
