// Package logging builds the structured loggers used by the CLI and the
// SSH server.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Prefix tags every line written by tui-snake loggers.
const Prefix = "snake"

// New returns a logger writing to w at the given level.
// An empty level means "info". A nil writer discards all output.
func New(w io.Writer, level string) (*log.Logger, error) {
	if w == nil {
		w = io.Discard
	}
	if level == "" {
		level = "info"
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
