// Package logger provides slog setup for the repograde CLI.
//
// Components receive an explicit *slog.Logger handle through their
// constructors instead of reaching for a package-level singleton, so tests
// can inject a silent logger and the CLI controls level and sink in one place.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a logger writing pretty, human-oriented lines to w.
// verbose lowers the level to debug; otherwise per-file skip noise is hidden.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(NewPrettyHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Default returns a logger for the CLI boundary, writing to stderr so that
// report output on stdout stays machine-consumable.
func Default(verbose bool) *slog.Logger {
	return New(os.Stderr, verbose)
}
