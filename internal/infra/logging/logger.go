// Where: internal/infra/logging/logger.go
// What: Diagnostic logger construction.
// Why: Keep stderr diagnostics structured and separate from user-facing output.
package logging

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/aserranoni/kda-module-fetcher/internal/meta"
)

// New returns a logger writing to w. Verbose enables debug records.
func New(w io.Writer, verbose bool) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: meta.AppName,
		Level:  level,
	})
}

// Discard returns a logger that drops every record.
func Discard() *log.Logger {
	return New(io.Discard, false)
}
