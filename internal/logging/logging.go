// Package logging builds the structured logger used by the entropy command.
package logging

import (
	"io"
	"log/slog"

	"github.com/oklog/ulid/v2"
)

// RunIDKey is the attribute key that carries the run identifier on every
// record.
const RunIDKey = "run_id"

// GenerateRunID returns a new ULID for run identification.  ULIDs sort by
// creation time, so log lines from successive runs order naturally.
func GenerateRunID() string {
	return ulid.Make().String()
}

// NewLogger returns a text logger writing to w at the given level, with
// run_id attached to every record.
func NewLogger(w io.Writer, level slog.Level, runID string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler).With(slog.String(RunIDKey, runID))
}
