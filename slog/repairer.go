package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mpheader"
)

// Ensure LoggingRepairer implements mpheader.Repairer.
var _ mpheader.Repairer = (*LoggingRepairer)(nil)

// LoggingRepairer wraps a Repairer with logging.
type LoggingRepairer struct {
	next   mpheader.Repairer
	logger *slog.Logger
}

// NewLoggingRepairer creates a new LoggingRepairer.
func NewLoggingRepairer(next mpheader.Repairer, logger *slog.Logger) *LoggingRepairer {
	return &LoggingRepairer{next: next, logger: logger}
}

// Repair delegates to the wrapped repairer and logs the size change.
func (r *LoggingRepairer) Repair(text string) string {
	begin := time.Now()
	out := r.next.Repair(text)
	r.logger.Info("repair",
		"bytes_in", len(text),
		"bytes_out", len(out),
		"duration", time.Since(begin),
	)
	return out
}
