// Package slog provides logging decorators for the extraction pipeline.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mpheader"
)

// Ensure LoggingExtractor implements mpheader.Extractor.
var _ mpheader.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   mpheader.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next mpheader.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor, logs each warning and then
// the outcome.
func (e *LoggingExtractor) Extract(doc mpheader.Document) (ext *mpheader.Extraction, err error) {
	defer func(begin time.Time) {
		var labeled, headed, warnings int
		if ext != nil {
			labeled, headed, warnings = len(ext.Labeled), len(ext.Headed), len(ext.Warnings)
			for _, w := range ext.Warnings {
				e.logger.Warn("extract", "warning", mpheader.ErrorMessage(w))
			}
		}
		e.logger.Info("extract",
			"labeled", labeled,
			"headed", headed,
			"warnings", warnings,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(doc)
}
