package slog

import (
	"log/slog"

	"github.com/fwojciec/mpheader"
)

// Ensure LoggingDocument implements mpheader.Document.
var _ mpheader.Document = (*LoggingDocument)(nil)

// LoggingDocument wraps a Document with debug logging for boundary
// detection.
type LoggingDocument struct {
	next   mpheader.Document
	logger *slog.Logger
}

// NewLoggingDocument creates a new LoggingDocument.
func NewLoggingDocument(next mpheader.Document, logger *slog.Logger) *LoggingDocument {
	return &LoggingDocument{next: next, logger: logger}
}

// ProductName delegates to the wrapped document and logs the result.
func (d *LoggingDocument) ProductName() (string, error) {
	name, err := d.next.ProductName()
	d.logger.Debug("product name", "name", name, "err", err)
	return name, err
}

// LabelBoundaries delegates to the wrapped document and logs the count.
func (d *LoggingDocument) LabelBoundaries() []mpheader.Node {
	nodes := d.next.LabelBoundaries()
	d.logger.Debug("boundaries", "pass", mpheader.PassLabel, "count", len(nodes))
	return nodes
}

// HeadingBoundaries delegates to the wrapped document and logs the count.
func (d *LoggingDocument) HeadingBoundaries() []mpheader.Node {
	nodes := d.next.HeadingBoundaries()
	d.logger.Debug("boundaries", "pass", mpheader.PassHeading, "count", len(nodes))
	return nodes
}
