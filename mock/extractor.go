package mock

import "github.com/fwojciec/mpheader"

var _ mpheader.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mpheader.Extractor.
type Extractor struct {
	ExtractFn func(doc mpheader.Document) (*mpheader.Extraction, error)
}

func (e *Extractor) Extract(doc mpheader.Document) (*mpheader.Extraction, error) {
	return e.ExtractFn(doc)
}
