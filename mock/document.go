package mock

import "github.com/fwojciec/mpheader"

var _ mpheader.Document = (*Document)(nil)

// Document is a mock implementation of mpheader.Document.
type Document struct {
	ProductNameFn       func() (string, error)
	LabelBoundariesFn   func() []mpheader.Node
	HeadingBoundariesFn func() []mpheader.Node
}

func (d *Document) ProductName() (string, error) {
	return d.ProductNameFn()
}

func (d *Document) LabelBoundaries() []mpheader.Node {
	return d.LabelBoundariesFn()
}

func (d *Document) HeadingBoundaries() []mpheader.Node {
	return d.HeadingBoundariesFn()
}
