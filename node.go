package mpheader

// Node is a read-only handle into the parsed reference manual.
type Node interface {
	// Tag returns the element name, or "" for text nodes.
	Tag() string

	// Text returns the text content of the node and all its descendants.
	Text() string

	// Markup returns the node's string form: the outer HTML of an element,
	// or the raw text of a text node.
	Markup() string

	// Next returns the next sibling, or nil if the node is the last child.
	Next() Node

	// Children returns the node's children in document order.
	Children() []Node
}

// Document is a parsed reference manual.
type Document interface {
	// ProductName returns the controller identifier the manual documents,
	// taken from the first non-blank text in the body.
	// Returns ENOTFOUND if the body has no text.
	ProductName() (string, error)

	// LabelBoundaries returns the text nodes that open an inline
	// "Syntax:" declaration, in document order.
	LabelBoundaries() []Node

	// HeadingBoundaries returns the bold "Syntax" headings that open a
	// declaration, in document order.
	HeadingBoundaries() []Node
}

// Contains reports whether n is, or has a descendant that is, an element
// with the given tag.
func Contains(n Node, tag string) bool {
	if n == nil {
		return false
	}
	if n.Tag() == tag {
		return true
	}
	for _, child := range n.Children() {
		if Contains(child, tag) {
			return true
		}
	}
	return false
}
