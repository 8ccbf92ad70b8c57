package mpheader

// Pass identifies which heading convention opened a declaration block.
type Pass string

// Declaration passes.
const (
	// PassLabel blocks start at an inline "Syntax:" label.
	PassLabel Pass = "label"

	// PassHeading blocks start at a bold "Syntax" heading.
	PassHeading Pass = "heading"
)

// Declaration is the reassembled text of one declaration block.
type Declaration struct {
	Pass  Pass
	Index int

	// Label is the trimmed text of the boundary node, kept for diagnostics.
	Label string

	// Text is the declaration, terminated with ";".
	Text string
}

// Extraction holds the declarations found by both passes.
type Extraction struct {
	Labeled []Declaration
	Headed  []Declaration

	// Warnings collects recoverable problems, such as comments that were
	// never closed, when the extractor runs in lenient mode.
	Warnings []error
}

// Extractor locates declaration blocks in a document and reassembles
// their text.
type Extractor interface {
	Extract(doc Document) (*Extraction, error)
}
