package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/mpheader"
)

// Sentinel is the Private Use Area glyph the manual places at the end of
// every documented entry.
const Sentinel = "\uf06e"

// labelLineRe matches a line that starts a new labelled paragraph
// ("Return value:", "Note:").
var labelLineRe = regexp.MustCompile(`(?m)^\w+:`)

// Template describes how one heading convention lays out a declaration
// block and when the block ends.
type Template struct {
	Pass mpheader.Pass

	// LabelPrefix is stripped from the boundary text; the rest of the
	// boundary text is the start of the declaration.
	LabelPrefix string

	// StopOnColon ends the block at a sibling whose markup has a colon.
	StopOnColon bool

	// StopOnBold ends the block at a sibling that is or contains <b>.
	StopOnBold bool

	// StopOnLabelLine ends the block when the sibling text starts a line
	// with "Word:".
	StopOnLabelLine bool

	// StopOnMarkup ends the block, dropping the sibling, when the sibling
	// text contains a literal "<".
	StopOnMarkup bool

	// StripNotes removes bracketed cross-reference notes.
	StripNotes bool

	// SeparatorSkip is the number of boilerplate siblings the template
	// inserts after each <hr>. When the walk reaches an <hr> it resumes at
	// the first sibling after them. Zero disables the skip.
	SeparatorSkip int

	// SeparatorLookahead is the number of trailing siblings the template
	// places before each <hr>. After each sibling, if an <hr> follows that
	// many siblings later, the walk jumps straight to it. Zero disables the
	// lookahead.
	SeparatorLookahead int

	// Dedupe drops declarations identical to an earlier one of the same
	// pass.
	Dedupe bool

	// Fixups are applied to the rendered declaration.
	Fixups *strings.Replacer
}

// LabelTemplate is the layout of blocks opened by an inline "Syntax:" label.
var LabelTemplate = Template{
	Pass:               mpheader.PassLabel,
	LabelPrefix:        "Syntax:",
	StopOnColon:        true,
	StopOnBold:         true,
	StopOnMarkup:       true,
	SeparatorSkip:      7,
	SeparatorLookahead: 5,
	Dedupe:             true,
	Fixups:             strings.NewReplacer("attribute(expansion)", "attribute (expansion)"),
}

// HeadingTemplate is the layout of blocks opened by a bold "Syntax" heading.
var HeadingTemplate = Template{
	Pass:            mpheader.PassHeading,
	StopOnLabelLine: true,
	StripNotes:      true,
}

// stops reports whether n ends the block. carry is the unterminated
// comment that would be prepended to n's text.
func (t Template) stops(n mpheader.Node, carry string) bool {
	markup := n.Markup()
	switch {
	case strings.Contains(markup, Sentinel):
		return true
	case t.StopOnColon && strings.Contains(markup, ":"):
		return true
	case t.StopOnBold && mpheader.Contains(n, "b"):
		return true
	case t.StopOnLabelLine && labelLineRe.MatchString(carry+n.Text()):
		return true
	}
	return false
}

// nth returns the sibling k positions after n, counting from 1.
func nth(n mpheader.Node, k int) mpheader.Node {
	for ; k > 0 && n != nil; k-- {
		n = n.Next()
	}
	return n
}

// crossesSentinel reports whether any of the count siblings starting at n
// holds the end-of-entry glyph.
func crossesSentinel(n mpheader.Node, count int) bool {
	for ; count > 0 && n != nil; count-- {
		if strings.Contains(n.Markup(), Sentinel) {
			return true
		}
		n = n.Next()
	}
	return false
}
