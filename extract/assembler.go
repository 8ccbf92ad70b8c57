package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	commentOpen  = "/*"
	commentClose = "*/"
	docOpen      = "/**"
)

// notesRe matches bracketed cross-reference notes such as "[Refer to 3.2]".
var notesRe = regexp.MustCompile(`\[[^\[]+\]`)

type segmentKind int

const (
	codeSegment segmentKind = iota
	commentSegment
	directiveSegment
)

type segment struct {
	kind segmentKind
	text string
}

// Assembler reconstructs the text of one declaration from the text of
// consecutive sibling nodes.
//
// The declaration is kept as a sequence of typed segments. Comments are
// documentation for the element that precedes them, so they are inserted
// after the last separator of the code seen so far rather than appended.
// Punctuation inside comment segments never counts as a separator.
type Assembler struct {
	segments   []segment
	carry      string
	stripNotes bool
}

// NewAssembler returns an empty Assembler. If stripNotes is set, bracketed
// cross-reference notes are removed from code text.
func NewAssembler(stripNotes bool) *Assembler {
	return &Assembler{stripNotes: stripNotes}
}

// Feed merges the text of the next sibling into the declaration.
// A comment that is not closed within text is carried over and completed
// by later calls.
func (a *Assembler) Feed(text string) {
	text = a.carry + text
	a.carry = ""
	for {
		open := strings.Index(text, commentOpen)
		if open < 0 {
			a.add(text)
			return
		}
		a.add(text[:open])

		rest := text[open:]
		end := strings.Index(rest[len(commentOpen):], commentClose)
		if end < 0 {
			a.carry = rest
			return
		}
		end += len(commentOpen) + len(commentClose)
		a.add(rest[:end])
		text = rest[end:]
	}
}

// Carry returns the unterminated comment waiting for its closer, if any.
func (a *Assembler) Carry() string {
	return a.carry
}

// Text renders the declaration with non-breaking spaces turned into
// plain spaces.
func (a *Assembler) Text() string {
	raw := a.raw()
	s, _, err := transform.String(runes.Map(nbspToSpace), raw)
	if err != nil {
		return strings.ReplaceAll(raw, "\u00a0", " ")
	}
	return s
}

func nbspToSpace(r rune) rune {
	if r == '\u00a0' {
		return ' '
	}
	return r
}

func (a *Assembler) raw() string {
	var b strings.Builder
	for _, s := range a.segments {
		b.WriteString(s.text)
	}
	return b.String()
}

// add classifies one chunk and merges it.
func (a *Assembler) add(chunk string) {
	if chunk == "" {
		return
	}
	chunk = strings.ReplaceAll(chunk, "Typedef", "typedef")
	trimmed := strings.TrimSpace(chunk)

	switch {
	case strings.HasPrefix(trimmed, "#"):
		a.segments = append(a.segments, segment{kind: directiveSegment, text: chunk + "\n"})
	case strings.HasPrefix(trimmed, commentOpen):
		a.insertComment(docComment(chunk))
	default:
		chunk = strings.ReplaceAll(chunk, "(", "(\n")
		if a.stripNotes {
			chunk = notesRe.ReplaceAllString(chunk, "")
		}
		a.segments = append(a.segments, segment{kind: codeSegment, text: chunk})
	}
}

// docComment upgrades a plain comment opener to the documentation style.
func docComment(s string) string {
	i := strings.Index(s, commentOpen)
	if i < 0 || strings.HasPrefix(s[i:], docOpen) {
		return s
	}
	return s[:i] + docOpen + s[i+len(commentOpen):]
}

// insertComment places a comment after the last comma of the code seen so
// far, else after the last opening parenthesis, else after the last
// comment, else at the start. The final character of the code, usually
// the separator that ends the element being documented, is not searched.
func (a *Assembler) insertComment(text string) {
	raw := a.raw()
	limit := len(strings.TrimRightFunc(raw, unicode.IsSpace))
	if limit > 0 {
		_, size := utf8.DecodeLastRuneInString(raw[:limit])
		limit -= size
	}
	a.insertAt(a.insertionPoint(limit), segment{kind: commentSegment, text: text})
}

func (a *Assembler) insertionPoint(limit int) int {
	for _, sep := range []string{",", "("} {
		if i := a.lastIndex(sep, limit); i >= 0 {
			return i + len(sep)
		}
	}

	pos, offset := 0, 0
	for _, s := range a.segments {
		end := offset + len(s.text)
		if s.kind == commentSegment && end <= limit {
			pos = end
		}
		offset = end
	}
	return pos
}

// lastIndex returns the offset of the last sep in code or directive text
// that lies before limit, or -1.
func (a *Assembler) lastIndex(sep string, limit int) int {
	found, offset := -1, 0
	for _, s := range a.segments {
		start := offset
		offset += len(s.text)
		if s.kind == commentSegment || start >= limit {
			continue
		}
		text := s.text
		if start+len(text) > limit {
			text = text[:limit-start]
		}
		if i := strings.LastIndex(text, sep); i >= 0 {
			found = start + i
		}
	}
	return found
}

// insertAt inserts seg at byte offset pos of the rendered text, splitting
// the segment that spans pos if needed.
func (a *Assembler) insertAt(pos int, seg segment) {
	offset := 0
	for i, s := range a.segments {
		if pos == offset {
			a.segments = append(a.segments[:i], append([]segment{seg}, a.segments[i:]...)...)
			return
		}
		if pos < offset+len(s.text) {
			cut := pos - offset
			head := segment{kind: s.kind, text: s.text[:cut]}
			tail := segment{kind: s.kind, text: s.text[cut:]}
			rest := append([]segment{head, seg, tail}, a.segments[i+1:]...)
			a.segments = append(a.segments[:i], rest...)
			return
		}
		offset += len(s.text)
	}
	a.segments = append(a.segments, seg)
}
