// Package extract reassembles C declarations from the sibling nodes that
// follow each declaration boundary in the reference manual.
package extract

import (
	"strings"

	"github.com/fwojciec/mpheader"
	"github.com/fwojciec/mpheader/bloom"
)

// Ensure Extractor implements mpheader.Extractor at compile time.
var _ mpheader.Extractor = (*Extractor)(nil)

// dedupeFPRate is the false positive rate of the Bloom stage used to drop
// repeated declarations.
const dedupeFPRate = 0.01

// Extractor walks both heading conventions of the manual.
type Extractor struct {
	Label   Template
	Heading Template

	// Lenient turns comments that are still open at the end of a block into
	// warnings instead of errors. The unterminated text is dropped.
	Lenient bool
}

// NewExtractor returns an Extractor using the manual's fixed layout.
func NewExtractor() *Extractor {
	return &Extractor{
		Label:   LabelTemplate,
		Heading: HeadingTemplate,
	}
}

// Extract assembles every declaration block of doc.
func (e *Extractor) Extract(doc mpheader.Document) (*mpheader.Extraction, error) {
	ext := &mpheader.Extraction{}

	labeled, err := e.extract(e.Label, doc.LabelBoundaries(), ext)
	if err != nil {
		return nil, err
	}
	ext.Labeled = labeled

	headed, err := e.extract(e.Heading, doc.HeadingBoundaries(), ext)
	if err != nil {
		return nil, err
	}
	ext.Headed = headed

	return ext, nil
}

func (e *Extractor) extract(t Template, boundaries []mpheader.Node, ext *mpheader.Extraction) ([]mpheader.Declaration, error) {
	var seen *bloom.Set
	if t.Dedupe {
		seen = bloom.NewSet(uint(len(boundaries)), dedupeFPRate)
	}

	var decls []mpheader.Declaration
	for i, boundary := range boundaries {
		label := strings.TrimSpace(boundary.Text())

		asm, err := walk(t, boundary)
		if err != nil {
			return nil, mpheader.Errorf(mpheader.ErrorCode(err), "%s block %d (%q): %s", t.Pass, i, label, mpheader.ErrorMessage(err))
		}
		if carry := asm.Carry(); carry != "" {
			err := mpheader.Errorf(mpheader.ETEMPLATE, "%s block %d (%q): unterminated comment %q", t.Pass, i, label, carry)
			if !e.Lenient {
				return nil, err
			}
			ext.Warnings = append(ext.Warnings, err)
		}

		text := asm.Text()
		if t.Fixups != nil {
			text = t.Fixups.Replace(text)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if !strings.HasSuffix(strings.TrimSpace(text), ";") {
			text += ";"
		}
		if seen != nil && !seen.Insert(text) {
			continue
		}

		decls = append(decls, mpheader.Declaration{
			Pass:  t.Pass,
			Index: i,
			Label: label,
			Text:  text,
		})
	}
	return decls, nil
}

// walk feeds the siblings of boundary into an Assembler until the template
// says the block has ended.
func walk(t Template, boundary mpheader.Node) (*Assembler, error) {
	asm := NewAssembler(t.StripNotes)

	if t.LabelPrefix != "" {
		rest, ok := strings.CutPrefix(strings.TrimSpace(boundary.Text()), t.LabelPrefix)
		if ok && t.StopOnMarkup && strings.Contains(rest, "<") {
			return asm, nil
		}
		if ok {
			asm.Feed(rest)
		}
	}

	n := boundary.Next()
	for {
		if n == nil {
			return nil, mpheader.Errorf(mpheader.ETEMPLATE, "sibling walk ran off the end of the document")
		}
		if t.stops(n, asm.Carry()) {
			break
		}

		if t.SeparatorSkip > 0 && n.Tag() == "hr" {
			if crossesSentinel(n, t.SeparatorSkip+1) {
				return nil, mpheader.Errorf(mpheader.ETEMPLATE, "separator run of %d siblings crosses an end-of-entry marker", t.SeparatorSkip)
			}
			if n = nth(n, t.SeparatorSkip+1); n == nil {
				return nil, mpheader.Errorf(mpheader.ETEMPLATE, "separator run of %d siblings runs off the end of the document", t.SeparatorSkip)
			}
			continue
		}

		text := n.Text()
		if t.StopOnMarkup && strings.Contains(asm.Carry()+text, "<") {
			break
		}
		asm.Feed(text)

		n = n.Next()
		if n != nil && t.SeparatorLookahead > 0 {
			ahead := nth(n, t.SeparatorLookahead+1)
			if ahead != nil && ahead.Tag() == "hr" && !crossesSentinel(n, t.SeparatorLookahead+1) {
				n = ahead
			}
		}
	}
	return asm, nil
}
