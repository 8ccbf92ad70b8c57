package goquery

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mpheader"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Ensure Document implements mpheader.Document at compile time.
var _ mpheader.Document = (*Document)(nil)

// labelRe matches the text nodes that open an inline declaration.
var labelRe = regexp.MustCompile(`Syntax:|multiple control groups\)\.`)

// HeadingText is the exact text of a bold declaration heading.
const HeadingText = "Syntax"

// Document wraps a parsed reference manual.
type Document struct {
	doc *goquery.Document
}

// Open reads and parses the reference manual at path.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes r using the charset the document declares and parses it.
// Documents that declare nothing and are valid UTF-8 are read as UTF-8.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	_, name, certain := charset.DetermineEncoding(data, "")
	if !certain && name == "windows-1252" && utf8.Valid(data) {
		name = "utf-8"
	}

	decoded, err := charset.NewReaderLabel(name, bytes.NewReader(data))
	if err != nil {
		return nil, mpheader.Errorf(mpheader.EINVALID, "unsupported charset %q: %v", name, err)
	}

	doc, err := goquery.NewDocumentFromReader(decoded)
	if err != nil {
		return nil, mpheader.Errorf(mpheader.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// ProductName returns the first whitespace-separated token of the first
// non-blank text in the body.
func (d *Document) ProductName() (string, error) {
	for _, body := range d.doc.Find("body").Nodes {
		if text := firstText(body); text != "" {
			return strings.Fields(text)[0], nil
		}
	}
	return "", mpheader.Errorf(mpheader.ENOTFOUND, "document body has no text to take the product name from")
}

// LabelBoundaries returns every text node mentioning a "Syntax:" label or
// the multiple control group marker, in document order.
func (d *Document) LabelBoundaries() []mpheader.Node {
	var nodes []mpheader.Node
	for _, root := range d.doc.Nodes {
		walkText(root, func(n *html.Node) bool {
			if labelRe.MatchString(n.Data) {
				nodes = append(nodes, &Node{n: n})
			}
			return true
		})
	}
	return nodes
}

// HeadingBoundaries returns every <b> element whose text is exactly "Syntax".
func (d *Document) HeadingBoundaries() []mpheader.Node {
	var nodes []mpheader.Node
	d.doc.Find("b").Each(func(_ int, sel *goquery.Selection) {
		if sel.Text() == HeadingText {
			nodes = append(nodes, &Node{n: sel.Get(0)})
		}
	})
	return nodes
}

// firstText returns the first text under n whose trimmed form is non-empty.
func firstText(n *html.Node) string {
	var text string
	walkText(n, func(t *html.Node) bool {
		if strings.TrimSpace(t.Data) != "" {
			text = t.Data
			return false
		}
		return true
	})
	return text
}

// walkText calls fn for every text node under n in document order until fn
// returns false. It reports whether the walk ran to completion.
func walkText(n *html.Node, fn func(*html.Node) bool) bool {
	if n.Type == html.TextNode {
		return fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walkText(c, fn) {
			return false
		}
	}
	return true
}
