package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mpheader"
	"golang.org/x/net/html"
)

// Ensure Node implements mpheader.Node at compile time.
var _ mpheader.Node = (*Node)(nil)

// Node adapts an *html.Node to mpheader.Node.
type Node struct {
	n *html.Node
}

// Tag returns the element name, or "" for anything that is not an element.
func (n *Node) Tag() string {
	if n.n.Type != html.ElementNode {
		return ""
	}
	return n.n.Data
}

// Text returns the combined text of the node and its descendants.
func (n *Node) Text() string {
	switch n.n.Type {
	case html.TextNode:
		return n.n.Data
	case html.ElementNode, html.DocumentNode:
		return goquery.NewDocumentFromNode(n.n).Text()
	}
	return ""
}

// Markup returns the outer HTML of an element, or the raw data of any
// other node.
func (n *Node) Markup() string {
	if n.n.Type != html.ElementNode {
		return n.n.Data
	}
	s, err := goquery.OuterHtml(goquery.NewDocumentFromNode(n.n).Selection)
	if err != nil {
		return ""
	}
	return s
}

// Next returns the next sibling, or nil at the end of the parent.
func (n *Node) Next() mpheader.Node {
	if n.n.NextSibling == nil {
		return nil
	}
	return &Node{n: n.n.NextSibling}
}

// Children returns the node's children in document order.
func (n *Node) Children() []mpheader.Node {
	var children []mpheader.Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, &Node{n: c})
	}
	return children
}
