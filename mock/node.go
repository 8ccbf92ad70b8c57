package mock

import (
	"strings"

	"github.com/fwojciec/mpheader"
)

var _ mpheader.Node = (*Node)(nil)

// Node is an in-memory mpheader.Node used to build synthetic document trees.
type Node struct {
	TagName string
	Data    string
	Kids    []*Node

	next *Node
}

// Text returns a text node.
func Text(s string) *Node {
	return &Node{Data: s}
}

// Element returns an element node whose children are linked as siblings.
func Element(tag string, children ...*Node) *Node {
	return &Node{TagName: tag, Kids: Siblings(children...)}
}

// Siblings links nodes so that each one's Next is the following node.
func Siblings(nodes ...*Node) []*Node {
	for i := 0; i+1 < len(nodes); i++ {
		nodes[i].next = nodes[i+1]
	}
	return nodes
}

func (n *Node) Tag() string {
	return n.TagName
}

func (n *Node) Text() string {
	if n.TagName == "" {
		return n.Data
	}
	var b strings.Builder
	for _, k := range n.Kids {
		b.WriteString(k.Text())
	}
	return b.String()
}

func (n *Node) Markup() string {
	if n.TagName == "" {
		return n.Data
	}
	if len(n.Kids) == 0 {
		return "<" + n.TagName + "/>"
	}
	var b strings.Builder
	b.WriteString("<" + n.TagName + ">")
	for _, k := range n.Kids {
		b.WriteString(k.Markup())
	}
	b.WriteString("</" + n.TagName + ">")
	return b.String()
}

func (n *Node) Next() mpheader.Node {
	if n.next == nil {
		return nil
	}
	return n.next
}

func (n *Node) Children() []mpheader.Node {
	children := make([]mpheader.Node, len(n.Kids))
	for i, k := range n.Kids {
		children[i] = k
	}
	return children
}
