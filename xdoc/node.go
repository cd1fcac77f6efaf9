package xdoc

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
)

// NewElement returns a freestanding element with the given tag, not
// attached to any document.
func NewElement(tag string) *xmlquery.Node {
	return &xmlquery.Node{Type: xmlquery.ElementNode, Data: tag}
}

// NewText returns a freestanding text node.
func NewText(text string) *xmlquery.Node {
	return &xmlquery.Node{Type: xmlquery.TextNode, Data: text}
}

// Text returns the concatenation of the element's direct text children.
func Text(n *xmlquery.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.TextNode || c.Type == xmlquery.CharDataNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// SetText replaces the element's direct text children with a single
// text node placed before any element children. An empty text removes
// the element's text entirely.
func SetText(n *xmlquery.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == xmlquery.TextNode || c.Type == xmlquery.CharDataNode {
			unlink(n, c)
		}
		c = next
	}
	if text == "" {
		return
	}
	t := NewText(text)
	t.Parent = n
	t.NextSibling = n.FirstChild
	if n.FirstChild != nil {
		n.FirstChild.PrevSibling = t
	} else {
		n.LastChild = t
	}
	n.FirstChild = t
}

// AppendChild attaches child as the last child of parent.
func AppendChild(parent, child *xmlquery.Node) {
	xmlquery.AddChild(parent, child)
}

// Detach removes n from its parent. The root element has no detachable
// parent and cannot be removed.
func Detach(n *xmlquery.Node) error {
	if n.Parent == nil || n.Parent.Type == xmlquery.DocumentNode {
		return fmt.Errorf("cannot detach root element <%s>", n.Data)
	}
	xmlquery.RemoveFromTree(n)
	return nil
}

// RemoveChildren detaches every child of n.
func RemoveChildren(n *xmlquery.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		c.Parent, c.PrevSibling, c.NextSibling = nil, nil, nil
		c = next
	}
	n.FirstChild, n.LastChild = nil, nil
}

func unlink(parent, c *xmlquery.Node) {
	if c.PrevSibling != nil {
		c.PrevSibling.NextSibling = c.NextSibling
	} else {
		parent.FirstChild = c.NextSibling
	}
	if c.NextSibling != nil {
		c.NextSibling.PrevSibling = c.PrevSibling
	} else {
		parent.LastChild = c.PrevSibling
	}
	c.Parent, c.PrevSibling, c.NextSibling = nil, nil, nil
}
