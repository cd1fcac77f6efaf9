package xdoc

import (
	"fmt"
	"slices"
	"strings"

	"github.com/antchfx/xmlquery"
)

// CanonicalPath returns the absolute XPath-like location of a node in
// its document, e.g. /root/a[2]/b or /root/a/@id. Sibling positions are
// included only where the tag name is not unique among siblings.
func CanonicalPath(n *xmlquery.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == xmlquery.AttributeNode {
		return CanonicalPath(n.Parent) + "/@" + n.Data
	}
	var segs []string
	for e := n; e != nil && e.Type == xmlquery.ElementNode; e = e.Parent {
		segs = append(segs, pathSegment(e))
	}
	slices.Reverse(segs)
	return "/" + strings.Join(segs, "/")
}

func pathSegment(e *xmlquery.Node) string {
	name := e.Data
	if e.Prefix != "" {
		name = e.Prefix + ":" + name
	}
	idx, total := 1, 0
	if e.Parent != nil {
		for s := e.Parent.FirstChild; s != nil; s = s.NextSibling {
			if s.Type != xmlquery.ElementNode || s.Data != e.Data || s.Prefix != e.Prefix {
				continue
			}
			total++
			if s == e {
				idx = total
			}
		}
	}
	if total > 1 {
		return fmt.Sprintf("%s[%d]", name, idx)
	}
	return name
}
