package xdoc

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
)

// QName is a resolved attribute name: an optional prefix and namespace
// URI plus a local name.
type QName struct {
	Prefix string
	URI    string
	Local  string
}

func (q QName) String() string {
	if q.Prefix != "" {
		return q.Prefix + ":" + q.Local
	}
	return q.Local
}

// ParseQName resolves an attribute name of the form "local",
// "prefix:local" or "{uri}local" against the prefix→URI mapping.
func ParseQName(name string, ns map[string]string) (QName, error) {
	if strings.HasPrefix(name, "{") {
		i := strings.Index(name, "}")
		if i < 0 {
			return QName{}, fmt.Errorf("%w: malformed name %q", ErrNamespace, name)
		}
		uri, local := name[1:i], name[i+1:]
		for p, u := range ns {
			if u == uri {
				return QName{Prefix: p, URI: uri, Local: local}, nil
			}
		}
		return QName{}, fmt.Errorf("%w: no prefix bound to %q", ErrNamespace, uri)
	}
	if p, local, ok := strings.Cut(name, ":"); ok {
		uri, ok := ns[p]
		if !ok {
			return QName{}, fmt.Errorf("%w: undeclared prefix %q", ErrNamespace, p)
		}
		return QName{Prefix: p, URI: uri, Local: local}, nil
	}
	return QName{Local: name}, nil
}

// AttrValue returns the value of the attribute named by q and whether
// the attribute is present on the element.
func AttrValue(n *xmlquery.Node, q QName) (string, bool) {
	for _, a := range n.Attr {
		if attrMatches(a, q) {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets q to value on the element, reporting whether the stored
// value changed.
func SetAttr(n *xmlquery.Node, q QName, value string) bool {
	for i, a := range n.Attr {
		if attrMatches(a, q) {
			if a.Value == value {
				return false
			}
			n.Attr[i].Value = value
			return true
		}
	}
	n.Attr = append(n.Attr, xmlquery.Attr{
		Name:         xml.Name{Space: q.Prefix, Local: q.Local},
		Value:        value,
		NamespaceURI: q.URI,
	})
	return true
}

// RemoveAttr removes the first attribute with the given local name,
// reporting whether one was removed. Selector results identify
// attributes by local name only, so removal matches the same way.
func RemoveAttr(n *xmlquery.Node, local string) bool {
	for i, a := range n.Attr {
		if a.Name.Local == local {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return true
		}
	}
	return false
}

func attrMatches(a xmlquery.Attr, q QName) bool {
	if a.Name.Local != q.Local {
		return false
	}
	if q.URI != "" {
		return a.NamespaceURI == q.URI
	}
	return a.Name.Space == ""
}
