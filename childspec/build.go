package childspec

import (
	"encoding/xml"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/xmledit/xmledit/xdoc"
)

// Build converts the spec into freestanding elements, attached to no
// document. Attributes are installed in sorted key order so repeated
// builds of the same spec serialize identically.
func Build(spec Spec) ([]*xmlquery.Node, error) {
	nodes := make([]*xmlquery.Node, 0, len(spec))
	for _, e := range spec {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: entry with empty name", ErrChildSpec)
		}
		n := xdoc.NewElement(e.Name)
		if p, l, ok := strings.Cut(e.Name, ":"); ok {
			n.Prefix, n.Data = p, l
		}
		for _, k := range slices.Sorted(maps.Keys(e.Attrs)) {
			name := xml.Name{Local: k}
			if p, l, ok := strings.Cut(k, ":"); ok {
				name = xml.Name{Space: p, Local: l}
			}
			n.Attr = append(n.Attr, xmlquery.Attr{Name: name, Value: e.Attrs[k]})
		}
		if e.Text != "" {
			xdoc.SetText(n, e.Text)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
