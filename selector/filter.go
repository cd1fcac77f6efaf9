package selector

import (
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/expr-lang/expr"

	"github.com/xmledit/xmledit/xdoc"
)

// Where filters a result set with a boolean expression evaluated per
// match. The expression sees tag, text, attrs and index.
func Where(res []*xmlquery.Node, src string) ([]*xmlquery.Node, error) {
	if src == "" {
		return res, nil
	}
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: where %q: %w", ErrSelector, src, err)
	}
	out := make([]*xmlquery.Node, 0, len(res))
	for i, n := range res {
		v, err := expr.Run(prg, matchEnv(n, i))
		if err != nil {
			return nil, fmt.Errorf("%w: where %q: %w", ErrSelector, src, err)
		}
		if keep, ok := v.(bool); ok && keep {
			out = append(out, n)
		}
	}
	return out, nil
}

func matchEnv(n *xmlquery.Node, i int) map[string]any {
	attrs := map[string]string{}
	for _, a := range n.Attr {
		attrs[a.Name.Local] = a.Value
	}
	text := n.InnerText()
	if n.Type == xmlquery.ElementNode {
		text = xdoc.Text(n)
	}
	return map[string]any{
		"tag":   n.Data,
		"text":  text,
		"attrs": attrs,
		"index": i,
	}
}
