package selector

import (
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/xmledit/xmledit/debug"
	"github.com/xmledit/xmledit/xdoc"
)

// Eval evaluates an XPath expression with a namespace mapping against
// the document and returns the matches in document order. Attribute
// matches come back as synthesized attribute nodes whose Parent is the
// owning element. Evaluating the same expression against an unmutated
// document always yields the same result set.
func Eval(d *xdoc.Document, expr string, ns map[string]string) ([]*xmlquery.Node, error) {
	q, err := compile(expr, ns)
	if err != nil {
		return nil, err
	}
	res := xmlquery.QuerySelectorAll(d.Tree(), q)
	if debug.Eval() {
		debug.Logf("eval %q matched %d\n", expr, len(res))
	}
	return res, nil
}

// Count evaluates count(expr) without materializing the match list.
func Count(d *xdoc.Document, expr string, ns map[string]string) (int, error) {
	q, err := compile("count("+expr+")", ns)
	if err != nil {
		return 0, err
	}
	v := q.Evaluate(xmlquery.CreateXPathNavigator(d.Tree()))
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: count(%s) gave %T", ErrSelector, expr, v)
	}
	return int(f), nil
}

// MatchPaths returns the canonical absolute path of every match.
func MatchPaths(d *xdoc.Document, expr string, ns map[string]string) ([]string, error) {
	res, err := Eval(d, expr, ns)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(res))
	for _, n := range res {
		paths = append(paths, xdoc.CanonicalPath(n))
	}
	return paths, nil
}

func compile(expr string, ns map[string]string) (*xpath.Expr, error) {
	q, err := xpath.CompileWithNS(expr, ns)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrSelector, expr, err)
	}
	return q, nil
}
