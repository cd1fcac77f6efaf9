package xmledit

import (
	"fmt"

	"github.com/antchfx/xmlquery"

	"github.com/xmledit/xmledit/childspec"
	"github.com/xmledit/xmledit/debug"
	"github.com/xmledit/xmledit/selector"
	"github.com/xmledit/xmledit/xdoc"
)

// Apply evaluates the operation's selector and performs the operation
// on the matched nodes. In dry-run mode the changed verdict is
// computed without touching the tree, so the same invocation without
// dry-run would report the same verdict.
func Apply(d *xdoc.Document, op *Op) (*Outcome, error) {
	out := &Outcome{
		XPath:      op.XPath,
		Namespaces: op.Namespaces,
		State:      op.State,
		DryRun:     op.DryRun,
	}
	switch op.Kind {
	case OpCount:
		n, err := selector.Count(d, op.XPath, op.Namespaces)
		if err != nil {
			return nil, err
		}
		out.Count = n
		out.Msg = fmt.Sprintf("%d matches", n)
		return out, nil
	case OpPrintMatch:
		paths, err := selector.MatchPaths(d, op.XPath, op.Namespaces)
		if err != nil {
			return nil, err
		}
		out.Count = len(paths)
		out.Paths = paths
		out.Msg = fmt.Sprintf("%d matches", len(paths))
		return out, nil
	}

	res, err := selector.Eval(d, op.XPath, op.Namespaces)
	if err != nil {
		return nil, err
	}
	if op.Where != "" {
		res, err = selector.Where(res, op.Where)
		if err != nil {
			return nil, err
		}
	}
	out.Count = len(res)
	if debug.Apply() {
		debug.Logf("%s: %d matches of %q, dry-run %v\n", op.Kind, len(res), op.XPath, op.DryRun)
	}

	var changed bool
	switch op.Kind {
	case OpDelete:
		changed, err = deleteTargets(res, op.DryRun)
	case OpSetValue:
		changed, err = setValue(res, op)
	case OpAddChildren:
		changed, err = addChildren(res, op.Children, op.DryRun)
	case OpSetChildren:
		changed, err = setChildren(res, op.Children, op.DryRun)
	default:
		err = fmt.Errorf("unhandled operation %s", op.Kind)
	}
	if err != nil {
		return nil, err
	}
	out.Changed = changed
	out.Msg = fmt.Sprintf("%d matches", out.Count)
	return out, nil
}

// deleteTargets detaches every matched node or removes every matched
// attribute from its owning element. Members already removed stay
// removed when a later member fails.
func deleteTargets(res []*xmlquery.Node, dryRun bool) (bool, error) {
	if len(res) == 0 {
		return false, nil
	}
	if dryRun {
		return true, nil
	}
	for _, n := range res {
		if n.Type == xmlquery.AttributeNode {
			xdoc.RemoveAttr(n.Parent, n.Data)
			continue
		}
		if err := xdoc.Detach(n); err != nil {
			return false, fmt.Errorf("%w: %w", ErrMutation, err)
		}
	}
	return true, nil
}

// setValue writes the desired text or attribute value to every matched
// element, reporting a change only when a stored value differed.
func setValue(res []*xmlquery.Node, op *Op) (bool, error) {
	if !selector.IsNode(res) {
		return false, fmt.Errorf("%w: xpath %q does not reference a node", ErrTargetType, op.XPath)
	}
	var q xdoc.QName
	if op.Attribute != "" {
		var err error
		q, err = xdoc.ParseQName(op.Attribute, op.Namespaces)
		if err != nil {
			return false, err
		}
	}
	changed := false
	for _, n := range res {
		if op.Attribute == "" {
			if xdoc.Text(n) == op.Value {
				continue
			}
			changed = true
			if !op.DryRun {
				xdoc.SetText(n, op.Value)
			}
			continue
		}
		cur, ok := xdoc.AttrValue(n, q)
		if ok && cur == op.Value {
			continue
		}
		changed = true
		if !op.DryRun {
			xdoc.SetAttr(n, q, op.Value)
		}
	}
	return changed, nil
}

// addChildren appends freshly built children to every matched element,
// without deduplicating against existing children. An empty result set
// is a no-op, not an error: there is nothing to add to.
func addChildren(res []*xmlquery.Node, spec childspec.Spec, dryRun bool) (bool, error) {
	if len(res) == 0 {
		return false, nil
	}
	if !selector.IsNode(res) {
		return false, fmt.Errorf("%w: add-children requires element matches", ErrTargetType)
	}
	if dryRun {
		if _, err := childspec.Build(spec); err != nil {
			return false, err
		}
		return true, nil
	}
	for _, n := range res {
		// each parent gets its own copies
		kids, err := childspec.Build(spec)
		if err != nil {
			return false, err
		}
		for _, k := range kids {
			xdoc.AppendChild(n, k)
		}
	}
	return true, nil
}

// setChildren replaces the children of every match. Replacement always
// counts as a change when anything matched, even when the new child
// set is identical to the old one.
func setChildren(res []*xmlquery.Node, spec childspec.Spec, dryRun bool) (bool, error) {
	if len(res) == 0 {
		return false, nil
	}
	if dryRun {
		if _, err := childspec.Build(spec); err != nil {
			return false, err
		}
		return true, nil
	}
	for _, n := range res {
		kids, err := childspec.Build(spec)
		if err != nil {
			return false, err
		}
		xdoc.RemoveChildren(n)
		for _, k := range kids {
			xdoc.AppendChild(n, k)
		}
	}
	return true, nil
}
