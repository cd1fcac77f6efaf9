package selector

import "github.com/antchfx/xmlquery"

// Classification inspects the first member only: attribute-selecting
// expressions yield homogeneous result sets, so one probe suffices.

// IsNode reports whether the result set carries element semantics.
func IsNode(res []*xmlquery.Node) bool {
	return len(res) > 0 && res[0].Type == xmlquery.ElementNode
}

// IsAttribute reports whether the result set carries attribute
// semantics: scalar values bound to a parent element. An empty result
// set is neither node nor attribute.
func IsAttribute(res []*xmlquery.Node) bool {
	return len(res) > 0 && res[0].Type == xmlquery.AttributeNode
}
