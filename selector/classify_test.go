package selector

import (
	"testing"

	"github.com/antchfx/xmlquery"
)

func TestClassify(t *testing.T) {
	d := mustDoc(t, `<root a="1"><b/></root>`)
	elems, err := Eval(d, "//b", nil)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	attrs, err := Eval(d, "/root/@a", nil)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	tests := []struct {
		name   string
		res    []*xmlquery.Node
		isNode bool
		isAttr bool
	}{
		{"elements", elems, true, false},
		{"attributes", attrs, false, true},
		{"empty", nil, false, false},
	}
	for _, tc := range tests {
		if got := IsNode(tc.res); got != tc.isNode {
			t.Errorf("%s: IsNode = %v, want %v", tc.name, got, tc.isNode)
		}
		if got := IsAttribute(tc.res); got != tc.isAttr {
			t.Errorf("%s: IsAttribute = %v, want %v", tc.name, got, tc.isAttr)
		}
	}
}
