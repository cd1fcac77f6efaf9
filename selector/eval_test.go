package selector

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xmledit/xmledit/xdoc"
)

func mustDoc(t *testing.T, s string) *xdoc.Document {
	t.Helper()
	d, err := xdoc.FromString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestEvalElements(t *testing.T) {
	d := mustDoc(t, `<root><item/><item/><item/></root>`)
	res, err := Eval(d, "//item", nil)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if len(res) != 3 {
		t.Errorf("matched %d, want 3", len(res))
	}
}

func TestEvalDeterministic(t *testing.T) {
	d := mustDoc(t, `<root><a/><b/><a/></root>`)
	first, err := Eval(d, "//a", nil)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	second, err := Eval(d, "//a", nil)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("result sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("member %d differs between evaluations", i)
		}
	}
}

func TestEvalAttribute(t *testing.T) {
	d := mustDoc(t, `<root a="1"/>`)
	res, err := Eval(d, "/root/@a", nil)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("matched %d, want 1", len(res))
	}
	if !IsAttribute(res) {
		t.Error("attribute match not classified as attribute")
	}
	if got := res[0].InnerText(); got != "1" {
		t.Errorf("attribute value %q, want %q", got, "1")
	}
	if res[0].Parent == nil || res[0].Parent.Data != "root" {
		t.Error("attribute match not bound to its owning element")
	}
}

func TestEvalEmpty(t *testing.T) {
	d := mustDoc(t, `<root/>`)
	res, err := Eval(d, "/root/@missing", nil)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if len(res) != 0 {
		t.Errorf("matched %d, want 0", len(res))
	}
}

func TestEvalBadExpression(t *testing.T) {
	d := mustDoc(t, `<root/>`)
	if _, err := Eval(d, "//[", nil); err == nil {
		t.Error("expected error for malformed xpath")
	} else if !errors.Is(err, ErrSelector) {
		t.Errorf("error %v is not ErrSelector", err)
	}
}

func TestEvalNamespaces(t *testing.T) {
	d := mustDoc(t, `<root xmlns:x="urn:x"><x:a/><a/></root>`)
	res, err := Eval(d, "//x:a", map[string]string{"x": "urn:x"})
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if len(res) != 1 {
		t.Errorf("matched %d, want 1", len(res))
	}
}

func TestCount(t *testing.T) {
	d := mustDoc(t, `<root><item/><item/><item/></root>`)
	n, err := Count(d, "//item", nil)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}

func TestMatchPaths(t *testing.T) {
	d := mustDoc(t, `<root><a/><a/></root>`)
	paths, err := MatchPaths(d, "//a", nil)
	if err != nil {
		t.Fatalf("paths: %v", err)
	}
	want := []string{"/root/a[1]", "/root/a[2]"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("paths (-want +got)\n%s", diff)
	}
}
