package xdoc

import (
	"testing"

	"github.com/antchfx/xmlquery"
)

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	d, err := FromString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func elem(t *testing.T, d *Document, expr string) *xmlquery.Node {
	t.Helper()
	n := xmlquery.FindOne(d.Tree(), expr)
	if n == nil {
		t.Fatalf("no match for %q", expr)
	}
	return n
}

func TestTextMixedContent(t *testing.T) {
	d := mustParse(t, `<a>one<b/>two</a>`)
	if got := Text(elem(t, d, "/a")); got != "onetwo" {
		t.Errorf("Text = %q, want %q", got, "onetwo")
	}
}

func TestSetTextKeepsElements(t *testing.T) {
	d := mustParse(t, `<a>one<b/>two</a>`)
	a := elem(t, d, "/a")
	SetText(a, "x")
	if got := Text(a); got != "x" {
		t.Errorf("Text = %q, want %q", got, "x")
	}
	if b := xmlquery.FindOne(d.Tree(), "/a/b"); b == nil {
		t.Error("element child <b> lost by SetText")
	}
	if a.FirstChild == nil || a.FirstChild.Type != xmlquery.TextNode {
		t.Error("text not placed before element children")
	}
}

func TestSetTextEmptyClears(t *testing.T) {
	d := mustParse(t, `<a>one</a>`)
	a := elem(t, d, "/a")
	SetText(a, "")
	if got := Text(a); got != "" {
		t.Errorf("Text = %q, want empty", got)
	}
	if a.FirstChild != nil {
		t.Error("cleared element still has children")
	}
}

func TestDetach(t *testing.T) {
	d := mustParse(t, `<root><a/><b/></root>`)
	if err := Detach(elem(t, d, "//a")); err != nil {
		t.Fatalf("detach: %v", err)
	}
	if n := xmlquery.FindOne(d.Tree(), "//a"); n != nil {
		t.Error("detached element still reachable")
	}
	if n := xmlquery.FindOne(d.Tree(), "//b"); n == nil {
		t.Error("sibling lost by detach")
	}
}

func TestDetachRootFails(t *testing.T) {
	d := mustParse(t, `<root/>`)
	if err := Detach(d.Root()); err == nil {
		t.Error("detaching root should fail")
	}
}

func TestRemoveChildren(t *testing.T) {
	d := mustParse(t, `<root>text<a/><b/></root>`)
	root := d.Root()
	RemoveChildren(root)
	if root.FirstChild != nil || root.LastChild != nil {
		t.Error("children remain after RemoveChildren")
	}
}
