package xdoc

import (
	"testing"

	"github.com/antchfx/xmlquery"
)

func TestCanonicalPath(t *testing.T) {
	d := mustParse(t, `<root><a id="1"/><a><b/></a><c/></root>`)
	tests := []struct {
		expr string
		want string
	}{
		{"/root", "/root"},
		{"/root/a[1]", "/root/a[1]"},
		{"/root/a[2]", "/root/a[2]"},
		{"/root/a[2]/b", "/root/a[2]/b"},
		{"/root/c", "/root/c"},
	}
	for _, tc := range tests {
		n := xmlquery.FindOne(d.Tree(), tc.expr)
		if n == nil {
			t.Fatalf("no match for %q", tc.expr)
		}
		if got := CanonicalPath(n); got != tc.want {
			t.Errorf("%q: path %q, want %q", tc.expr, got, tc.want)
		}
	}
}

func TestCanonicalPathAttribute(t *testing.T) {
	d := mustParse(t, `<root><a id="1"/></root>`)
	n := xmlquery.FindOne(d.Tree(), "/root/a/@id")
	if n == nil {
		t.Fatal("no attribute match")
	}
	if got := CanonicalPath(n); got != "/root/a/@id" {
		t.Errorf("path %q, want /root/a/@id", got)
	}
}
