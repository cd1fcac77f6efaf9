package selector

import (
	"errors"
	"testing"
)

func TestWhere(t *testing.T) {
	d := mustDoc(t, `<root><u id="1">ann</u><u id="2">bob</u><u id="3">cal</u></root>`)
	res, err := Eval(d, "//u", nil)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	tests := []struct {
		expr string
		want int
	}{
		{"", 3},
		{`attrs.id == "2"`, 1},
		{`text == "ann" || text == "cal"`, 2},
		{"index < 2", 2},
		{`tag == "u"`, 3},
		{"false", 0},
	}
	for _, tc := range tests {
		got, err := Where(res, tc.expr)
		if err != nil {
			t.Errorf("where %q: %v", tc.expr, err)
			continue
		}
		if len(got) != tc.want {
			t.Errorf("where %q kept %d, want %d", tc.expr, len(got), tc.want)
		}
	}
}

func TestWhereBadExpression(t *testing.T) {
	d := mustDoc(t, `<root><u/></root>`)
	res, err := Eval(d, "//u", nil)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if _, err := Where(res, "((("); err == nil {
		t.Error("expected error for malformed expression")
	} else if !errors.Is(err, ErrSelector) {
		t.Errorf("error %v is not ErrSelector", err)
	}
}
