package xmledit

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xmledit/xmledit/childspec"
)

func TestResolveOpDefaults(t *testing.T) {
	op, err := ResolveOp(Params{Value: String("v")})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := &Op{Kind: OpSetValue, XPath: "/", State: StatePresent, Value: "v"}
	if diff := cmp.Diff(want, op); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestResolveOpMutualExclusion(t *testing.T) {
	_, err := ResolveOp(Params{
		Value:       String("v"),
		AddChildren: childspec.Spec{{Name: "a"}},
	})
	if err == nil {
		t.Error("value+addChildren should be rejected")
	}
	_, err = ResolveOp(Params{
		AddChildren: childspec.Spec{{Name: "a"}},
		SetChildren: childspec.Spec{{Name: "a"}},
	})
	if err == nil {
		t.Error("addChildren+setChildren should be rejected")
	}
}

func TestResolveOpAbsentPrecedence(t *testing.T) {
	op, err := ResolveOp(Params{
		XPath: "/root/a",
		State: StateAbsent,
		Value: String("v"),
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if op.Kind != OpDelete {
		t.Errorf("kind = %s, want delete (absent wins)", op.Kind)
	}
}

func TestResolveOpQueryShortCircuit(t *testing.T) {
	op, err := ResolveOp(Params{
		XPath: "//item",
		Count: true,
		State: StateAbsent,
		Value: String("v"),
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if op.Kind != OpCount {
		t.Errorf("kind = %s, want count (queries run before any mutation)", op.Kind)
	}

	op, err = ResolveOp(Params{XPath: "//item", PrintMatch: true, State: StateAbsent})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if op.Kind != OpPrintMatch {
		t.Errorf("kind = %s, want print-match", op.Kind)
	}
}

func TestResolveOpNothingToDo(t *testing.T) {
	if _, err := ResolveOp(Params{XPath: "/root"}); err == nil {
		t.Error("state present with no value or children should be rejected")
	}
}

func TestResolveOpInvalidState(t *testing.T) {
	if _, err := ResolveOp(Params{State: "gone", Value: String("v")}); err == nil {
		t.Error("invalid state should be rejected")
	}
}
