package xmledit

import (
	"fmt"

	"github.com/xmledit/xmledit/childspec"
)

// State is the requested disposition of the selection after the
// operation runs.
type State string

const (
	StatePresent State = "present"
	StateAbsent  State = "absent"
)

// Params is the full recognized option surface of one invocation, as
// collected at the boundary. ResolveOp reduces it to a single Op, so
// inconsistent combinations never reach the engine.
type Params struct {
	XPath       string
	Namespaces  map[string]string
	State       State
	Value       *string // non-nil selects set-value; empty clears the target
	Attribute   string
	AddChildren childspec.Spec
	SetChildren childspec.Spec
	Count       bool
	PrintMatch  bool
	Where       string
	DryRun      bool
}

// String returns a *string for Params.Value.
func String(s string) *string {
	return &s
}

// OpKind tags the single operation an invocation performs.
type OpKind int

const (
	OpCount OpKind = iota
	OpPrintMatch
	OpDelete
	OpSetValue
	OpAddChildren
	OpSetChildren
)

func (k OpKind) String() string {
	switch k {
	case OpCount:
		return "count"
	case OpPrintMatch:
		return "print-match"
	case OpDelete:
		return "delete"
	case OpSetValue:
		return "set-value"
	case OpAddChildren:
		return "add-children"
	case OpSetChildren:
		return "set-children"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is the tagged operation handed to Apply.
type Op struct {
	Kind       OpKind
	XPath      string
	Namespaces map[string]string
	State      State
	Value      string
	Attribute  string
	Children   childspec.Spec
	Where      string
	DryRun     bool
}

// ResolveOp chooses the one operation the parameters request.
// Read-only queries win over mutations, and the absent disposition
// wins over value and children edits.
func ResolveOp(p Params) (*Op, error) {
	if p.XPath == "" {
		p.XPath = "/"
	}
	if p.State == "" {
		p.State = StatePresent
	}
	if p.State != StatePresent && p.State != StateAbsent {
		return nil, fmt.Errorf("invalid state %q", p.State)
	}
	set := 0
	for _, on := range []bool{p.Value != nil, p.AddChildren != nil, p.SetChildren != nil} {
		if on {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf("value, add-children and set-children are mutually exclusive")
	}
	op := &Op{
		XPath:      p.XPath,
		Namespaces: p.Namespaces,
		State:      p.State,
		Attribute:  p.Attribute,
		Where:      p.Where,
		DryRun:     p.DryRun,
	}
	switch {
	case p.Count:
		op.Kind = OpCount
	case p.PrintMatch:
		op.Kind = OpPrintMatch
	case p.State == StateAbsent:
		op.Kind = OpDelete
	case p.SetChildren != nil:
		op.Kind = OpSetChildren
		op.Children = p.SetChildren
	case p.AddChildren != nil:
		op.Kind = OpAddChildren
		op.Children = p.AddChildren
	case p.Value != nil:
		op.Kind = OpSetValue
		op.Value = *p.Value
	default:
		return nil, fmt.Errorf("nothing to do: state present needs a value or children")
	}
	return op, nil
}
