package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/xmledit/xmledit"
	"github.com/xmledit/xmledit/xdoc"
)

func reportOutcome(w io.Writer, out *xmledit.Outcome) error {
	d, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("error encoding outcome: %w", err)
	}
	_, err = w.Write(d)
	return err
}

func statusLine(w io.Writer, out *xmledit.Outcome) {
	s, paint := "ok", color.GreenString
	if out.Changed {
		s, paint = "changed", color.YellowString
	}
	if isTerminal(w) {
		s = paint(s)
	}
	fmt.Fprintf(w, "%s (%d matches)\n", s, out.Count)
}

// renderDiff prints a character-level diff between the document's
// original bytes and its current serialization.
func renderDiff(cfg *MainConfig, w io.Writer, doc *xdoc.Document) error {
	var mOpts []xdoc.MarshalOption
	if cfg.Pretty {
		mOpts = append(mOpts, xdoc.Indent(2))
	}
	after, err := doc.Marshal(mOpts...)
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(doc.Raw()), string(after), false)
	if isTerminal(w) {
		fmt.Fprintln(w, dmp.DiffPrettyText(diffs))
		return nil
	}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			fmt.Fprintf(w, "[+%s]", d.Text)
		case diffpatch.DiffDelete:
			fmt.Fprintf(w, "[-%s]", d.Text)
		default:
			fmt.Fprint(w, d.Text)
		}
	}
	fmt.Fprintln(w)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
