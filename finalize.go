package xmledit

import (
	"fmt"
	"os"

	"github.com/xmledit/xmledit/debug"
	"github.com/xmledit/xmledit/xdoc"
)

type finalizeOpts struct {
	indent int
	backup bool
}

type FinalizeOption func(*finalizeOpts)

// Pretty enables indented output with n spaces per nesting level.
func Pretty(n int) FinalizeOption {
	return func(o *finalizeOpts) { o.indent = n }
}

// Backup writes a .bak copy of a file origin before overwriting it.
func Backup(v bool) FinalizeOption {
	return func(o *finalizeOpts) { o.backup = v }
}

// Finalize serializes the document when the outcome reports a change,
// writing a file origin back in place and returning the serialized
// text for inline origins. An unchanged document is never rewritten,
// so no-op invocations preserve byte identity and mtimes. A dry-run
// outcome never writes.
func Finalize(d *xdoc.Document, out *Outcome, opts ...FinalizeOption) (string, error) {
	if !out.Changed || out.DryRun {
		return string(d.Raw()), nil
	}
	o := &finalizeOpts{}
	for _, f := range opts {
		f(o)
	}
	var mOpts []xdoc.MarshalOption
	if o.indent > 0 {
		mOpts = append(mOpts, xdoc.Indent(o.indent))
	}
	data, err := d.Marshal(mOpts...)
	if err != nil {
		return "", err
	}
	if d.Path() == "" {
		return string(data), nil
	}
	if o.backup {
		if err := os.WriteFile(d.Path()+".bak", d.Raw(), 0644); err != nil {
			return "", fmt.Errorf("could not back up %q: %w", d.Path(), err)
		}
	}
	if debug.Write() {
		debug.Logf("writing %d bytes to %s\n", len(data), d.Path())
	}
	if err := os.WriteFile(d.Path(), data, 0644); err != nil {
		return "", fmt.Errorf("could not write %q: %w", d.Path(), err)
	}
	return string(data), nil
}
