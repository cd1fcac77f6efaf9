package xdoc

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"
)

const declaration = `<?xml version="1.0" encoding="UTF-8"?>`

type marshalOpts struct {
	indent int
}

type MarshalOption func(*marshalOpts)

// Indent enables pretty printing with n spaces per nesting level.
func Indent(n int) MarshalOption {
	return func(o *marshalOpts) { o.indent = n }
}

// Marshal serializes the document in UTF-8 with an XML declaration,
// preserving in-memory attribute and element order.
func (d *Document) Marshal(opts ...MarshalOption) ([]byte, error) {
	o := &marshalOpts{}
	for _, f := range opts {
		f(o)
	}
	var b strings.Builder
	b.WriteString(declaration)
	b.WriteString("\n")
	for c := d.doc.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.DeclarationNode:
			continue
		case xmlquery.TextNode, xmlquery.CharDataNode:
			// top-level text is whitespace only
			continue
		}
		b.WriteString(c.OutputXML(true))
	}
	b.WriteString("\n")
	if o.indent <= 0 {
		return []byte(b.String()), nil
	}
	return reindent(b.String(), o.indent)
}

// reindent reflows the serialized document through etree, which tracks
// nesting depth during its write pass.
func reindent(s string, n int) ([]byte, error) {
	ed := etree.NewDocument()
	if err := ed.ReadFromString(s); err != nil {
		return nil, fmt.Errorf("%w: reflowing output: %w", ErrParse, err)
	}
	ed.Indent(n)
	out, err := ed.WriteToString()
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
