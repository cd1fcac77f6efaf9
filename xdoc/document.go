package xdoc

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/antchfx/xmlquery"
)

// Document is one parsed XML document together with its origin. A
// Document is owned by a single invocation and mutated in place.
type Document struct {
	doc  *xmlquery.Node
	path string
	raw  []byte
}

// FromFile reads and parses the document at path. The path is retained
// as the document's origin for write-back.
func FromFile(path string) (*Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	doc, err := parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.path = path
	return doc, nil
}

// FromString parses an inline document. The result has no file origin.
func FromString(s string) (*Document, error) {
	return parse([]byte(s))
}

// FromReader parses a document read in full from r.
func FromReader(r io.Reader) (*Document, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return parse(d)
}

func parse(d []byte) (*Document, error) {
	n, err := xmlquery.Parse(bytes.NewReader(d))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return &Document{doc: n, raw: d}, nil
}

// Tree returns the document node at the top of the parsed tree.
func (d *Document) Tree() *xmlquery.Node {
	return d.doc
}

// Root returns the root element, or nil for a document without one.
func (d *Document) Root() *xmlquery.Node {
	for c := d.doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}

// Path returns the file origin, or "" if the document was inline.
func (d *Document) Path() string {
	return d.path
}

// Raw returns the bytes the document was parsed from.
func (d *Document) Raw() []byte {
	return d.raw
}
