// Package childspec parses declarative child-element specifications
// and builds freestanding elements from them.
//
// A spec is a sequence where each entry is either a bare name (an
// empty child element), a single-key mapping from a name to a scalar
// (a child with that text), or a single-key mapping from a name to a
// mapping (a child with those attributes and no text). Specs arrive as
// YAML or JSON text.
package childspec
