// Package xdoc loads, serializes and edits XML documents as xmlquery
// node trees.
//
// A Document owns one parsed tree for the duration of one invocation
// and records its origin so a mutated tree can be written back. The
// remaining functions are small structural edits (text, attributes,
// attach/detach, canonical paths) used by the mutation engine; they
// operate on *xmlquery.Node directly so selector results can be edited
// in place.
package xdoc
