// Package selector evaluates XPath expressions against a document and
// classifies their results as node or attribute selections.
package selector
