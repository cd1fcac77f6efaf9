// Package xmledit mutates XML documents addressed by XPath.
//
// One invocation loads a document, resolves the requested parameters
// into a single operation (ResolveOp), applies it (Apply), and
// serializes the result back to its origin only when something changed
// (Finalize). Operations are idempotent where the data model permits:
// setting a value that is already stored reports no change, while
// replacing children always does (replacement, not comparison).
//
//	doc, err := xdoc.FromFile("conf.xml")
//	op, err := xmledit.ResolveOp(xmledit.Params{
//	    XPath: "/server/port",
//	    Value: xmledit.String("8080"),
//	})
//	out, err := xmledit.Apply(doc, op)
//	_, err = xmledit.Finalize(doc, out)
package xmledit
