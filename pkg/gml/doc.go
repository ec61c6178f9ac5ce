// Package gml serializes graphs into the GML (Graph Modeling Language) text
// format, a plain-text, bracket-delimited key-value interchange format
// understood by most graph tools.
//
// # Output shape
//
// The document layout is fixed; only the optional fields vary with the
// exporter's parameters:
//
//	Creator "graphport GML exporter"
//	Version 1
//	graph
//	[
//		label ""
//		directed 1
//		node
//		[
//			id 0
//			label "hub"
//		]
//		edge
//		[
//			source 0
//			target 1
//			weight 2.5
//		]
//	]
//
// Indentation is one tab inside the graph block and two tabs inside node and
// edge blocks, with "\n" line endings. The byte layout is part of the
// contract: exporting the same graph twice with the same configuration
// produces identical bytes.
//
// # Determinism
//
// Vertex ids are assigned on first lookup and cached for the duration of one
// Export call. Export forces a full pass over the vertices, in the graph's
// iteration order, before writing any output - so ids never depend on edge
// order, and the default integer provider numbers vertices 0, 1, 2, ... in
// iteration order.
//
// # Parameters
//
// Four independent toggles control optional output: vertex labels, edge
// labels, edge weights, and string escaping. See [Parameter] for the exact
// semantics, in particular the documented footgun of leaving
// [ParameterEscapeStrings] off with label text containing quotes.
//
//	exp := gml.NewExporter()
//	exp.SetParameter(gml.ParameterExportVertexLabels, true)
//	exp.SetParameter(gml.ParameterEscapeStrings, true)
//	if err := exp.Export(g, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Scope
//
// This package only writes GML; it does not parse it, and it does not
// validate the graph beyond what the format needs - self-loops and parallel
// edges are emitted as-is.
package gml
