// Package io provides JSON import and export for graphs.
//
// # Overview
//
// This is the input side of graphport: a small JSON format that external
// tools can produce and that the CLI feeds into the GML and DOT exporters.
// The format carries exactly what those exporters consume - vertices with
// attributes, edges with optional weights and attributes, and the two graph
// flags.
//
// # JSON Format
//
//	{
//	  "directed": true,
//	  "weighted": true,
//	  "nodes": [
//	    {"id": "a", "attrs": {"label": "start"}},
//	    {"id": "b"}
//	  ],
//	  "edges": [
//	    {"source": "a", "target": "b", "weight": 2.5}
//	  ]
//	}
//
// Node "id" is required and must be unique; "attrs" is an optional map of
// string pairs (the exporters consult only "label"). Edge "source" and
// "target" must reference node ids; "weight" is optional and meaningful only
// when the graph is weighted. Both top-level flags default to false.
//
// # Round-trips
//
// [WriteJSON] emits nodes and edges in the graph's iteration order, so
// export → import reproduces an equal graph with the same iteration order,
// which in turn keeps the downstream GML output byte-identical.
//
// # Errors
//
// Import validates structure only as far as the container requires: empty or
// duplicate node ids and dangling edge endpoints are errors, wrapped with
// the offending element; use errors.Is with the pkg/graph sentinels to test
// for specific causes.
package io
