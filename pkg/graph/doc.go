// Package graph provides the vertex/edge container consumed by the graphport
// exporters.
//
// # Overview
//
// A [Graph] is a flat collection of vertices and edges with two fixed flags
// chosen at construction: directed vs. undirected, and weighted vs.
// unweighted. The container is deliberately permissive - it allows self-loops
// and parallel edges and attaches no semantics to attributes beyond storing
// them - because output formats, not the container, decide what they accept.
//
// # Deterministic iteration
//
// [Graph.Vertices] and [Graph.Edges] return elements in insertion order.
// This is a documented contract, not an accident: the serializers in
// pkg/gml and pkg/render/nodelink derive identifier assignment and output
// order from it, so two exports of the same graph are byte-identical.
//
// # Attributes
//
// Vertices and edges carry an [Attributes] map of free-form string pairs.
// The exporters consult only the "label" key; when it is absent they fall
// back to the element's String() form (the vertex ID, or "source->target"
// for edges).
//
// # Building a graph
//
//	g := graph.New(graph.Options{Directed: true, Weighted: true})
//	g.AddVertex(graph.Vertex{ID: "a"})
//	g.AddVertex(graph.Vertex{ID: "b", Attrs: graph.Attributes{"label": "hub"}})
//	g.AddEdge(graph.Edge{Source: "a", Target: "b", Weight: 2.5})
//
// All mutating methods return sentinel errors (ErrInvalidVertexID,
// ErrDuplicateVertexID, ErrUnknownSourceVertex, ErrUnknownTargetVertex)
// that can be tested with errors.Is.
package graph
