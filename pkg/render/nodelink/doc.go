// Package nodelink renders graphs as node-link diagrams via Graphviz.
//
// [ToDOT] serializes a graph to DOT text, respecting directedness (digraph
// vs. graph), optional label attributes, and optional edge weights.
// [RenderSVG] feeds a DOT string through Graphviz and returns SVG, so
// callers can go straight from a graph to an embeddable picture:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Labels: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// DOT generation is deterministic (graph iteration order); the SVG bytes
// are whatever the bundled Graphviz produces and carry no stability
// guarantee across versions.
package nodelink
