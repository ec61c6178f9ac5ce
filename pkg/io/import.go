package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/danielgraf/graphport/pkg/graph"
)

// ReadJSON decodes a JSON graph from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "directed": true,
//	  "weighted": true,
//	  "nodes": [{"id": "a"}, {"id": "b", "attrs": {"label": "hub"}}],
//	  "edges": [{"source": "a", "target": "b", "weight": 2.5}]
//	}
//
// Each node must have an "id" field; "attrs" is an optional string map.
// Each edge must have "source" and "target" fields referencing node ids;
// "weight" and "attrs" are optional. The top-level "directed" and
// "weighted" flags default to false.
//
// ReadJSON returns an error if the JSON is malformed, a node id is empty or
// duplicated, or an edge references an unknown node. Errors are wrapped with
// the offending node or edge for context; the graph sentinel errors remain
// testable with errors.Is.
//
// The returned graph is independent of r and can be modified freely.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := graph.New(graph.Options{Directed: data.Directed, Weighted: data.Weighted})
	for _, n := range data.Nodes {
		if err := g.AddVertex(graph.Vertex{ID: n.ID, Attrs: n.Attrs}); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	for _, e := range data.Edges {
		edge := graph.Edge{Source: e.Source, Target: e.Target, Attrs: e.Attrs}
		if e.Weight != nil {
			edge.Weight = *e.Weight
		}
		if err := g.AddEdge(edge); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.Source, e.Target, err)
		}
	}

	return g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context and
// carry the same validation semantics as [ReadJSON].
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return g, nil
}
