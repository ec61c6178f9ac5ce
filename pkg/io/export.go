package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/danielgraf/graphport/pkg/graph"
)

// document is the top-level JSON shape shared by import and export.
type document struct {
	Directed bool   `json:"directed"`
	Weighted bool   `json:"weighted"`
	Nodes    []node `json:"nodes"`
	Edges    []edge `json:"edges"`
}

type node struct {
	ID    string           `json:"id"`
	Attrs graph.Attributes `json:"attrs,omitempty"`
}

type edge struct {
	Source string           `json:"source"`
	Target string           `json:"target"`
	Weight *float64         `json:"weight,omitempty"`
	Attrs  graph.Attributes `json:"attrs,omitempty"`
}

// WriteJSON encodes a graph as JSON and writes it to w.
// Nodes and edges appear in the graph's iteration order, so the output is
// deterministic and round-trips through [ReadJSON] into an equal graph.
// Edge weights are only written for weighted graphs.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	out := document{
		Directed: g.Directed(),
		Weighted: g.Weighted(),
		Nodes:    make([]node, 0, g.VertexCount()),
		Edges:    make([]edge, 0, g.EdgeCount()),
	}

	for _, v := range g.Vertices() {
		n := node{ID: v.ID}
		if len(v.Attrs) > 0 {
			n.Attrs = v.Attrs
		}
		out.Nodes = append(out.Nodes, n)
	}
	for _, e := range g.Edges() {
		d := edge{Source: e.Source, Target: e.Target}
		if g.Weighted() {
			weight := e.Weight
			d.Weight = &weight
		}
		if len(e.Attrs) > 0 {
			d.Attrs = e.Attrs
		}
		out.Edges = append(out.Edges, d)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
