package nodelink

import (
	"strings"
	"testing"

	"github.com/danielgraf/graphport/pkg/graph"
)

func TestToDOT_Directed(t *testing.T) {
	g := graph.New(graph.Options{Directed: true})
	g.AddVertex(graph.Vertex{ID: "a"})
	g.AddVertex(graph.Vertex{ID: "b"})
	g.AddEdge(graph.Edge{Source: "a", Target: "b"})

	dot := ToDOT(g, Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `"a" -> "b"`) {
		t.Error("ToDOT() output missing directed edge")
	}
}

func TestToDOT_Undirected(t *testing.T) {
	g := graph.New(graph.Options{})
	g.AddVertex(graph.Vertex{ID: "a"})
	g.AddVertex(graph.Vertex{ID: "b"})
	g.AddEdge(graph.Edge{Source: "a", Target: "b"})

	dot := ToDOT(g, Options{})

	if !strings.Contains(dot, "graph G") || strings.Contains(dot, "digraph") {
		t.Errorf("ToDOT() undirected graph should declare 'graph G':\n%s", dot)
	}
	if !strings.Contains(dot, `"a" -- "b"`) {
		t.Error("ToDOT() output missing undirected edge")
	}
}

func TestToDOT_Labels(t *testing.T) {
	g := graph.New(graph.Options{Directed: true})
	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{"label": "start"}})
	g.AddVertex(graph.Vertex{ID: "b"})

	dot := ToDOT(g, Options{Labels: true})

	if !strings.Contains(dot, `label="start"`) {
		t.Errorf("ToDOT() missing label attribute:\n%s", dot)
	}
	if !strings.Contains(dot, `"b" [label="b"]`) {
		t.Errorf("ToDOT() missing display-string fallback label:\n%s", dot)
	}
}

func TestToDOT_Weights(t *testing.T) {
	g := graph.New(graph.Options{Directed: true, Weighted: true})
	g.AddVertex(graph.Vertex{ID: "a"})
	g.AddVertex(graph.Vertex{ID: "b"})
	g.AddEdge(graph.Edge{Source: "a", Target: "b", Weight: 2.5})

	dot := ToDOT(g, Options{Weights: true})

	if !strings.Contains(dot, `label="2.5"`) {
		t.Errorf("ToDOT() missing weight label:\n%s", dot)
	}
}

func TestToDOT_WeightsIgnoredOnUnweighted(t *testing.T) {
	g := graph.New(graph.Options{Directed: true})
	g.AddVertex(graph.Vertex{ID: "a"})
	g.AddVertex(graph.Vertex{ID: "b"})
	g.AddEdge(graph.Edge{Source: "a", Target: "b", Weight: 2.5})

	dot := ToDOT(g, Options{Weights: true})

	if strings.Contains(dot, "2.5") {
		t.Errorf("ToDOT() emitted weight on unweighted graph:\n%s", dot)
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	g := graph.New(graph.Options{Directed: true})
	for _, id := range []string{"z", "a", "m"} {
		g.AddVertex(graph.Vertex{ID: id})
	}
	g.AddEdge(graph.Edge{Source: "z", Target: "m"})

	if ToDOT(g, Options{}) != ToDOT(g, Options{}) {
		t.Error("ToDOT() is not deterministic")
	}

	// Vertices appear in insertion order.
	dot := ToDOT(g, Options{})
	if strings.Index(dot, `"z"`) > strings.Index(dot, `"a"`) {
		t.Errorf("ToDOT() vertices out of insertion order:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	svg := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00">`)
	out := string(normalizeViewBox(svg))

	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("normalizeViewBox() unexpected output: %s", out)
	}
	if !strings.Contains(out, `width="100"`) {
		t.Errorf("normalizeViewBox() should set pixel width: %s", out)
	}
}

func TestNormalizeViewBox_NoMatch(t *testing.T) {
	svg := []byte("<svg>")
	if string(normalizeViewBox(svg)) != "<svg>" {
		t.Error("normalizeViewBox() should leave unmatched input untouched")
	}
}
