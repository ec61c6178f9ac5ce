package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/danielgraf/graphport/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// Labels renders each element's "label" attribute (falling back to the
	// element's display string) instead of the bare vertex id.
	Labels bool
	// Weights renders edge weights as edge labels. Only takes effect on
	// weighted graphs.
	Weights bool
}

// ToDOT converts a graph to Graphviz DOT format. Directed graphs become a
// digraph with "->" edges, undirected graphs a graph with "--" edges.
// Vertices and edges are emitted in the graph's iteration order, so the
// output is deterministic. The resulting DOT string can be rendered with
// [RenderSVG].
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	keyword, arrow := "graph", "--"
	if g.Directed() {
		keyword, arrow = "digraph", "->"
	}
	fmt.Fprintf(&buf, "%s G {\n", keyword)
	buf.WriteString("  node [shape=box, style=rounded];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		if opts.Labels {
			fmt.Fprintf(&buf, "  %q [label=%q];\n", v.ID, vertexLabel(v))
		} else {
			fmt.Fprintf(&buf, "  %q;\n", v.ID)
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if attrs := edgeAttrs(g, e, opts); attrs != "" {
			fmt.Fprintf(&buf, "  %q %s %q [%s];\n", e.Source, arrow, e.Target, attrs)
		} else {
			fmt.Fprintf(&buf, "  %q %s %q;\n", e.Source, arrow, e.Target)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func vertexLabel(v *graph.Vertex) string {
	if label, ok := v.Attrs.Lookup("label"); ok {
		return label
	}
	return v.String()
}

func edgeAttrs(g *graph.Graph, e graph.Edge, opts Options) string {
	var label string
	if opts.Labels {
		if l, ok := e.Attrs.Lookup("label"); ok {
			label = l
		}
	}
	if opts.Weights && g.Weighted() {
		w := strconv.FormatFloat(e.Weight, 'g', -1, 64)
		if label != "" {
			label += " (" + w + ")"
		} else {
			label = w
		}
	}
	if label == "" {
		return ""
	}
	return fmt.Sprintf("label=%q", label)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or embedding.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
