package gml

import (
	"bufio"
	"io"
	"strconv"

	"github.com/danielgraf/graphport/pkg/graph"
)

const (
	// creator is the fixed Creator string at the top of every document.
	creator = "graphport GML exporter"
	// version is the fixed Version token emitted after the Creator line.
	version = "1"

	// labelAttributeKey is the only attribute key the exporter consults.
	labelAttributeKey = "label"

	delim = " "
	tab1  = "\t"
	tab2  = "\t\t"
)

// Parameter toggles an optional section or field of the output document.
// Parameters are independent: any combination may be set, and setting the
// same parameter repeatedly is allowed (last write wins).
type Parameter int

const (
	// ParameterExportVertexLabels emits a label field in every node block.
	// The label is the vertex's "label" attribute, falling back to the
	// vertex's display string when the attribute is absent.
	ParameterExportVertexLabels Parameter = iota

	// ParameterExportEdgeLabels emits a label field in every edge block,
	// with the same attribute-or-display-string rule as vertex labels.
	ParameterExportEdgeLabels

	// ParameterExportEdgeWeights emits a weight field in every edge block.
	// It only takes effect on weighted graphs; on an unweighted graph the
	// parameter is silently ineffective.
	ParameterExportEdgeWeights

	// ParameterEscapeStrings escapes label text as a string literal before
	// quoting. When unset, text is quoted verbatim - if it contains a raw
	// double quote or newline the resulting document is malformed, which is
	// an accepted caller choice, not an exporter error.
	ParameterEscapeStrings
)

// VertexIDProvider maps a vertex to the identifier used to reference it in
// the document. The provider is trusted to produce unique ids; the exporter
// performs no uniqueness check.
type VertexIDProvider func(v *graph.Vertex) string

// EdgeIDProvider maps an edge to an optional identifier. When the second
// return value is false the edge block carries no id field at all.
type EdgeIDProvider func(e graph.Edge) (string, bool)

// VertexAttributeLookup resolves an attribute for a vertex. Returning false
// means the attribute is absent, which makes label output fall back to the
// vertex's display string.
type VertexAttributeLookup func(v *graph.Vertex, key string) (string, bool)

// EdgeAttributeLookup resolves an attribute for an edge, with the same
// absence semantics as [VertexAttributeLookup].
type EdgeAttributeLookup func(e graph.Edge, key string) (string, bool)

// Exporter writes a graph as a GML document. The zero value is not usable -
// construct with [NewExporter] or [NewExporterWithIDProvider].
//
// Configuration (parameters, providers, lookups) persists across Export
// calls; the identifier assignment table does not, it is rebuilt fresh on
// every call. A single Exporter must not run concurrent exports.
type Exporter struct {
	parameters map[Parameter]bool

	vertexIDs  VertexIDProvider // nil means integer sequence per export
	edgeIDs    EdgeIDProvider   // nil means no edge id fields
	vertexAttr VertexAttributeLookup
	edgeAttr   EdgeAttributeLookup
}

// NewExporter creates an exporter that assigns integer vertex ids
// ("0", "1", ...) in vertex iteration order, restarting at zero on each
// Export call.
func NewExporter() *Exporter {
	return NewExporterWithIDProvider(nil)
}

// NewExporterWithIDProvider creates an exporter using the given vertex id
// provider. A nil provider selects the default integer sequence.
func NewExporterWithIDProvider(p VertexIDProvider) *Exporter {
	return &Exporter{
		parameters: make(map[Parameter]bool),
		vertexIDs:  p,
		vertexAttr: func(v *graph.Vertex, key string) (string, bool) { return v.Attrs.Lookup(key) },
		edgeAttr:   func(e graph.Edge, key string) (string, bool) { return e.Attrs.Lookup(key) },
	}
}

// SetEdgeIDProvider configures optional edge ids. Without a provider (the
// default) edge blocks carry no id field.
func (e *Exporter) SetEdgeIDProvider(p EdgeIDProvider) { e.edgeIDs = p }

// SetVertexAttributeLookup replaces the vertex attribute source. The default
// reads the vertex's own attribute map.
func (e *Exporter) SetVertexAttributeLookup(l VertexAttributeLookup) {
	if l != nil {
		e.vertexAttr = l
	}
}

// SetEdgeAttributeLookup replaces the edge attribute source. The default
// reads the edge's own attribute map.
func (e *Exporter) SetEdgeAttributeLookup(l EdgeAttributeLookup) {
	if l != nil {
		e.edgeAttr = l
	}
}

// SetParameter sets or clears a parameter. Effective on the next Export call.
func (e *Exporter) SetParameter(p Parameter, value bool) {
	if value {
		e.parameters[p] = true
	} else {
		delete(e.parameters, p)
	}
}

// IsParameter reports whether a parameter is currently set.
func (e *Exporter) IsParameter(p Parameter) bool { return e.parameters[p] }

// idTable assigns vertex ids lazily and caches them for one export. The
// first lookup for a vertex fixes its id permanently; Export drives a full
// vertex pass before writing anything, so assignment order is always the
// graph's vertex iteration order regardless of edge order.
type idTable struct {
	provider VertexIDProvider
	assigned map[string]string
	next     int
}

func newIDTable(p VertexIDProvider) *idTable {
	return &idTable{provider: p, assigned: make(map[string]string)}
}

func (t *idTable) vertexID(v *graph.Vertex) string {
	if id, ok := t.assigned[v.ID]; ok {
		return id
	}
	var id string
	if t.provider != nil {
		id = t.provider(v)
	} else {
		id = strconv.Itoa(t.next)
		t.next++
	}
	t.assigned[v.ID] = id
	return id
}

// docWriter wraps the sink with a sticky error so the export procedure can
// stay linear. After the first write failure every call is a no-op and
// flush surfaces the original error.
type docWriter struct {
	w   *bufio.Writer
	err error
}

func (d *docWriter) line(parts ...string) {
	if d.err != nil {
		return
	}
	for _, p := range parts {
		if _, d.err = d.w.WriteString(p); d.err != nil {
			return
		}
	}
	d.err = d.w.WriteByte('\n')
}

func (d *docWriter) flush() error {
	if d.err != nil {
		return d.err
	}
	return d.w.Flush()
}

// Export writes g to w as a complete GML document and flushes the sink.
//
// The document shape is fixed: Creator and Version header, a graph block
// with an empty label and the directed flag, one node block per vertex in
// iteration order, one edge block per edge in iteration order, closing
// bracket. Optional fields are controlled by the exporter's parameters.
//
// The only error source is the sink; a failed write leaves a truncated,
// invalid document behind and the error is returned as-is. There are no
// retries - callers wanting another attempt re-run Export on a fresh sink.
func (e *Exporter) Export(g *graph.Graph, w io.Writer) error {
	ids := newIDTable(e.vertexIDs)
	for _, v := range g.Vertices() {
		// assign ids in vertex iteration order
		ids.vertexID(v)
	}

	out := &docWriter{w: bufio.NewWriter(w)}
	out.line("Creator", delim, e.quoted(creator))
	out.line("Version", delim, version)
	out.line("graph")
	out.line("[")
	out.line(tab1, "label", delim, e.quoted(""))
	if g.Directed() {
		out.line(tab1, "directed", delim, "1")
	} else {
		out.line(tab1, "directed", delim, "0")
	}
	e.exportVertices(out, g, ids)
	e.exportEdges(out, g, ids)
	out.line("]")
	return out.flush()
}

func (e *Exporter) exportVertices(out *docWriter, g *graph.Graph, ids *idTable) {
	exportLabels := e.parameters[ParameterExportVertexLabels]

	for _, v := range g.Vertices() {
		out.line(tab1, "node")
		out.line(tab1, "[")
		out.line(tab2, "id", delim, ids.vertexID(v))
		if exportLabels {
			label, ok := e.vertexAttr(v, labelAttributeKey)
			if !ok {
				label = v.String()
			}
			out.line(tab2, "label", delim, e.quoted(label))
		}
		out.line(tab1, "]")
	}
}

func (e *Exporter) exportEdges(out *docWriter, g *graph.Graph, ids *idTable) {
	exportWeights := e.parameters[ParameterExportEdgeWeights]
	exportLabels := e.parameters[ParameterExportEdgeLabels]

	for _, edge := range g.Edges() {
		out.line(tab1, "edge")
		out.line(tab1, "[")
		if e.edgeIDs != nil {
			if id, ok := e.edgeIDs(edge); ok {
				out.line(tab2, "id", delim, id)
			}
		}
		src, _ := g.Vertex(edge.Source)
		dst, _ := g.Vertex(edge.Target)
		out.line(tab2, "source", delim, ids.vertexID(src))
		out.line(tab2, "target", delim, ids.vertexID(dst))
		if exportLabels {
			label, ok := e.edgeAttr(edge, labelAttributeKey)
			if !ok {
				label = edge.String()
			}
			out.line(tab2, "label", delim, e.quoted(label))
		}
		if exportWeights && g.Weighted() {
			out.line(tab2, "weight", delim, strconv.FormatFloat(edge.Weight, 'g', -1, 64))
		}
		out.line(tab1, "]")
	}
}

// quoted wraps s in double quotes, escaping it first when the escape
// parameter is set. With escaping off the raw text is emitted verbatim,
// malformed output and all, as documented on [ParameterEscapeStrings].
func (e *Exporter) quoted(s string) string {
	if e.parameters[ParameterEscapeStrings] {
		return `"` + escapeString(s) + `"`
	}
	return `"` + s + `"`
}
