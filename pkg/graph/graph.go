package graph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidVertexID is returned by [Graph.AddVertex] when the vertex ID
	// is empty. All vertices must have non-empty identifiers.
	ErrInvalidVertexID = errors.New("vertex ID must not be empty")

	// ErrDuplicateVertexID is returned by [Graph.AddVertex] when a vertex with
	// the same ID already exists in the graph. Vertex IDs must be unique.
	ErrDuplicateVertexID = errors.New("duplicate vertex ID")

	// ErrUnknownSourceVertex is returned by [Graph.AddEdge] when the Source
	// vertex does not exist in the graph.
	ErrUnknownSourceVertex = errors.New("unknown source vertex")

	// ErrUnknownTargetVertex is returned by [Graph.AddEdge] when the Target
	// vertex does not exist in the graph.
	ErrUnknownTargetVertex = errors.New("unknown target vertex")
)

// Attributes stores arbitrary string key-value pairs attached to a vertex or
// an edge. The "label" key is the one consulted by the exporters; everything
// else travels along untouched. Attribute maps are never nil - they are
// automatically initialized to empty maps when needed.
type Attributes map[string]string

// Lookup returns the value for key and whether it was present.
func (a Attributes) Lookup(key string) (string, bool) {
	v, ok := a[key]
	return v, ok
}

// Vertex represents a node in the graph. The ID doubles as the default
// display string when no "label" attribute is present.
//
// The zero value is not usable - ID must be set before adding to a Graph.
type Vertex struct {
	ID    string     // Unique identifier (also used as display string)
	Attrs Attributes // Arbitrary key-value metadata (never nil after AddVertex)
}

// String returns the vertex's default display string, its ID.
func (v *Vertex) String() string { return v.ID }

// Edge represents a connection between two vertices. On a directed graph the
// edge points from Source to Target; on an undirected graph the pair is an
// unordered endpoint set stored in insertion order.
type Edge struct {
	Source string     // Source vertex ID
	Target string     // Target vertex ID
	Weight float64    // Edge weight (meaningful only on weighted graphs)
	Attrs  Attributes // Arbitrary key-value metadata (never nil after AddEdge)
}

// String returns the edge's default display string, "source->target".
func (e Edge) String() string { return e.Source + "->" + e.Target }

// Options selects the graph flavor at construction time. Both flags are
// fixed for the lifetime of the graph.
type Options struct {
	// Directed makes edges point from Source to Target.
	Directed bool
	// Weighted makes edge weights meaningful. Exporters only emit weights
	// for weighted graphs; on unweighted graphs the Weight field is carried
	// but ignored.
	Weighted bool
}

// Graph is a vertex/edge container with deterministic iteration order.
// Vertices and edges are returned in insertion order, which downstream
// serializers rely on for reproducible output.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	directed bool
	weighted bool
	vertices []*Vertex          // insertion order
	index    map[string]*Vertex // ID -> vertex
	edges    []Edge             // insertion order
}

// New creates an empty graph with the given options.
func New(opts Options) *Graph {
	return &Graph{
		directed: opts.Directed,
		weighted: opts.Weighted,
		index:    make(map[string]*Vertex),
	}
}

// Directed reports whether edges are directed.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether edge weights are meaningful.
func (g *Graph) Weighted() bool { return g.weighted }

// AddVertex adds a vertex to the graph. Returns ErrInvalidVertexID if the
// vertex ID is empty, or ErrDuplicateVertexID if a vertex with the same ID
// already exists. The vertex's Attrs field is automatically initialized to
// an empty map if nil.
func (g *Graph) AddVertex(v Vertex) error {
	if v.ID == "" {
		return ErrInvalidVertexID
	}
	if _, exists := g.index[v.ID]; exists {
		return ErrDuplicateVertexID
	}
	if v.Attrs == nil {
		v.Attrs = Attributes{}
	}
	vertex := &v
	g.index[vertex.ID] = vertex
	g.vertices = append(g.vertices, vertex)
	return nil
}

// AddEdge adds an edge between two existing vertices. Returns
// ErrUnknownSourceVertex or ErrUnknownTargetVertex when an endpoint is
// missing. The edge's Attrs field is automatically initialized to an empty
// map if nil.
//
// Self-loops and parallel edges are allowed; the container does not police
// the structures a particular output format may or may not accept.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.index[e.Source]; !ok {
		return ErrUnknownSourceVertex
	}
	if _, ok := g.index[e.Target]; !ok {
		return ErrUnknownTargetVertex
	}
	if e.Attrs == nil {
		e.Attrs = Attributes{}
	}
	g.edges = append(g.edges, e)
	return nil
}

// Vertex returns the vertex with the given ID and true, or nil and false if
// not found. The returned pointer refers to the actual vertex in the graph,
// so attribute modifications affect the graph.
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	v, ok := g.index[id]
	return v, ok
}

// Vertices returns all vertices in insertion order. The returned slice
// contains pointers to the actual vertex structs, so modifications affect
// the graph; the slice itself is a copy.
func (g *Graph) Vertices() []*Vertex { return slices.Clone(g.vertices) }

// Edges returns a copy of all edges in insertion order. Modifications to the
// returned slice or its edge structs do not affect the graph.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// VertexIDs returns the IDs of all vertices in insertion order.
func (g *Graph) VertexIDs() []string {
	ids := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		ids[i] = v.ID
	}
	return ids
}

// Clone returns a deep copy of the graph. Vertices, edges, and their
// attribute maps are all copied; the clone can be modified freely without
// affecting the original.
func (g *Graph) Clone() *Graph {
	c := New(Options{Directed: g.directed, Weighted: g.weighted})
	for _, v := range g.vertices {
		_ = c.AddVertex(Vertex{ID: v.ID, Attrs: maps.Clone(v.Attrs)})
	}
	for _, e := range g.edges {
		_ = c.AddEdge(Edge{Source: e.Source, Target: e.Target, Weight: e.Weight, Attrs: maps.Clone(e.Attrs)})
	}
	return c
}
