package gml_test

import (
	"os"

	"github.com/danielgraf/graphport/pkg/gml"
	"github.com/danielgraf/graphport/pkg/graph"
)

func ExampleExporter() {
	// A small weighted, directed graph: a → b with weight 2.5
	g := graph.New(graph.Options{Directed: true, Weighted: true})
	_ = g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{"label": "start"}})
	_ = g.AddVertex(graph.Vertex{ID: "b"})
	_ = g.AddEdge(graph.Edge{Source: "a", Target: "b", Weight: 2.5})

	exp := gml.NewExporter()
	exp.SetParameter(gml.ParameterExportVertexLabels, true)
	exp.SetParameter(gml.ParameterExportEdgeWeights, true)
	_ = exp.Export(g, os.Stdout)
	// Output:
	// Creator "graphport GML exporter"
	// Version 1
	// graph
	// [
	// 	label ""
	// 	directed 1
	// 	node
	// 	[
	// 		id 0
	// 		label "start"
	// 	]
	// 	node
	// 	[
	// 		id 1
	// 		label "b"
	// 	]
	// 	edge
	// 	[
	// 		source 0
	// 		target 1
	// 		weight 2.5
	// 	]
	// ]
}

func ExampleExporter_customIDs() {
	g := graph.New(graph.Options{Directed: true})
	_ = g.AddVertex(graph.Vertex{ID: "a"})
	_ = g.AddVertex(graph.Vertex{ID: "b"})
	_ = g.AddEdge(graph.Edge{Source: "a", Target: "b"})

	exp := gml.NewExporterWithIDProvider(func(v *graph.Vertex) string {
		return "n_" + v.ID
	})
	_ = exp.Export(g, os.Stdout)
	// Output:
	// Creator "graphport GML exporter"
	// Version 1
	// graph
	// [
	// 	label ""
	// 	directed 1
	// 	node
	// 	[
	// 		id n_a
	// 	]
	// 	node
	// 	[
	// 		id n_b
	// 	]
	// 	edge
	// 	[
	// 		source n_a
	// 		target n_b
	// 	]
	// ]
}
