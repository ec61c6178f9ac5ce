package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielgraf/graphport/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"gml"}},
		{"gml", []string{"gml"}},
		{"gml,dot,json", []string{"gml", "dot", "json"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"gml", "dot", "svg", "json"}); err != nil {
		t.Errorf("validateFormats(all valid) error: %v", err)
	}

	err := validateFormats([]string{"gml", "xml"})
	if err == nil {
		t.Fatal("validateFormats should reject unknown formats")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("validateFormats error code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "graph.json", "graph"},
		{"out.gml", "graph.json", "out"},
		{"out.svg", "graph.json", "out"},
		{"custom", "graph.json", "custom"},
		{"dir/out.txt", "graph.json", "dir/out.txt"},
	}

	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

const sampleGraph = `{
  "directed": true,
  "weighted": true,
  "nodes": [
    {"id": "a", "attrs": {"label": "start"}},
    {"id": "b"}
  ],
  "edges": [
    {"source": "a", "target": "b", "weight": 2.5}
  ]
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := os.WriteFile(path, []byte(sampleGraph), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunExport_GML(t *testing.T) {
	input := writeSample(t)
	output := filepath.Join(filepath.Dir(input), "out.gml")
	opts := &exportOpts{
		output:      output,
		formats:     []string{formatGML},
		edgeWeights: true,
	}

	if err := runExport(context.Background(), input, opts); err != nil {
		t.Fatalf("runExport() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "Creator") {
		t.Errorf("output missing GML header:\n%s", out)
	}
	if !strings.Contains(out, "directed 1") {
		t.Errorf("output missing directed flag:\n%s", out)
	}
	if !strings.Contains(out, "weight 2.5") {
		t.Errorf("output missing weight:\n%s", out)
	}
}

func TestRunExport_MultipleFormats(t *testing.T) {
	input := writeSample(t)
	opts := &exportOpts{
		output:       filepath.Join(filepath.Dir(input), "out"),
		formats:      []string{formatGML, formatDOT, formatJSON},
		vertexLabels: true,
	}

	if err := runExport(context.Background(), input, opts); err != nil {
		t.Fatalf("runExport() error: %v", err)
	}

	for _, ext := range []string{".gml", ".dot", ".json"} {
		if _, err := os.Stat(opts.output + ext); err != nil {
			t.Errorf("missing output %s: %v", opts.output+ext, err)
		}
	}
}

func TestRunExport_RefusesInputOverwrite(t *testing.T) {
	input := writeSample(t)
	opts := &exportOpts{formats: []string{formatGML, formatJSON}}

	err := runExport(context.Background(), input, opts)
	if err == nil {
		t.Fatal("runExport should refuse to overwrite its input file")
	}
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("error code = %v, want INVALID_PATH", errors.GetCode(err))
	}

	data, readErr := os.ReadFile(input)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(data) != sampleGraph {
		t.Error("input file was modified")
	}
}

func TestRunExport_MissingInput(t *testing.T) {
	opts := &exportOpts{formats: []string{formatGML}}
	err := runExport(context.Background(), filepath.Join(t.TempDir(), "nope.json"), opts)
	if err == nil {
		t.Fatal("runExport should fail on a missing input file")
	}
}

func TestOutputPath(t *testing.T) {
	opts := &exportOpts{formats: []string{formatGML}, output: "custom.gml"}
	if got := outputPath(opts, formatGML, "in.json"); got != "custom.gml" {
		t.Errorf("outputPath(single format) = %q, want custom.gml", got)
	}

	opts = &exportOpts{formats: []string{formatGML, formatDOT}}
	if got := outputPath(opts, formatDOT, "in.json"); got != "in.dot" {
		t.Errorf("outputPath(multi format) = %q, want in.dot", got)
	}
}
