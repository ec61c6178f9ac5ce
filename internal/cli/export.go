package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielgraf/graphport/pkg/cache"
	"github.com/danielgraf/graphport/pkg/errors"
	"github.com/danielgraf/graphport/pkg/gml"
	"github.com/danielgraf/graphport/pkg/graph"
	graphio "github.com/danielgraf/graphport/pkg/io"
	"github.com/danielgraf/graphport/pkg/render/nodelink"
)

const (
	formatGML  = "gml"
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatJSON = "json"

	// svgCacheTTL bounds how long rendered SVGs are reused. Graphviz output
	// can change between versions, so entries do not live forever.
	svgCacheTTL = 30 * 24 * time.Hour
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output        string   // output file path (or base path for multiple formats)
	formats       []string // output formats: gml, dot, svg, json
	vertexLabels  bool     // emit vertex labels
	edgeLabels    bool     // emit edge labels
	edgeWeights   bool     // emit edge weights (weighted graphs only)
	escapeStrings bool     // escape label text as string literals
	noCache       bool     // disable the SVG render cache
}

// newExportCmd creates the export command for converting JSON graphs into
// interchange formats.
//
// Defaults come from the config file (see loadConfig); explicit flags win.
// Without a config file the command exports plain GML with every optional
// field disabled, mirroring the exporter's own defaults.
func newExportCmd() *cobra.Command {
	var formatsStr, configPath string
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a JSON graph to GML, DOT, SVG, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configOrDefault(configPath), configPath != "")
			if err != nil {
				return err
			}
			applyConfig(cmd, &opts, &formatsStr, cfg)

			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runExport(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): gml (default), dot, svg, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.vertexLabels, "vertex-labels", false, "emit vertex labels")
	cmd.Flags().BoolVar(&opts.edgeLabels, "edge-labels", false, "emit edge labels")
	cmd.Flags().BoolVar(&opts.edgeWeights, "edge-weights", false, "emit edge weights (weighted graphs only)")
	cmd.Flags().BoolVar(&opts.escapeStrings, "escape", false, "escape label text as string literals")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the SVG render cache")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/graphport/config.toml)")

	return cmd
}

// configOrDefault resolves the config path: an explicit --config wins,
// otherwise the conventional location is probed.
func configOrDefault(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return defaultConfigPath()
}

// applyConfig fills in defaults from the config file for every flag the user
// did not set explicitly.
func applyConfig(cmd *cobra.Command, opts *exportOpts, formatsStr *string, cfg Config) {
	if !cmd.Flags().Changed("format") && len(cfg.Export.Formats) > 0 {
		*formatsStr = strings.Join(cfg.Export.Formats, ",")
	}
	if !cmd.Flags().Changed("vertex-labels") {
		opts.vertexLabels = cfg.Export.VertexLabels
	}
	if !cmd.Flags().Changed("edge-labels") {
		opts.edgeLabels = cfg.Export.EdgeLabels
	}
	if !cmd.Flags().Changed("edge-weights") {
		opts.edgeWeights = cfg.Export.EdgeWeights
	}
	if !cmd.Flags().Changed("escape") {
		opts.escapeStrings = cfg.Export.EscapeStrings
	}
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["gml"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatGML}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatGML: true, formatDOT: true, formatSVG: true, formatJSON: true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'gml', 'dot', 'svg', or 'json')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.gml, .svg, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runExport loads the graph from input and writes it in every requested format.
func runExport(ctx context.Context, input string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Exporting %s", input)

	g, err := graphio.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d vertices, %d edges", g.VertexCount(), g.EdgeCount())

	exp := gml.NewExporter()
	exp.SetParameter(gml.ParameterExportVertexLabels, opts.vertexLabels)
	exp.SetParameter(gml.ParameterExportEdgeLabels, opts.edgeLabels)
	exp.SetParameter(gml.ParameterExportEdgeWeights, opts.edgeWeights)
	exp.SetParameter(gml.ParameterEscapeStrings, opts.escapeStrings)

	if opts.edgeWeights && !g.Weighted() {
		printWarning("graph is unweighted; --edge-weights has no effect")
	}

	for _, format := range opts.formats {
		path := outputPath(opts, format, input)
		if filepath.Clean(path) == filepath.Clean(input) {
			return errors.New(errors.ErrCodeInvalidPath,
				"%s output would overwrite the input file %s; use --output", format, input)
		}
		track := newProgress(logger)

		if err := writeFormat(ctx, g, exp, format, path, opts); err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
		track.done(fmt.Sprintf("Exported %s", path))
		printFile(path)
	}
	return nil
}

// outputPath picks the destination file for one format. A single requested
// format honors --output verbatim; multiple formats share a base path.
func outputPath(opts *exportOpts, format, input string) string {
	if len(opts.formats) == 1 && opts.output != "" {
		return opts.output
	}
	return basePath(opts.output, input) + "." + format
}

// writeFormat serializes g into one format at path.
func writeFormat(ctx context.Context, g *graph.Graph, exp *gml.Exporter, format, path string, opts *exportOpts) error {
	switch format {
	case formatGML:
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return exp.Export(g, f)
	case formatJSON:
		return graphio.ExportJSON(g, path)
	case formatDOT:
		dot := nodelink.ToDOT(g, dotOptions(opts))
		return os.WriteFile(path, []byte(dot), 0644)
	case formatSVG:
		svg, err := renderSVG(ctx, g, opts)
		if err != nil {
			return err
		}
		return os.WriteFile(path, svg, 0644)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

// dotOptions maps the export flags onto DOT rendering options.
func dotOptions(opts *exportOpts) nodelink.Options {
	return nodelink.Options{
		Labels:  opts.vertexLabels || opts.edgeLabels,
		Weights: opts.edgeWeights,
	}
}

// renderSVG produces the SVG for g, consulting the render cache keyed by the
// DOT text hash. Identical graphs with identical options rerender for free.
func renderSVG(ctx context.Context, g *graph.Graph, opts *exportOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)
	dot := nodelink.ToDOT(g, dotOptions(opts))
	key := cache.Hash([]byte(dot))

	c := renderCache(opts)
	defer c.Close()

	if data, hit, err := c.Get(ctx, key); err == nil && hit {
		logger.Debugf("SVG cache hit (%d bytes)", len(data))
		return data, nil
	}

	sp := newSpinner(ctx, "Rendering SVG")
	sp.Start()
	svg, err := nodelink.RenderSVG(dot)
	if err != nil {
		sp.StopWithError("Render failed")
		return nil, err
	}
	sp.Stop()

	if err := c.Set(ctx, key, svg, svgCacheTTL); err != nil {
		logger.Debugf("SVG cache write failed: %v", err)
	}
	return svg, nil
}

// renderCache selects the SVG cache: a file cache under the user cache
// directory, or a null cache when disabled or when no cache dir exists.
func renderCache(opts *exportOpts) cache.Cache {
	if opts.noCache {
		return cache.NewNullCache()
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(filepath.Join(dir, "graphport"))
	if err != nil {
		return cache.NewNullCache()
	}
	return cache.NewScoped(fc, "svg:")
}
