package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/danielgraf/graphport/pkg/gml"
	graphio "github.com/danielgraf/graphport/pkg/io"
)

// newViewCmd creates the view command, a terminal preview of the GML
// document an export would produce. The same label/weight/escape flags as
// export apply, so the preview matches the file byte for byte.
func newViewCmd() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Preview the GML export in a scrollable pager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.vertexLabels, "vertex-labels", false, "emit vertex labels")
	cmd.Flags().BoolVar(&opts.edgeLabels, "edge-labels", false, "emit edge labels")
	cmd.Flags().BoolVar(&opts.edgeWeights, "edge-weights", false, "emit edge weights (weighted graphs only)")
	cmd.Flags().BoolVar(&opts.escapeStrings, "escape", false, "escape label text as string literals")

	return cmd
}

func runView(ctx context.Context, input string, opts *exportOpts) error {
	g, err := graphio.ImportJSON(input)
	if err != nil {
		return err
	}

	exp := gml.NewExporter()
	exp.SetParameter(gml.ParameterExportVertexLabels, opts.vertexLabels)
	exp.SetParameter(gml.ParameterExportEdgeLabels, opts.edgeLabels)
	exp.SetParameter(gml.ParameterExportEdgeWeights, opts.edgeWeights)
	exp.SetParameter(gml.ParameterEscapeStrings, opts.escapeStrings)

	var buf bytes.Buffer
	if err := exp.Export(g, &buf); err != nil {
		return err
	}

	model := newPagerModel(input, buf.String())
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

// pagerModel is the bubbletea model for the document preview.
type pagerModel struct {
	Title  string
	Lines  []string
	Offset int
	Height int
}

// newPagerModel creates a pager over the document text.
func newPagerModel(title, text string) pagerModel {
	return pagerModel{
		Title:  title,
		Lines:  strings.Split(strings.TrimRight(text, "\n"), "\n"),
		Height: 20,
	}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Offset > 0 {
				m.Offset--
			}
		case "down", "j":
			if m.Offset < m.maxOffset() {
				m.Offset++
			}
		case "pgup", "b":
			m.Offset -= m.Height
			if m.Offset < 0 {
				m.Offset = 0
			}
		case "pgdown", "f", " ":
			m.Offset += m.Height
			if m.Offset > m.maxOffset() {
				m.Offset = m.maxOffset()
			}
		case "home", "g":
			m.Offset = 0
		case "end", "G":
			m.Offset = m.maxOffset()
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 3
		if m.Height < 5 {
			m.Height = 5
		}
		if m.Offset > m.maxOffset() {
			m.Offset = m.maxOffset()
		}
	}
	return m, nil
}

func (m pagerModel) maxOffset() int {
	max := len(m.Lines) - m.Height
	if max < 0 {
		return 0
	}
	return max
}

func (m pagerModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.Title) + "\n")

	end := m.Offset + m.Height
	if end > len(m.Lines) {
		end = len(m.Lines)
	}
	for _, line := range m.Lines[m.Offset:end] {
		b.WriteString(line + "\n")
	}

	footer := fmt.Sprintf("%d-%d/%d  ↑/↓ scroll · q quit", m.Offset+1, end, len(m.Lines))
	b.WriteString(StyleDim.Render(footer))
	return b.String()
}
