package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cellchart/pkg/buffer"
	"github.com/matzehuels/cellchart/pkg/errors"
	"github.com/matzehuels/cellchart/pkg/widgets"
)

// viewOpts holds the command-line flags for the view command.
// A zero width or height follows the terminal size.
type viewOpts struct {
	width  int
	height int
}

// viewCommand creates the view command, which shows a chart full-screen and
// redraws it whenever the terminal is resized.
func (c *CLI) viewCommand() *cobra.Command {
	var opts viewOpts

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Show a chart document full-screen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "chart width in cells (default: terminal width)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "chart height in cells (default: terminal height)")

	return cmd
}

func runView(ctx context.Context, w io.Writer, path string, opts viewOpts) error {
	if opts.width != 0 || opts.height != 0 {
		if err := errors.ValidateSize(opts.width, opts.height); err != nil {
			return err
		}
	}
	chart, err := loadChart(ctx, path)
	if err != nil {
		return err
	}

	m := newChartModel(ctx, chart, opts.width, opts.height)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(w), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// =============================================================================
// chartModel - Full-screen chart viewer
// =============================================================================

// chartModel is the bubbletea model for the view command. The last terminal
// row holds a status line; the chart gets the rest.
type chartModel struct {
	ctx   context.Context
	chart widgets.Chart

	width, height int  // current chart size
	fixed         bool // size came from flags; resizes are ignored
	ready         bool // a size is known

	view  string
	stats widgets.Stats
}

func newChartModel(ctx context.Context, chart widgets.Chart, width, height int) chartModel {
	m := chartModel{ctx: ctx, chart: chart}
	if width > 0 && height > 0 {
		m.fixed = true
		m = m.resize(width, height+1)
	}
	return m
}

func (m chartModel) Init() tea.Cmd {
	return nil
}

func (m chartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if !m.fixed {
			m = m.resize(msg.Width, msg.Height)
		}
	}
	return m, nil
}

// resize redraws the chart for a terminal of the given size.
func (m chartModel) resize(width, height int) chartModel {
	m.width, m.height = max(width, 0), max(height-1, 0)
	m.ready = true
	buf, stats := drawChart(m.ctx, m.chart, buffer.NewRect(0, 0, m.width, m.height))
	m.view, m.stats = buf.Render(nil), stats
	return m
}

func (m chartModel) View() string {
	if !m.ready {
		return StyleDim.Render("waiting for terminal size")
	}
	status := fmt.Sprintf("%dx%d · %d plotted · %d skipped · q quit",
		m.width, m.height, m.stats.Plotted, m.stats.Skipped)
	return m.view + "\n" + StyleDim.Render(status)
}
