package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cellchart/pkg/buffer"
	"github.com/matzehuels/cellchart/pkg/config"
	"github.com/matzehuels/cellchart/pkg/errors"
	"github.com/matzehuels/cellchart/pkg/observability"
	"github.com/matzehuels/cellchart/pkg/widgets"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	width  int  // chart width in cells
	height int  // chart height in cells
	plain  bool // print symbols only, without color sequences
}

// renderCommand creates the render command, which draws a chart document
// once and prints it to stdout.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{width: defaultWidth, height: defaultHeight}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a chart document to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", opts.width, "chart width in cells")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "chart height in cells")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print without colors")

	return cmd
}

func runRender(ctx context.Context, w io.Writer, path string, opts renderOpts) error {
	if err := errors.ValidateSize(opts.width, opts.height); err != nil {
		return err
	}
	chart, err := loadChart(ctx, path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	buf, _ := drawChart(ctx, chart, buffer.NewRect(0, 0, opts.width, opts.height))
	if opts.plain {
		fmt.Fprintln(w, buf.String())
		return nil
	}
	fmt.Fprintln(w, buf.Render(lipgloss.NewRenderer(w)))
	return nil
}

// loadChart reads the document at path and builds its chart.
func loadChart(ctx context.Context, path string) (widgets.Chart, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, err := config.Load(path)
	if err != nil {
		return widgets.Chart{}, err
	}
	chart, err := doc.Chart()
	if err != nil {
		return widgets.Chart{}, err
	}

	for i, ds := range chart.GetDatasets() {
		name := ds.GetName()
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		logger.Debug("dataset", "name", name, "samples", ds.Len(), "marker", ds.GetMarker())
	}
	prog.done("Loaded " + filepath.Base(path))
	return chart, nil
}

// drawChart renders chart into area and reports the render to the
// registered hooks.
func drawChart(ctx context.Context, chart widgets.Chart, area buffer.Rect) (*buffer.Buffer, widgets.Stats) {
	start := time.Now()
	buf, stats := chart.Draw(area)

	hooks := observability.Render()
	hooks.OnLayout(ctx, area, stats.Layout.Plot)
	hooks.OnRender(ctx, area, stats.Plotted, stats.Skipped, time.Since(start))
	return buf, stats
}
