package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cellchart/pkg/buffer"
	"github.com/matzehuels/cellchart/pkg/errors"
)

// layoutCommand creates the layout command, which prints the regions a chart
// reserves at a given size without drawing it.
func (c *CLI) layoutCommand() *cobra.Command {
	opts := renderOpts{width: defaultWidth, height: defaultHeight}

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Print the computed chart layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", opts.width, "chart width in cells")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "chart height in cells")

	return cmd
}

func runLayout(ctx context.Context, w io.Writer, path string, opts renderOpts) error {
	if err := errors.ValidateSize(opts.width, opts.height); err != nil {
		return err
	}
	chart, err := loadChart(ctx, path)
	if err != nil {
		return err
	}

	area := buffer.NewRect(0, 0, opts.width, opts.height)
	l := chart.Layout(area)

	fmt.Fprintln(w, StyleTitle.Render(filepath.Base(path)))
	printKeyValue(w, "area", formatRect(area))
	printKeyValue(w, "label x", formatOffset(l.LabelX))
	printKeyValue(w, "label y", formatOffset(l.LabelY))
	printKeyValue(w, "axis x", formatOffset(l.AxisX))
	printKeyValue(w, "axis y", formatOffset(l.AxisY))
	printKeyValue(w, "legend x", formatPosition(l.LegendX))
	printKeyValue(w, "legend y", formatPosition(l.LegendY))

	if l.Plot.Empty() {
		printError(w, "no room for a plot at %dx%d", opts.width, opts.height)
		return nil
	}
	printSuccess(w, "plot %s", formatRect(l.Plot))
	return nil
}
