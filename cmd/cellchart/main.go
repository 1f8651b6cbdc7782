// Command cellchart draws scatter charts described by TOML documents on the
// terminal.
//
//	cellchart render examples/charts/sine.toml --width 100 --height 30
//	cellchart view examples/charts/sine.toml
//	cellchart layout examples/charts/sine.toml -v
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cellchart/internal/cli"
)

func main() {
	// Ctrl-C interrupts a render or closes the full-screen viewer.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var verbose bool

	// Logs go to stderr so rendered charts on stdout can be piped.
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// --verbose also shows the per-dataset summary and the layout/render
	// events reported by the render hooks. The level has to be set before
	// the root pre-run attaches the logger to the command context.
	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := cli.LogInfo
		if verbose {
			level = cli.LogDebug
		}
		c.SetLogLevel(level)

		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
