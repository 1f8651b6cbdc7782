// Package pkg provides the libraries behind cellchart, a scatter chart widget
// for character-grid terminals.
//
// # Overview
//
// A chart is drawn into a rectangular grid of cells. Each cell holds one
// display column of text plus a foreground and background color. The pkg
// directory is organized into these areas:
//
//  1. [buffer] - Cell grid, rectangles, plain and styled output
//  2. [widgets] - Block frame, axes, datasets, layout engine and chart
//  3. [config] - TOML chart documents and color parsing
//  4. [errors] - Coded errors and input validation
//  5. [observability] - Render hooks
//
// # Architecture
//
// The data flow through cellchart:
//
//	chart.toml
//	     ↓
//	[config] package (decode + validate → widgets.Chart)
//	     ↓
//	[widgets] package (block frame → layout → labels, axes, markers)
//	     ↓
//	[buffer] package (cells → plain text or lipgloss-styled lines)
//
// # Quick Start
//
//	chart := widgets.NewChart().
//	    XAxis(widgets.NewAxis().Bounds(0, 10).Labels("0", "10")).
//	    YAxis(widgets.NewAxis().Bounds(0, 1).Labels("0", "1")).
//	    Datasets(widgets.NewDataset().Data(widgets.Point{X: 5, Y: 0.5}))
//
//	buf, stats := chart.Draw(buffer.NewRect(0, 0, 40, 12))
//	fmt.Println(buf.String())
//	fmt.Println(stats.Plotted, "plotted")
//
// [buffer]: https://pkg.go.dev/github.com/matzehuels/cellchart/pkg/buffer
// [widgets]: https://pkg.go.dev/github.com/matzehuels/cellchart/pkg/widgets
// [config]: https://pkg.go.dev/github.com/matzehuels/cellchart/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/cellchart/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/cellchart/pkg/observability
package pkg
