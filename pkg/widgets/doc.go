// Package widgets draws terminal widgets into cell buffers.
//
// The main widget is [Chart], a scatter chart with two linear axes. Rendering
// happens in two passes: [ComputeLayout] partitions the widget area into
// label, axis, legend and plot regions, then [Chart.Buffer] paints the
// decorations and maps every in-bounds sample from data space into the plot
// rectangle.
//
// # Configuration
//
// [Axis], [Dataset], [Block] and [Chart] are values. Their setters use value
// receivers and return a modified copy, and slices handed to a setter are
// copied, so a configured chart cannot change underneath a render:
//
//	chart := widgets.NewChart().
//	    Block(widgets.NewBlock().Title("latency").Borders(widgets.BorderAll)).
//	    XAxis(widgets.NewAxis().Title("t").Bounds(0, 60).Labels("0", "30", "60")).
//	    YAxis(widgets.NewAxis().Bounds(0, 100).Labels("0", "50", "100")).
//	    Datasets(widgets.NewDataset().Data(points...).Color(lipgloss.Color("36")))
//	buf := chart.Buffer(buffer.NewRect(0, 0, 80, 20))
//
// # Degenerate input
//
// Rendering never fails. Areas too small for a plot produce a buffer holding
// only the frame and background; an axis whose bounds have zero width
// drops every sample; a label list with a single entry is not drawn.
package widgets
