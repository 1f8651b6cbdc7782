package widgets

import (
	"math"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cellchart/pkg/buffer"
)

// Chart is a scatter chart with a linear x and y axis.
// The zero value is not usable; start from NewChart.
type Chart struct {
	block    *Block
	xAxis    Axis
	yAxis    Axis
	datasets []Dataset
	bg       lipgloss.TerminalColor
}

// NewChart returns a chart without frame, data or axis decorations.
func NewChart() Chart {
	return Chart{
		xAxis: NewAxis(),
		yAxis: NewAxis(),
		bg:    buffer.Reset,
	}
}

// Block frames the chart.
func (c Chart) Block(b Block) Chart {
	c.block = &b
	return c
}

// XAxis sets the horizontal axis.
func (c Chart) XAxis(a Axis) Chart {
	c.xAxis = a
	return c
}

// YAxis sets the vertical axis.
func (c Chart) YAxis(a Axis) Chart {
	c.yAxis = a
	return c
}

// Datasets sets the series, drawn in order.
func (c Chart) Datasets(ds ...Dataset) Chart {
	c.datasets = slices.Clone(ds)
	return c
}

// Background sets the color behind everything the chart draws.
func (c Chart) Background(bg lipgloss.TerminalColor) Chart {
	c.bg = bg
	return c
}

// GetDatasets returns a copy of the series.
func (c Chart) GetDatasets() []Dataset { return slices.Clone(c.datasets) }

// Stats summarizes one render.
type Stats struct {
	Layout  Layout
	Plotted int // samples painted
	Skipped int // samples out of bounds or unmappable
}

// Buffer renders the chart into a new buffer covering area.
func (c Chart) Buffer(area buffer.Rect) *buffer.Buffer {
	buf, _ := c.Draw(area)
	return buf
}

// Layout returns the regions the chart would use inside area.
func (c Chart) Layout(area buffer.Rect) Layout {
	_, inner := c.frame(area)
	return ComputeLayout(inner, area, c.xAxis, c.yAxis)
}

func (c Chart) frame(area buffer.Rect) (*buffer.Buffer, buffer.Rect) {
	if c.block == nil {
		return buffer.New(area), area
	}
	return c.block.Buffer(area), c.block.Inner(area)
}

// Draw renders the chart into a new buffer covering area and reports what
// was drawn.
func (c Chart) Draw(area buffer.Rect) (*buffer.Buffer, Stats) {
	buf, inner := c.frame(area)
	buf.Fill(local(inner, area), " ", buffer.Reset, c.bg)

	l := ComputeLayout(inner, area, c.xAxis, c.yAxis)
	stats := Stats{Layout: l}
	if l.Plot.Empty() {
		return buf, stats
	}

	p := plot{
		Rect:    l.Plot,
		marginX: l.Plot.X - area.X,
		marginY: l.Plot.Y - area.Y,
	}
	c.drawLegends(buf, l)
	c.drawLabelsX(buf, l, p)
	c.drawLabelsY(buf, l, p)
	c.drawAxes(buf, l, p)
	stats.Plotted, stats.Skipped = c.drawData(buf, p)
	return buf, stats
}

// local translates r into coordinates relative to area.
func local(r, area buffer.Rect) buffer.Rect {
	return buffer.NewRect(r.X-area.X, r.Y-area.Y, r.Width, r.Height)
}

// plot is the plot rectangle plus its offset inside the widget.
type plot struct {
	buffer.Rect
	marginX, marginY int
}

func (c Chart) drawLegends(buf *buffer.Buffer, l Layout) {
	if l.LegendX.Set {
		buf.SetString(l.LegendX.X, l.LegendX.Y, c.xAxis.title, c.xAxis.titleColor, c.bg)
	}
	if l.LegendY.Set {
		buf.SetString(l.LegendY.X, l.LegendY.Y, c.yAxis.title, c.yAxis.titleColor, c.bg)
	}
}

// drawLabelsX spreads the labels evenly under the plot, each ending at its
// tick column. Nothing is drawn when they cannot all fit.
func (c Chart) drawLabelsX(buf *buffer.Buffer, l Layout, p plot) {
	if !l.LabelX.Set {
		return
	}
	labels := c.xAxis.labels
	n := len(labels)
	if n < 2 || totalWidth(labels) >= p.Width {
		return
	}
	for i, label := range labels {
		x := p.marginX + i*(p.Width-1)/(n-1) - Width(label)
		buf.SetString(x, l.LabelX.Value, label, c.xAxis.labelsColor, c.bg)
	}
}

// drawLabelsY spreads the labels evenly down the plot, highest value on top.
func (c Chart) drawLabelsY(buf *buffer.Buffer, l Layout, p plot) {
	if !l.LabelY.Set {
		return
	}
	labels := c.yAxis.labels
	n := len(labels)
	if n < 2 {
		return
	}
	for i := range labels {
		label := labels[n-1-i]
		y := p.marginY + i*(p.Height-1)/(n-1)
		buf.SetString(l.LabelY.Value, y, label, c.yAxis.labelsColor, c.bg)
	}
}

func (c Chart) drawAxes(buf *buffer.Buffer, l Layout, p plot) {
	if l.AxisX.Set {
		for x := 0; x < p.Width; x++ {
			buf.UpdateCell(p.marginX+x, l.AxisX.Value, lineHorizontal, c.xAxis.color, c.bg)
		}
	}
	if l.AxisY.Set {
		for y := 0; y < p.Height; y++ {
			buf.UpdateCell(l.AxisY.Value, p.marginY+y, lineVertical, c.yAxis.color, c.bg)
		}
	}
	if l.AxisX.Set && l.AxisY.Set {
		buf.UpdateCell(l.AxisY.Value, l.AxisX.Value, lineBottomLeft, c.xAxis.color, c.bg)
	}
}

// drawData paints every in-bounds sample. Later samples overwrite earlier
// ones in the same cell.
func (c Chart) drawData(buf *buffer.Buffer, p plot) (plotted, skipped int) {
	dx, okX := c.xAxis.span()
	dy, okY := c.yAxis.span()
	for _, ds := range c.datasets {
		if !okX || !okY {
			skipped += len(ds.data)
			continue
		}
		for _, pt := range ds.data {
			cx, cy, ok := c.project(pt, p, dx, dy)
			if !ok {
				skipped++
				continue
			}
			buf.UpdateCell(p.marginX+cx, p.marginY+cy, ds.marker, ds.color, c.bg)
			plotted++
		}
	}
	return plotted, skipped
}

// project maps pt into the plot. Both axes are measured from their upper
// bound: xMax lands on the first column and yMax on the first row. Offsets
// are clamped so xMin and yMin land on the last column and row.
func (c Chart) project(pt Point, p plot, dx, dy float64) (x, y int, ok bool) {
	if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
		return 0, 0, false
	}
	if !c.xAxis.contains(pt.X) || !c.yAxis.contains(pt.Y) {
		return 0, 0, false
	}
	x = int((c.xAxis.bounds[1] - pt.X) * float64(p.Width) / dx)
	y = int((c.yAxis.bounds[1] - pt.Y) * float64(p.Height) / dy)
	return min(x, p.Width-1), min(y, p.Height-1), true
}
