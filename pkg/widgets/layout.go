package widgets

import "github.com/matzehuels/cellchart/pkg/buffer"

// Offset is an optional row or column, local to the widget area.
type Offset struct {
	Value int
	Set   bool
}

// Position is an optional cell, local to the widget area.
type Position struct {
	X, Y int
	Set  bool
}

func at(v int) Offset          { return Offset{Value: v, Set: true} }
func cellAt(x, y int) Position { return Position{X: x, Y: y, Set: true} }

// Layout is where each part of a chart goes.
// Offsets and positions are relative to the widget area's origin; Plot is in
// absolute coordinates like the areas handed to ComputeLayout.
type Layout struct {
	LabelX  Offset   // row of the x tick labels
	LabelY  Offset   // first column of the y tick labels
	AxisX   Offset   // row of the x axis line
	AxisY   Offset   // column of the y axis line
	LegendX Position // start of the x axis title
	LegendY Position // start of the y axis title
	Plot    buffer.Rect
}

// cursor tracks the space left while regions are reserved.
// x grows from the left edge, y shrinks from the bottom row. Both are local
// to the outer area, while the width gates compare against the inner width.
type cursor struct {
	x, y  int
	top   int // first row of the inner area
	width int // width of the inner area
}

type layoutInput struct {
	inner, outer buffer.Rect
	x, y         Axis
}

// reservation claims space for one region, or does nothing when the region
// does not fit. Reservations never give space back.
type reservation func(in layoutInput, c *cursor, l *Layout)

// reservations run in this order. Labels come before axis lines so that the
// lines hug the plot, and legends come last because they depend on Plot.
var reservations = []reservation{
	reserveLabelX,
	reserveLabelY,
	reserveAxisX,
	reserveAxisY,
	reservePlot,
	reserveLegendX,
	reserveLegendY,
}

// ComputeLayout partitions inner into chart regions. outer is the full
// widget area, of which inner is the part left inside the frame.
func ComputeLayout(inner, outer buffer.Rect, x, y Axis) Layout {
	in := layoutInput{inner: inner, outer: outer, x: x, y: y}
	offX, offY := inner.X-outer.X, inner.Y-outer.Y
	c := cursor{
		x:     offX,
		y:     offY + inner.Height - 1,
		top:   offY,
		width: inner.Width,
	}
	var l Layout
	for _, reserve := range reservations {
		reserve(in, &c, &l)
	}
	return l
}

func reserveLabelX(in layoutInput, c *cursor, l *Layout) {
	if in.x.hasLabels() && c.y > 1 {
		l.LabelX = at(c.y)
		c.y--
	}
}

func reserveLabelY(in layoutInput, c *cursor, l *Layout) {
	if !in.y.hasLabels() {
		return
	}
	w := maxWidth(in.y.labels)
	if c.x+w < c.width {
		l.LabelY = at(c.x)
		c.x += w
	}
}

func reserveAxisX(in layoutInput, c *cursor, l *Layout) {
	if in.x.hasLabels() && c.y > 1 {
		l.AxisX = at(c.y)
		c.y--
	}
}

func reserveAxisY(in layoutInput, c *cursor, l *Layout) {
	if in.y.hasLabels() && c.x+1 < c.width {
		l.AxisY = at(c.x)
		c.x++
	}
}

// reservePlot claims what is left. The plot keeps y rows unless the inner
// area starts two or more rows below the outer one; then it is cut so it
// stays above the reserved rows and inside the inner area.
func reservePlot(in layoutInput, c *cursor, l *Layout) {
	if c.x >= c.width || c.y <= 1 {
		return
	}
	h := min(c.y, c.y+1-c.top)
	if h > 0 {
		l.Plot = buffer.NewRect(in.outer.X+c.x, in.inner.Y, c.width-c.x, h)
	}
}

// reserveLegendX right-aligns the x title on the row left above the x axis.
func reserveLegendX(in layoutInput, c *cursor, l *Layout) {
	if !in.x.hasTitle() {
		return
	}
	w := Width(in.x.title)
	if w < l.Plot.Width && l.Plot.Height > 2 {
		l.LegendX = cellAt(c.x+l.Plot.Width-w, c.y)
	}
}

func reserveLegendY(in layoutInput, c *cursor, l *Layout) {
	if !in.y.hasTitle() {
		return
	}
	w := Width(in.y.title)
	if w+1 < l.Plot.Width && l.Plot.Height > 2 {
		l.LegendY = cellAt(c.x+1, c.top)
	}
}
