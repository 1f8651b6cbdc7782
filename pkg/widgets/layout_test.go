package widgets

import (
	"testing"

	"github.com/matzehuels/cellchart/pkg/buffer"
)

func labelled(x, y []string) (Axis, Axis) {
	return NewAxis().Bounds(0, 10).Labels(x...), NewAxis().Bounds(0, 10).Labels(y...)
}

func TestComputeLayout(t *testing.T) {
	full := buffer.NewRect(0, 0, 20, 10)

	tests := []struct {
		name         string
		inner, outer buffer.Rect
		x, y         Axis
		want         Layout
	}{
		{
			name:  "labels on both axes",
			inner: full,
			outer: full,
			x:     NewAxis().Bounds(0, 10).Labels("0", "10"),
			y:     NewAxis().Bounds(0, 10).Labels("0", "5"),
			want: Layout{
				LabelX: at(9),
				LabelY: at(0),
				AxisX:  at(8),
				AxisY:  at(1),
				Plot:   buffer.NewRect(2, 0, 18, 7),
			},
		},
		{
			name:  "titles become legends",
			inner: full,
			outer: full,
			x:     NewAxis().Title("time").Labels("0", "10"),
			y:     NewAxis().Title("val").Labels("0", "5"),
			want: Layout{
				LabelX:  at(9),
				LabelY:  at(0),
				AxisX:   at(8),
				AxisY:   at(1),
				LegendX: cellAt(16, 7),
				LegendY: cellAt(3, 0),
				Plot:    buffer.NewRect(2, 0, 18, 7),
			},
		},
		{
			name:  "no labels reserves nothing",
			inner: full,
			outer: full,
			x:     NewAxis(),
			y:     NewAxis(),
			want:  Layout{Plot: buffer.NewRect(0, 0, 20, 9)},
		},
		{
			name:  "framed inner area",
			inner: buffer.NewRect(1, 1, 18, 8),
			outer: full,
			x:     NewAxis().Labels("0", "10"),
			y:     NewAxis().Labels("0", "5"),
			want: Layout{
				LabelX: at(8),
				LabelY: at(1),
				AxisX:  at(7),
				AxisY:  at(2),
				Plot:   buffer.NewRect(3, 1, 15, 6),
			},
		},
		{
			name:  "all borders with one column labels",
			inner: buffer.NewRect(1, 1, 20, 10),
			outer: buffer.NewRect(0, 0, 22, 12),
			x:     NewAxis().Labels("0", "9"),
			y:     NewAxis().Labels("0", "9"),
			want: Layout{
				LabelX: at(10),
				LabelY: at(1),
				AxisX:  at(9),
				AxisY:  at(2),
				Plot:   buffer.NewRect(3, 1, 17, 8),
			},
		},
		{
			name:  "deep inset keeps the plot inside",
			inner: buffer.NewRect(2, 2, 20, 10),
			outer: buffer.NewRect(0, 0, 24, 14),
			x:     NewAxis(),
			y:     NewAxis(),
			want:  Layout{Plot: buffer.NewRect(2, 2, 18, 10)},
		},
		{
			name:  "outer not at origin",
			inner: buffer.NewRect(5, 3, 20, 10),
			outer: buffer.NewRect(5, 3, 20, 10),
			x:     NewAxis().Labels("a", "b"),
			y:     NewAxis().Labels("c", "d"),
			want: Layout{
				LabelX: at(9),
				LabelY: at(0),
				AxisX:  at(8),
				AxisY:  at(1),
				Plot:   buffer.NewRect(7, 3, 18, 7),
			},
		},
		{
			name:  "y labels too wide keep the axis line",
			inner: buffer.NewRect(0, 0, 9, 10),
			outer: buffer.NewRect(0, 0, 9, 10),
			x:     NewAxis(),
			y:     NewAxis().Labels("longlabel"),
			want: Layout{
				AxisY: at(0),
				Plot:  buffer.NewRect(1, 0, 8, 9),
			},
		},
		{
			name:  "too short for x labels",
			inner: buffer.NewRect(0, 0, 20, 2),
			outer: buffer.NewRect(0, 0, 20, 2),
			x:     NewAxis().Labels("0", "10"),
			y:     NewAxis(),
			want:  Layout{},
		},
		{
			name:  "zero area",
			inner: buffer.NewRect(0, 0, 0, 0),
			outer: buffer.NewRect(0, 0, 0, 0),
			x:     NewAxis().Title("x").Labels("0", "10"),
			y:     NewAxis().Title("y").Labels("0", "10"),
			want:  Layout{},
		},
		{
			name:  "legend wider than plot is dropped",
			inner: buffer.NewRect(0, 0, 6, 10),
			outer: buffer.NewRect(0, 0, 6, 10),
			x:     NewAxis().Title("a long title"),
			y:     NewAxis().Title("12345"),
			want:  Layout{Plot: buffer.NewRect(0, 0, 6, 9)},
		},
		{
			name:  "wide characters count double",
			inner: full,
			outer: full,
			x:     NewAxis(),
			y:     NewAxis().Labels("低", "高"),
			want: Layout{
				LabelY: at(0),
				AxisY:  at(2),
				Plot:   buffer.NewRect(3, 0, 17, 9),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLayout(tt.inner, tt.outer, tt.x, tt.y)
			if got != tt.want {
				t.Errorf("ComputeLayout() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeLayoutIdempotent(t *testing.T) {
	x, y := labelled([]string{"0", "5", "10"}, []string{"lo", "hi"})
	x, y = x.Title("x"), y.Title("y")
	area := buffer.NewRect(2, 1, 40, 12)

	first := ComputeLayout(area, area, x, y)
	second := ComputeLayout(area, area, x, y)
	if first != second {
		t.Errorf("ComputeLayout() not stable: %+v then %+v", first, second)
	}
}

func TestComputeLayoutPlotContained(t *testing.T) {
	axes := []struct {
		name string
		x, y Axis
	}{
		{"bare", NewAxis(), NewAxis()},
		{"labels", NewAxis().Labels("0", "100"), NewAxis().Labels("0", "1000")},
		{"titles", NewAxis().Title("x").Labels("0", "1"), NewAxis().Title("y").Labels("0", "1")},
	}

	for _, a := range axes {
		for w := 0; w <= 12; w++ {
			for h := 0; h <= 12; h++ {
				for inset := 0; inset <= 2; inset++ {
					outer := buffer.NewRect(3, 4, w+2*inset, h+2*inset)
					inner := buffer.NewRect(3+inset, 4+inset, w, h)
					l := ComputeLayout(inner, outer, a.x, a.y)
					if !inner.Contains(l.Plot) {
						t.Fatalf("%s: plot %+v escapes inner %+v", a.name, l.Plot, inner)
					}
					checkOutsidePlot(t, l, outer)
				}
			}
		}
	}
}

// checkOutsidePlot fails when a decoration row or column cuts through the
// plot interior.
func checkOutsidePlot(t *testing.T, l Layout, outer buffer.Rect) {
	t.Helper()
	if l.Plot.Empty() {
		return
	}
	plot := buffer.NewRect(l.Plot.X-outer.X, l.Plot.Y-outer.Y, l.Plot.Width, l.Plot.Height)
	for _, row := range []Offset{l.LabelX, l.AxisX} {
		if row.Set && row.Value >= plot.Top() && row.Value < plot.Bottom() {
			t.Fatalf("row %d overlaps plot %+v", row.Value, plot)
		}
	}
	for _, col := range []Offset{l.LabelY, l.AxisY} {
		if col.Set && col.Value >= plot.Left() && col.Value < plot.Right() {
			t.Fatalf("column %d overlaps plot %+v", col.Value, plot)
		}
	}
}

func TestComputeLayoutNoLabelsNoReservation(t *testing.T) {
	area := buffer.NewRect(0, 0, 30, 15)
	l := ComputeLayout(area, area, NewAxis().Bounds(0, 1), NewAxis().Bounds(0, 1))
	if l.LabelX.Set || l.AxisX.Set {
		t.Errorf("x axis rows reserved without labels: %+v", l)
	}
	if l.LabelY.Set || l.AxisY.Set {
		t.Errorf("y axis columns reserved without labels: %+v", l)
	}
	if l.Plot.Width != area.Width {
		t.Errorf("Plot.Width = %d, want %d", l.Plot.Width, area.Width)
	}
}

func TestReserveLabelY(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		width  int
		want   Offset
		wantX  int
	}{
		{"fits", []string{"1", "100"}, 10, at(0), 3},
		{"exactly full is rejected", []string{"1234567890"}, 10, Offset{}, 0},
		{"no labels", nil, 10, Offset{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := layoutInput{y: NewAxis().Labels(tt.labels...)}
			c := cursor{x: 0, y: 5, width: tt.width}
			var l Layout
			reserveLabelY(in, &c, &l)
			if l.LabelY != tt.want {
				t.Errorf("LabelY = %+v, want %+v", l.LabelY, tt.want)
			}
			if c.x != tt.wantX {
				t.Errorf("cursor.x = %d, want %d", c.x, tt.wantX)
			}
		})
	}
}

func TestReserveLabelXNeedsTwoRows(t *testing.T) {
	in := layoutInput{x: NewAxis().Labels("a", "b")}
	for _, tt := range []struct {
		y    int
		want bool
	}{{1, false}, {2, true}} {
		c := cursor{y: tt.y, width: 10}
		var l Layout
		reserveLabelX(in, &c, &l)
		if l.LabelX.Set != tt.want {
			t.Errorf("y=%d: LabelX.Set = %v, want %v", tt.y, l.LabelX.Set, tt.want)
		}
	}
}
