package widgets

import (
	"math"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cellchart/pkg/buffer"
)

// Axis describes one chart axis: the data range it spans and how it is
// decorated.
type Axis struct {
	title       string
	titleColor  lipgloss.TerminalColor
	bounds      [2]float64
	labels      []string
	labelsColor lipgloss.TerminalColor
	color       lipgloss.TerminalColor
}

// NewAxis returns an axis with bounds [0, 0], no title, no labels and reset
// colors.
func NewAxis() Axis {
	return Axis{
		titleColor:  buffer.Reset,
		labelsColor: buffer.Reset,
		color:       buffer.Reset,
	}
}

// Title sets the legend text drawn next to the plot.
func (a Axis) Title(title string) Axis {
	a.title = title
	return a
}

// TitleColor sets the legend foreground.
func (a Axis) TitleColor(c lipgloss.TerminalColor) Axis {
	a.titleColor = c
	return a
}

// Bounds sets the inclusive data range mapped onto the plot.
func (a Axis) Bounds(lo, hi float64) Axis {
	a.bounds = [2]float64{lo, hi}
	return a
}

// Labels sets the tick labels in drawing order: left to right on the x
// axis, bottom to top on the y axis.
func (a Axis) Labels(labels ...string) Axis {
	a.labels = slices.Clone(labels)
	return a
}

// LabelsColor sets the tick label foreground.
func (a Axis) LabelsColor(c lipgloss.TerminalColor) Axis {
	a.labelsColor = c
	return a
}

// Color sets the axis line foreground.
func (a Axis) Color(c lipgloss.TerminalColor) Axis {
	a.color = c
	return a
}

// GetTitle returns the legend text.
func (a Axis) GetTitle() string { return a.title }

// GetBounds returns the data range.
func (a Axis) GetBounds() (lo, hi float64) { return a.bounds[0], a.bounds[1] }

// GetLabels returns a copy of the tick labels.
func (a Axis) GetLabels() []string { return slices.Clone(a.labels) }

func (a Axis) hasLabels() bool { return len(a.labels) > 0 }

func (a Axis) hasTitle() bool { return a.title != "" }

// span returns max-min and whether samples can be mapped onto the axis.
func (a Axis) span() (float64, bool) {
	d := a.bounds[1] - a.bounds[0]
	return d, d > 0 && !math.IsInf(d, 0)
}

func (a Axis) contains(v float64) bool {
	return v >= a.bounds[0] && v <= a.bounds[1]
}
