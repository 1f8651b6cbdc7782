package widgets

import (
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cellchart/pkg/buffer"
)

// Point is one (x, y) sample.
type Point struct {
	X, Y float64
}

// Dataset is a series of samples drawn with one marker and color.
type Dataset struct {
	name   string
	data   []Point
	color  lipgloss.TerminalColor
	marker string
}

// NewDataset returns an empty dataset drawn with DefaultMarker.
func NewDataset() Dataset {
	return Dataset{color: buffer.Reset, marker: DefaultMarker}
}

// Name sets a label for the series. The chart does not draw it.
func (d Dataset) Name(name string) Dataset {
	d.name = name
	return d
}

// Data sets the samples. Samples outside the axis bounds are kept and
// skipped when drawing.
func (d Dataset) Data(points ...Point) Dataset {
	d.data = slices.Clone(points)
	return d
}

// Color sets the marker foreground.
func (d Dataset) Color(c lipgloss.TerminalColor) Dataset {
	d.color = c
	return d
}

// Marker sets the glyph painted for every sample.
// An empty marker restores DefaultMarker.
func (d Dataset) Marker(symbol string) Dataset {
	if symbol == "" {
		symbol = DefaultMarker
	}
	d.marker = symbol
	return d
}

// GetName returns the series label.
func (d Dataset) GetName() string { return d.name }

// GetMarker returns the glyph painted for every sample.
func (d Dataset) GetMarker() string { return d.marker }

// Len returns the number of samples.
func (d Dataset) Len() int { return len(d.data) }
