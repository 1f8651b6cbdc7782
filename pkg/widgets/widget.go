package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/cellchart/pkg/buffer"
)

// Widget is anything that can paint itself into a buffer covering area.
type Widget interface {
	Buffer(area buffer.Rect) *buffer.Buffer
}

var (
	_ Widget = Chart{}
	_ Widget = Block{}
)

// Glyphs used by the chart.
var (
	lineHorizontal = lipgloss.NormalBorder().Bottom
	lineVertical   = lipgloss.NormalBorder().Left
	lineBottomLeft = lipgloss.NormalBorder().BottomLeft
)

// DefaultMarker is the glyph painted for a data point.
const DefaultMarker = "●"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

func maxWidth(ss []string) int {
	w := 0
	for _, s := range ss {
		w = max(w, Width(s))
	}
	return w
}

func totalWidth(ss []string) int {
	w := 0
	for _, s := range ss {
		w += Width(s)
	}
	return w
}
