package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cellchart/pkg/buffer"
)

// Borders is a set of block sides.
type Borders uint8

// Block sides.
const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BorderNone Borders = 0
	BorderAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has reports whether b includes every side in side.
func (b Borders) Has(side Borders) bool { return b&side == side }

// Block is a frame drawn around another widget, with an optional title on
// its top edge.
type Block struct {
	title       string
	titleColor  lipgloss.TerminalColor
	borders     Borders
	borderColor lipgloss.TerminalColor
	border      lipgloss.Border
	bg          lipgloss.TerminalColor
}

// NewBlock returns a block with no borders and reset colors.
func NewBlock() Block {
	return Block{
		titleColor:  buffer.Reset,
		borderColor: buffer.Reset,
		border:      lipgloss.NormalBorder(),
		bg:          buffer.Reset,
	}
}

// Title sets the text drawn on the top edge.
func (b Block) Title(title string) Block {
	b.title = title
	return b
}

// TitleColor sets the title foreground.
func (b Block) TitleColor(c lipgloss.TerminalColor) Block {
	b.titleColor = c
	return b
}

// Borders sets which sides are drawn.
func (b Block) Borders(sides Borders) Block {
	b.borders = sides
	return b
}

// BorderColor sets the frame foreground.
func (b Block) BorderColor(c lipgloss.TerminalColor) Block {
	b.borderColor = c
	return b
}

// BorderStyle sets the glyphs used for the frame.
func (b Block) BorderStyle(border lipgloss.Border) Block {
	b.border = border
	return b
}

// Background sets the color behind the frame.
func (b Block) Background(c lipgloss.TerminalColor) Block {
	b.bg = c
	return b
}

// Inner returns the part of area left once the borders are drawn.
func (b Block) Inner(area buffer.Rect) buffer.Rect {
	x, y, w, h := area.X, area.Y, area.Width, area.Height
	if b.borders.Has(BorderLeft) {
		x++
		w--
	}
	if b.borders.Has(BorderRight) {
		w--
	}
	if b.borders.Has(BorderTop) {
		y++
		h--
	}
	if b.borders.Has(BorderBottom) {
		h--
	}
	if w <= 0 || h <= 0 {
		return buffer.NewRect(x, y, 0, 0)
	}
	return buffer.NewRect(x, y, w, h)
}

// Buffer paints the frame and title into a new buffer covering area.
func (b Block) Buffer(area buffer.Rect) *buffer.Buffer {
	buf := buffer.New(area)
	w, h := area.Width, area.Height
	if w <= 0 || h <= 0 {
		return buf
	}
	buf.Fill(buffer.NewRect(0, 0, w, h), " ", buffer.Reset, b.bg)

	fg, bg := b.borderColor, b.bg
	if b.borders.Has(BorderTop) {
		for x := 0; x < w; x++ {
			buf.UpdateCell(x, 0, b.border.Top, fg, bg)
		}
	}
	if b.borders.Has(BorderBottom) {
		for x := 0; x < w; x++ {
			buf.UpdateCell(x, h-1, b.border.Bottom, fg, bg)
		}
	}
	if b.borders.Has(BorderLeft) {
		for y := 0; y < h; y++ {
			buf.UpdateCell(0, y, b.border.Left, fg, bg)
		}
	}
	if b.borders.Has(BorderRight) {
		for y := 0; y < h; y++ {
			buf.UpdateCell(w-1, y, b.border.Right, fg, bg)
		}
	}

	corners := []struct {
		sides  Borders
		x, y   int
		symbol string
	}{
		{BorderTop | BorderLeft, 0, 0, b.border.TopLeft},
		{BorderTop | BorderRight, w - 1, 0, b.border.TopRight},
		{BorderBottom | BorderLeft, 0, h - 1, b.border.BottomLeft},
		{BorderBottom | BorderRight, w - 1, h - 1, b.border.BottomRight},
	}
	for _, c := range corners {
		if b.borders.Has(c.sides) {
			buf.UpdateCell(c.x, c.y, c.symbol, fg, bg)
		}
	}

	if b.title != "" {
		x, avail := 0, w
		if b.borders.Has(BorderLeft) {
			x, avail = 1, avail-1
		}
		if b.borders.Has(BorderRight) {
			avail--
		}
		buf.SetString(x, 0, truncate(b.title, avail), b.titleColor, bg)
	}
	return buf
}

// truncate cuts s to at most width columns.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(s) <= width {
		return s
	}
	w := 0
	for i, r := range s {
		rw := Width(string(r))
		if w+rw > width {
			return s[:i]
		}
		w += rw
	}
	return s
}
