// Package buffer provides the character-cell grid that widgets paint into.
//
// A [Buffer] covers a [Rect] of the terminal. Drawing methods take
// coordinates local to that rectangle: (0, 0) is the buffer's top-left cell.
// Every write is clipped, so writes outside the buffer are silently dropped,
// and later writes replace earlier ones.
//
// # Output
//
// [Buffer.Lines] returns the grid as plain text. [Buffer.Render] returns it
// with ANSI colors, using lipgloss to encode each run of equally styled cells.
package buffer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// blank is the symbol of an unpainted cell.
const blank = " "

// Reset is the color that leaves the terminal default in place.
var Reset lipgloss.TerminalColor = lipgloss.NoColor{}

// Cell is one character position with its colors.
// A cell with an empty Symbol is covered by the wide character to its left.
type Cell struct {
	Symbol string
	Fg, Bg lipgloss.TerminalColor
}

// Continuation reports whether c is the trailing half of a wide character.
func (c Cell) Continuation() bool { return c.Symbol == "" }

func orReset(c lipgloss.TerminalColor) lipgloss.TerminalColor {
	if c == nil {
		return Reset
	}
	return c
}

func emptyCell() Cell {
	return Cell{Symbol: blank, Fg: Reset, Bg: Reset}
}

// Buffer is a grid of cells covering Area.
// It is not safe for concurrent writes.
type Buffer struct {
	area  Rect
	cells []Cell
}

// New returns a buffer covering area with every cell blank and uncolored.
func New(area Rect) *Buffer {
	area = NewRect(area.X, area.Y, area.Width, area.Height)
	cells := make([]Cell, area.Area())
	for i := range cells {
		cells[i] = emptyCell()
	}
	return &Buffer{area: area, cells: cells}
}

// Area returns the rectangle covered by the buffer.
func (b *Buffer) Area() Rect { return b.area }

func (b *Buffer) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= b.area.Width || y >= b.area.Height {
		return 0, false
	}
	return y*b.area.Width + x, true
}

// Cell returns the cell at local (x, y).
// The boolean is false when the position is outside the buffer.
func (b *Buffer) Cell(x, y int) (Cell, bool) {
	i, ok := b.index(x, y)
	if !ok {
		return Cell{}, false
	}
	return b.cells[i], true
}

// UpdateCell replaces the cell at local (x, y).
func (b *Buffer) UpdateCell(x, y int, symbol string, fg, bg lipgloss.TerminalColor) {
	i, ok := b.index(x, y)
	if !ok {
		return
	}
	b.cells[i] = Cell{Symbol: symbol, Fg: orReset(fg), Bg: orReset(bg)}
}

// SetString writes s starting at local (x, y), one cell per column.
// Wide runes take two cells and zero-width runes attach to the previous
// cell. Cells that fall outside the buffer are skipped, the rest are written.
func (b *Buffer) SetString(x, y int, s string, fg, bg lipgloss.TerminalColor) {
	if y < 0 || y >= b.area.Height {
		return
	}
	fg, bg = orReset(fg), orReset(bg)
	col := x
	last := -1
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			if last >= 0 {
				b.cells[last].Symbol += string(r)
			}
			continue
		}
		if i, ok := b.index(col, y); ok {
			b.cells[i] = Cell{Symbol: string(r), Fg: fg, Bg: bg}
			last = i
		} else {
			last = -1
		}
		for k := 1; k < w; k++ {
			if i, ok := b.index(col+k, y); ok {
				b.cells[i] = Cell{Symbol: "", Fg: fg, Bg: bg}
			}
		}
		col += w
	}
}

// Fill paints every cell of r (local coordinates) with symbol.
func (b *Buffer) Fill(r Rect, symbol string, fg, bg lipgloss.TerminalColor) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			b.UpdateCell(x, y, symbol, fg, bg)
		}
	}
}

// Lines returns the buffer content row by row without colors.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.area.Height)
	for y := range lines {
		var sb strings.Builder
		for x := 0; x < b.area.Width; x++ {
			sb.WriteString(b.cells[y*b.area.Width+x].Symbol)
		}
		lines[y] = sb.String()
	}
	return lines
}

// String returns the plain content joined with newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Render returns the content with colors encoded for r.
// A nil renderer uses the lipgloss default renderer.
func (b *Buffer) Render(r *lipgloss.Renderer) string {
	newStyle := lipgloss.NewStyle
	if r != nil {
		newStyle = r.NewStyle
	}

	lines := make([]string, b.area.Height)
	for y := range lines {
		var sb, run strings.Builder
		var cur Cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := newStyle().Foreground(cur.Fg).Background(cur.Bg)
			sb.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for x := 0; x < b.area.Width; x++ {
			c := b.cells[y*b.area.Width+x]
			if c.Continuation() {
				continue
			}
			if run.Len() > 0 && (c.Fg != cur.Fg || c.Bg != cur.Bg) {
				flush()
			}
			cur = c
			run.WriteString(c.Symbol)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
