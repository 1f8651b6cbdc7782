package buffer

// Rect is a rectangle in terminal cell coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect returns the rectangle at (x, y) with the given size.
// Negative sizes are clamped to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(0, width), Height: max(0, height)}
}

// Area returns the number of cells covered by r.
func (r Rect) Area() int { return r.Width * r.Height }

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Left returns the first column of r.
func (r Rect) Left() int { return r.X }

// Right returns the column just past r.
func (r Rect) Right() int { return r.X + r.Width }

// Top returns the first row of r.
func (r Rect) Top() int { return r.Y }

// Bottom returns the row just past r.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether o lies entirely inside r.
// An empty o is contained in any rectangle.
func (r Rect) Contains(o Rect) bool {
	if o.Empty() {
		return true
	}
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// ContainsPoint reports whether the cell (x, y) lies inside r.
func (r Rect) ContainsPoint(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
