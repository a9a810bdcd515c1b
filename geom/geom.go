// Package geom provides integer cell-grid geometry used across the toolkit.
package geom

// Point is a position in character cells.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// In reports whether p lies inside r.
func (p Point) In(r Rect) bool {
	return r.Contains(p)
}

// Size is a width/height pair in character cells.
// Negative components are treated as empty.
type Size struct {
	Width, Height int
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Empty reports whether the size covers no cells.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Area returns the number of cells covered.
func (s Size) Area() int {
	if s.Empty() {
		return 0
	}
	return s.Width * s.Height
}

// Fits reports whether s fits inside other.
func (s Size) Fits(other Size) bool {
	return s.Width <= other.Width && s.Height <= other.Height
}

// Rect is an origin plus a size.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect builds a rect from an origin and a size.
func NewRect(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Origin returns the upper-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rect dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Left returns the leftmost column.
func (r Rect) Left() int { return r.X }

// Top returns the topmost row.
func (r Rect) Top() int { return r.Y }

// Right returns the rightmost column (inclusive).
func (r Rect) Right() int { return r.X + r.Width - 1 }

// Bottom returns the bottom row (inclusive).
func (r Rect) Bottom() int { return r.Y + r.Height - 1 }

// Center returns the central cell, biased up-left for even sizes.
func (r Rect) Center() Point {
	return Point{X: r.X + (r.Width-1)/2, Y: r.Y + (r.Height-1)/2}
}

// UpperLeft returns the upper-left corner.
func (r Rect) UpperLeft() Point { return Point{X: r.Left(), Y: r.Top()} }

// UpperRight returns the upper-right corner.
func (r Rect) UpperRight() Point { return Point{X: r.Right(), Y: r.Top()} }

// LowerLeft returns the lower-left corner.
func (r Rect) LowerLeft() Point { return Point{X: r.Left(), Y: r.Bottom()} }

// LowerRight returns the lower-right corner.
func (r Rect) LowerRight() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p is inside r.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	if o.Empty() {
		return true
	}
	return o.X >= r.X && o.Y >= r.Y && o.X+o.Width <= r.X+r.Width && o.Y+o.Height <= r.Y+r.Height
}

// Intersect returns the overlap of r and o, or an empty rect.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.Width, o.X+o.Width)
	y1 := min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	r.X += n
	r.Y += n
	r.Width -= 2 * n
	r.Height -= 2 * n
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
