// Package core provides the terminal-independent drawing surface, layout
// geometry and input actions shared by the views.
// It contains no external dependencies (especially no Bubble Tea) to keep
// layout code pure and testable.
package core

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Inset returns r grown by dx columns and dy rows on every side.
func (r Rect) Inset(dx, dy int) Rect {
	return NewRect(r.X-dx, r.Y-dy, r.W+2*dx, r.H+2*dy)
}

// Centered returns a w x h rectangle centered inside a screen of the given size.
// The rectangle is pinned to the top-left when it does not fit.
func Centered(w, h, screenW, screenH int) Rect {
	return NewRect(Max(0, (screenW-w)/2), Max(0, (screenH-h)/2), w, h)
}
