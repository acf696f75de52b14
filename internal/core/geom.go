// Package core provides small shared types for the platform layer.
// It contains no external dependencies (especially no Bubble Tea) to keep it
// pure and testable.
package core

// Rect represents an axis-aligned box on the terminal grid, used to hit-test
// mouse clicks against rendered swatches.
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

// Grid lays out n cells of size w x h in rows of cols, separated by gap
// columns and one blank line, starting at (x, y).
func Grid(n, cols, x, y, w, h, gap int) []Rect {
	if cols <= 0 {
		cols = 1
	}
	rects := make([]Rect, n)
	for i := range rects {
		col := i % cols
		row := i / cols
		rects[i] = NewRect(x+col*(w+gap), y+row*(h+1), w, h)
	}
	return rects
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
