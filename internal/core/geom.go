// Package core provides fundamental types and utilities shared by the game and the platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an axis-aligned box in logical pixels.
// X and Y are the CENTER of the box, not its top-left corner.
type Rect struct {
	X, Y float64 // Center position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle centered at (x, y) with the given size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X - r.W*0.5
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W*0.5
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y - r.H*0.5
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H*0.5
}

// Overlaps reports whether two boxes touch or intersect.
//
// The test builds the Minkowski difference of other and r, expressed relative
// to r's center, and checks whether the origin lies inside it. Touching edges
// count as overlap.
func (r Rect) Overlaps(other Rect) bool {
	diffX := other.X - r.X
	diffY := other.Y - r.Y

	left := diffX - other.W*0.5 - r.W*0.5
	right := diffX + other.W*0.5 + r.W*0.5
	top := diffY - other.H*0.5 - r.H*0.5
	bottom := diffY + other.H*0.5 + r.H*0.5

	return left <= 0 && right >= 0 && top <= 0 && bottom >= 0
}

// Contains returns true if the point (x, y) is inside or on the edge of this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x <= r.Right() && y >= r.Top() && y <= r.Bottom()
}

// Bounds returns the smallest rectangle enclosing all given rectangles.
// The second return value is false when rects is empty.
func Bounds(rects []Rect) (Rect, bool) {
	if len(rects) == 0 {
		return Rect{}, false
	}

	minX, maxX := rects[0].Left(), rects[0].Right()
	minY, maxY := rects[0].Top(), rects[0].Bottom()
	for _, r := range rects[1:] {
		minX = min(minX, r.Left())
		maxX = max(maxX, r.Right())
		minY = min(minY, r.Top())
		maxY = max(maxY, r.Bottom())
	}

	return Rect{
		X: (minX + maxX) * 0.5,
		Y: (minY + maxY) * 0.5,
		W: maxX - minX,
		H: maxY - minY,
	}, true
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
