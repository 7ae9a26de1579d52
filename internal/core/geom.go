// Package core provides fundamental types and utilities shared by the arcade
// engines and the platform layer. It has no Bubble Tea dependency so that game
// logic stays pure and testable.
package core

// Overlaps reports whether two axis-aligned boxes overlap.
// The intervals are open: boxes that only touch along an edge do not overlap.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// RectF is an axis-aligned bounding box in continuous play-field units.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r RectF) Intersects(other RectF) bool {
	return Overlaps(r.X, r.Y, r.W, r.H, other.X, other.Y, other.W, other.H)
}

// Union returns the smallest rectangle covering both r and other.
func (r RectF) Union(other RectF) RectF {
	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	return RectF{
		X: x,
		Y: y,
		W: max(r.Right(), other.Right()) - x,
		H: max(r.Bottom(), other.Bottom()) - y,
	}
}

// Rect is an axis-aligned box in screen cells.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	return Overlaps(float64(r.X), float64(r.Y), float64(r.W), float64(r.H),
		float64(other.X), float64(other.Y), float64(other.W), float64(other.H))
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
