// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Vec2 is an integer grid coordinate or offset.
type Vec2 struct {
	X, Y int16
}

// V creates a Vec2 from plain ints.
func V(x, y int) Vec2 {
	return Vec2{X: int16(x), Y: int16(y)}
}

// Add returns the componentwise sum of a and b.
func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Add returns v translated by o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Add(v, o)
}

// Rect represents an axis-aligned rectangle of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
