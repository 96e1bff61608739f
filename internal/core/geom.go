// Package core provides fundamental types and utilities shared by the
// simulation engine, the games and the terminal platform. It has no
// UI dependencies (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Box is an axis-aligned bounding box in world units.
// World coordinates are continuous; the platform scales them to terminal cells.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a box with the given position and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects reports whether two boxes overlap.
// Touching edges do not count as overlap.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// Within reports whether the box lies fully inside a w×h playfield.
func (b Box) Within(w, h float64) bool {
	return b.X >= 0 && b.Y >= 0 && b.Right() <= w && b.Bottom() <= h
}

// Cells converts the box into terminal cells using the given scale factors.
// Every non-empty box covers at least one cell.
func (b Box) Cells(sx, sy float64) Rect {
	x := int(math.Floor(b.X * sx))
	y := int(math.Floor(b.Y * sy))
	w := int(math.Round(b.W * sx))
	h := int(math.Round(b.H * sy))
	if w < 1 && b.W > 0 {
		w = 1
	}
	if h < 1 && b.H > 0 {
		h = 1
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Rect is an integer rectangle in terminal cells.
type Rect struct {
	X, Y int
	W, H int
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
