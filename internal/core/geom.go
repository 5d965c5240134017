// Package core provides fundamental types and utilities shared by the
// simulation, the engine and the terminal front end. It has no external
// dependencies (especially no Bubble Tea) to keep simulation logic pure and
// testable.
package core

import "math"

// Rect is an axis-aligned area on the screen, used for panels and gauges.
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

// Inner returns the rectangle shrunk by one cell on each side.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: Max(0, r.W-2), H: Max(0, r.H-2)}
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
// NaN collapses to min so corrupt input cannot escape the range.
func ClampF(val, min, max float64) float64 {
	if math.IsNaN(val) || val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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
