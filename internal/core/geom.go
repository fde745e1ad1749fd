// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a point or displacement in world units.
type Vec struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Span is a horizontal interval [Start, End) in world units.
type Span struct {
	Start, End float64
}

// SpanOf returns the span starting at x with the given width.
func SpanOf(x, width float64) Span {
	return Span{Start: x, End: x + width}
}

// Width returns the length of the span.
func (s Span) Width() float64 {
	return s.End - s.Start
}

// ContainsOpen returns true if x lies strictly inside the span.
// Touching either edge does not count.
func (s Span) ContainsOpen(x float64) bool {
	return x > s.Start && x < s.End
}

// Overlaps returns true if the two spans share any interior length.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Circle is a round collider in world units.
type Circle struct {
	Center Vec
	R      float64
}

// Touches returns true if the circles overlap (distance strictly below the radius sum).
func (c Circle) Touches(other Circle) bool {
	return Dist(c.Center, other.Center) < c.R+other.R
}

// Rect represents an axis-aligned box in screen cells.
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
