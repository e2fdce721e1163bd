// Package core provides fundamental types and utilities for the orbit game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned box on the character grid, used for hit-boxes.
// It covers rows [Row, Row+H) and columns [Col, Col+W).
type Rect struct {
	Row, Col int // Top-left cell
	H, W     int // Height in rows, width in columns
}

// NewRect creates a new rectangle with the given corner and dimensions.
func NewRect(row, col, h, w int) Rect {
	return Rect{Row: row, Col: col, H: h, W: w}
}

// Bottom returns the row just below the last covered row.
func (r Rect) Bottom() int {
	return r.Row + r.H
}

// Right returns the column just past the last covered column.
func (r Rect) Right() int {
	return r.Col + r.W
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.H <= 0 || r.W <= 0
}

// Intersects returns true if this rectangle shares at least one cell with another.
// Rectangles whose edges only touch do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.Col >= other.Right() || other.Col >= r.Right() {
		return false
	}
	if r.Row >= other.Bottom() || other.Row >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (row, col) is inside this rectangle.
func (r Rect) Contains(row, col int) bool {
	return row >= r.Row && row < r.Bottom() && col >= r.Col && col < r.Right()
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.Row + r.H/2, r.Col + r.W/2
}

// Round converts a fractional grid coordinate to a cell index.
// Halves round away from zero; every draw and hit test goes through here.
func Round(v float64) int {
	return int(math.Round(v))
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
