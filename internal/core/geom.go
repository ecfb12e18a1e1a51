// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a 2D point or displacement in world units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are world units with Y growing downwards.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ContainsStrict returns true if the point lies strictly inside the rectangle.
func (r Rect) ContainsStrict(p Vec) bool {
	return p.X > r.X && p.X < r.Right() && p.Y > r.Y && p.Y < r.Bottom()
}

// CircleBounds returns the bounding box of a circle.
func CircleBounds(c Vec, radius float64) Rect {
	return Rect{X: c.X - radius, Y: c.Y - radius, W: radius * 2, H: radius * 2}
}

// Overlap returns the penetration depth of a circle's bounding box into r along
// each axis, measured from the centers via half-extents. Positive values mean
// the boxes overlap on that axis.
func (r Rect) Overlap(c Vec, radius float64) (overlapX, overlapY float64) {
	center := r.Center()
	overlapX = (r.W/2 + radius) - math.Abs(c.X-center.X)
	overlapY = (r.H/2 + radius) - math.Abs(c.Y-center.Y)
	return overlapX, overlapY
}

// Bounds is the size of the play area in world units.
type Bounds struct {
	W, H float64
}

// Clamp restricts a value to be within [lo, hi].
// If hi < lo, lo wins.
func Clamp(val, lo, hi float64) float64 {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}

// ClampInt restricts an integer value to be within [lo, hi].
func ClampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
