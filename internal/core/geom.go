// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies on the terminal layer (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "gonum.org/v1/gonum/spatial/r2"

// Point is an integer 2D coordinate in world or screen units.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec converts the point to a floating point vector.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}

// Offset moves the point by v, truncating each component toward zero.
func (p Point) Offset(v r2.Vec) Point {
	return Point{X: p.X + int(v.X), Y: p.Y + int(v.Y)}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return r2.Norm(r2.Sub(b.Vec(), a.Vec()))
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCenter creates a w×h rectangle centered on c.
func RectFromCenter(c Point, w, h int) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// IntersectsSegment reports whether any part of the segment a→b lies inside
// the rectangle. Edges are inclusive of the last covered cell, so a segment
// that only grazes Right() or Bottom() does not count.
func (r Rect) IntersectsSegment(a, b Point) bool {
	if r.Empty() {
		return false
	}

	minX, maxX := float64(r.X), float64(r.Right()-1)
	minY, maxY := float64(r.Y), float64(r.Bottom()-1)
	origin := a.Vec()
	d := r2.Sub(b.Vec(), origin)

	// Liang-Barsky: shrink [t0, t1] against each of the four slabs.
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}

	return clip(-d.X, origin.X-minX) &&
		clip(d.X, maxX-origin.X) &&
		clip(-d.Y, origin.Y-minY) &&
		clip(d.Y, maxY-origin.Y)
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
