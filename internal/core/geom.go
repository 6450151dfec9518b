// Package core provides fundamental types and utilities shared by the
// breakout simulation and the platform layer. It contains no external
// dependencies (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Point is a position in playfield pixels.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the z component of the cross product of p and q.
func (p Point) Cross(q Point) int {
	return p.X*q.Y - p.Y*q.X
}

// Rect represents an axis-aligned box.
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

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Collide reports whether two axis-aligned rectangles overlap or touch.
// Comparisons are closed on both ends.
func Collide(x1, y1, w1, h1, x2, y2, w2, h2 int) bool {
	return (x1 <= x2+w2 && x2 <= x1+w1) && (y1 <= y2+h2 && y2 <= y1+h1)
}

// Intersect reports whether segment p1-p2 crosses segment p3-p4.
//
// Each pair of endpoints is tested against the line through the other
// segment; only a strictly same-sign pair rejects, so touching and
// collinear segments count as intersecting.
func Intersect(p1, p2, p3, p4 Point) bool {
	d := p2.Sub(p1)
	s := d.Cross(p3.Sub(p1))
	t := d.Cross(p4.Sub(p1))
	if sameSide(s, t) {
		return false
	}

	d = p4.Sub(p3)
	s = d.Cross(p1.Sub(p3))
	t = d.Cross(p2.Sub(p3))
	return !sameSide(s, t)
}

// sameSide compares signs instead of multiplying, which could overflow.
func sameSide(s, t int) bool {
	return (s > 0 && t > 0) || (s < 0 && t < 0)
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
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
