package geom

import "math"

// Point is a 2D vector.
type Point struct {
	X float64
	Y float64
}

// Wrap builds the point {v, v}.
func Wrap(v float64) Point {
	return Point{X: v, Y: v}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the elementwise product of p and q.
func (p Point) Mul(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// Div returns the elementwise quotient p/q. Division by a zero axis follows
// IEEE-754 (±Inf or NaN); callers guard against it.
func (p Point) Div(q Point) Point {
	return Point{X: p.X / q.X, Y: p.Y / q.Y}
}

// Scale returns p multiplied by the scalar k on both axes.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Distance returns the Euclidean distance between p and q.
//
// Complexity: O(1).
func (p Point) Distance(q Point) float64 {
	var dx, dy float64
	dx = p.X - q.X
	dy = p.Y - q.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Equal reports exact equality on both axes.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// AllEqual reports whether a and b have the same length and are pointwise
// Equal.
//
// Complexity: O(n).
func AllEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = 0; i < len(a); i++ {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
