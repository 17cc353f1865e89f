// Package geom provides the numeric primitives the rest of the module
// builds on: orientation, ordering, angles, and containment tests over
// plain 2-D points. Everything here is pure and allocation-free.
package geom

import "math"

// Point is a 2-D coordinate pair.
type Point struct {
	X, Y float64
}

// Sub returns the free vector p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Cross returns the 2-D cross product p x q, treating both as free vectors.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Dot returns the dot product of p and q, treating both as free vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Len returns the Euclidean length of p treated as a free vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Equal reports whether p and q are exactly equal.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return a.Sub(b).Len()
}
