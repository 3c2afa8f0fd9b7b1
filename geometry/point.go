// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate or vector. It is a value type: every operation
// returns a new Point.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by factor.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return p.Sub(q).Magnitude()
}

// Magnitude returns the distance from the origin.
func (p Point) Magnitude() float64 {
	return math.Hypot(p.X, p.Y)
}

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
