// SPDX-License-Identifier: MIT

package geometry

import "math"

// Rectangle is axis-aligned, anchored at its bottom-left corner.
type Rectangle struct {
	bottomLeft    Point
	width, height float64
}

// NewRectangle returns a width×height rectangle anchored at bottomLeft.
func NewRectangle(bottomLeft Point, width, height float64) Rectangle {
	return Rectangle{bottomLeft: bottomLeft, width: width, height: height}
}

// GoldenRectangle returns a rectangle of the given width whose height is width/φ.
func GoldenRectangle(bottomLeft Point, width float64) Rectangle {
	return NewRectangle(bottomLeft, width, width/math.Phi)
}

// BottomLeft returns the anchor corner.
func (r Rectangle) BottomLeft() Point { return r.bottomLeft }

// Width returns the horizontal extent.
func (r Rectangle) Width() float64 { return r.width }

// Height returns the vertical extent.
func (r Rectangle) Height() float64 { return r.height }

// Area returns width·height.
func (r Rectangle) Area() float64 {
	return r.width * r.height
}

// Perimeter returns 2(width+height).
func (r Rectangle) Perimeter() float64 {
	return 2 * (r.width + r.height)
}

// Centroid returns bottomLeft + (width/2, height/2).
func (r Rectangle) Centroid() Point {
	return r.bottomLeft.Add(Pt(r.width/2, r.height/2))
}

// Name returns "Rectangle".
func (r Rectangle) Name() string { return KindRectangle.String() }

// Kind returns KindRectangle.
func (r Rectangle) Kind() Kind { return KindRectangle }

// Diagonal returns √(width²+height²).
func (r Rectangle) Diagonal() float64 {
	return math.Hypot(r.width, r.height)
}

// IsGoldenRectangle reports whether the long/short side ratio is within
// DefaultTolerance of φ.
func (r Rectangle) IsGoldenRectangle() bool {
	return r.IsGoldenRectangleWithin(DefaultTolerance)
}

// IsGoldenRectangleWithin reports whether |max(w,h)/min(w,h) − φ| < tol.
// A rectangle with a zero side is never golden.
func (r Rectangle) IsGoldenRectangleWithin(tol float64) bool {
	long, short := math.Max(r.width, r.height), math.Min(r.width, r.height)
	if short == 0 {
		return false
	}

	return withinTolerance(long/short, math.Phi, tol)
}

// Validate checks that the anchor is finite and both sides are positive.
func (r Rectangle) Validate() error {
	if err := validatePoints("Rectangle.Validate", r.bottomLeft); err != nil {
		return err
	}

	return validatePositive("Rectangle.Validate", r.width, r.height)
}
