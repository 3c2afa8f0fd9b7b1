// SPDX-License-Identifier: MIT

package geometry

import "math"

// Ellipse is axis-aligned around center with semi-major axis a and
// semi-minor axis b. Eccentricity requires a ≥ b > 0.
type Ellipse struct {
	center Point
	a, b   float64
}

// NewEllipse returns an ellipse with semi-major axis a and semi-minor axis b.
func NewEllipse(center Point, a, b float64) Ellipse {
	return Ellipse{center: center, a: a, b: b}
}

// Center returns the ellipse center.
func (e Ellipse) Center() Point { return e.center }

// SemiMajorAxis returns a.
func (e Ellipse) SemiMajorAxis() float64 { return e.a }

// SemiMinorAxis returns b.
func (e Ellipse) SemiMinorAxis() float64 { return e.b }

// Area returns π·a·b.
func (e Ellipse) Area() float64 {
	return math.Pi * e.a * e.b
}

// Perimeter approximates the circumference with Ramanujan's second formula:
//
//	h = (a-b)² / (a+b)²
//	P ≈ π(a+b)(1 + 3h / (10 + √(4-3h)))
//
// A zero-size ellipse (a+b == 0) has perimeter 0.
func (e Ellipse) Perimeter() float64 {
	sum := e.a + e.b
	if sum == 0 {
		return 0
	}
	diff := e.a - e.b
	h := (diff * diff) / (sum * sum)

	return math.Pi * sum * (1 + (3*h)/(10+math.Sqrt(4-3*h)))
}

// Centroid returns the center.
func (e Ellipse) Centroid() Point { return e.center }

// Name returns "Ellipse".
func (e Ellipse) Name() string { return KindEllipse.String() }

// Kind returns KindEllipse.
func (e Ellipse) Kind() Kind { return KindEllipse }

// Eccentricity returns √(1 − (b/a)²), 0 for a circle and approaching 1 as the
// ellipse elongates.
//
// Errors:
//   - ErrInvalidArgument if a ≤ 0, b ≤ 0 or b > a.
func (e Ellipse) Eccentricity() (float64, error) {
	if !(e.a > 0 && e.b > 0) || e.b > e.a {
		return 0, opErrorf("Eccentricity", ErrInvalidArgument)
	}
	r := e.b / e.a

	return math.Sqrt(1 - r*r), nil
}

// FocalDistance returns the distance from the center to either focus, a·e.
// Errors are those of Eccentricity.
func (e Ellipse) FocalDistance() (float64, error) {
	ecc, err := e.Eccentricity()
	if err != nil {
		return 0, opErrorf("FocalDistance", err)
	}

	return e.a * ecc, nil
}

// Validate checks that the center is finite and a ≥ b > 0.
func (e Ellipse) Validate() error {
	if err := validatePoints("Ellipse.Validate", e.center); err != nil {
		return err
	}
	if err := validatePositive("Ellipse.Validate", e.a, e.b); err != nil {
		return err
	}
	if e.b > e.a {
		return opErrorf("Ellipse.Validate", ErrInvalidArgument)
	}

	return nil
}
