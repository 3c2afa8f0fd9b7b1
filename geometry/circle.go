// SPDX-License-Identifier: MIT

package geometry

import "math"

// Circle is defined by its center and radius.
type Circle struct {
	center Point
	radius float64
}

// NewCircle returns a circle of radius r around center. r > 0 is expected
// but not enforced; see Validate.
func NewCircle(center Point, r float64) Circle {
	return Circle{center: center, radius: r}
}

// NewDefaultCircle returns a circle of DefaultCircleRadius around center.
func NewDefaultCircle(center Point) Circle {
	return NewCircle(center, DefaultCircleRadius)
}

// Center returns the circle center.
func (c Circle) Center() Point { return c.center }

// Radius returns the circle radius.
func (c Circle) Radius() float64 { return c.radius }

// Area returns π·r².
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Perimeter returns the circumference 2π·r.
func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * c.radius
}

// Centroid returns the center.
func (c Circle) Centroid() Point { return c.center }

// Name returns "Circle".
func (c Circle) Name() string { return KindCircle.String() }

// Kind returns KindCircle.
func (c Circle) Kind() Kind { return KindCircle }

// ArcLength returns r·angle. The angle is in radians and is not clamped:
// negative angles and angles beyond 2π are accepted as-is.
func (c Circle) ArcLength(angle float64) float64 {
	return c.radius * angle
}

// SectorArea returns ½·r²·angle for an angle in radians, without clamping.
func (c Circle) SectorArea(angle float64) float64 {
	return 0.5 * c.radius * c.radius * angle
}

// Validate checks that the center is finite and the radius is positive.
func (c Circle) Validate() error {
	if err := validatePoints("Circle.Validate", c.center); err != nil {
		return err
	}

	return validatePositive("Circle.Validate", c.radius)
}
