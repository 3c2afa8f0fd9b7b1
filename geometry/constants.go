// SPDX-License-Identifier: MIT

package geometry

import "math"

const (
	// Pi is the ratio of a circle's circumference to its diameter.
	Pi = math.Pi

	// E is Euler's number.
	E = math.E

	// Phi is the golden ratio (1+√5)/2.
	Phi = math.Phi

	// DefaultTolerance is the absolute tolerance used by IsGoldenRectangle and IsRightAngled.
	DefaultTolerance = 0.01

	// DefaultCircleRadius is the radius used when a circle is built without one.
	DefaultCircleRadius = 42.0
)
