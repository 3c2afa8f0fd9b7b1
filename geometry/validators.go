// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"golang.org/x/exp/constraints"
)

// withinTolerance reports |a-b| < tol.
func withinTolerance[T constraints.Float](a, b, tol T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d < tol
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validatePoints returns ErrInvalidArgument tagged with op if any point is non-finite.
func validatePoints(op string, pts ...Point) error {
	for _, p := range pts {
		if !p.IsFinite() {
			return opErrorf(op, ErrInvalidArgument)
		}
	}

	return nil
}

// validatePositive returns ErrInvalidArgument tagged with op unless every value
// is finite and strictly positive.
func validatePositive(op string, vals ...float64) error {
	for _, v := range vals {
		if !isFinite(v) || v <= 0 {
			return opErrorf(op, ErrInvalidArgument)
		}
	}

	return nil
}
