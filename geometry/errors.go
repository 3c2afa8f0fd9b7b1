// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "geometry: ". Operations wrap these sentinels
// with their own name (e.g. "Circumradius: geometry: degenerate shape"),
// callers match with errors.Is.
var (
	// ErrDegenerate indicates a shape whose measure collapses to zero where a
	// division by that measure is required (collinear triangle, zero perimeter).
	ErrDegenerate = errors.New("geometry: degenerate shape")

	// ErrInvalidArgument indicates parameters outside the documented domain
	// (inverted ellipse axes, non-positive dimensions, NaN or ±Inf coordinates).
	ErrInvalidArgument = errors.New("geometry: invalid argument")
)

// opErrorf tags a sentinel with the failing operation name.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
