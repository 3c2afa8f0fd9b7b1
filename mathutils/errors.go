// SPDX-License-Identifier: MIT

package mathutils

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrNegativeInput indicates an argument below the function's domain (n < 0 or k < 0).
var ErrNegativeInput = errors.New("mathutils: negative input")

// checkNonNegative returns ErrNegativeInput tagged with op if any value is < 0.
func checkNonNegative[T constraints.Integer](op string, vals ...T) error {
	for _, v := range vals {
		if v < 0 {
			return fmt.Errorf("%s(%d): %w", op, v, ErrNegativeInput)
		}
	}

	return nil
}
