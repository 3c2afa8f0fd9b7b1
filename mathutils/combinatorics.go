// SPDX-License-Identifier: MIT

package mathutils

// Factorial returns n! using the recursive definition n·(n-1)!, with
// 0! = 1! = 1. Results wrap silently past 20!.
//
// Errors:
//   - ErrNegativeInput if n < 0.
func Factorial(n int) (int64, error) {
	if err := checkNonNegative("Factorial", n); err != nil {
		return 0, err
	}

	return factorial(int64(n)), nil
}

func factorial(n int64) int64 {
	if n <= 1 {
		return 1
	}

	return n * factorial(n-1)
}

// Binomial returns C(n, k) = n! / (k!(n-k)!).
//
//	k > n           → 0
//	k == 0, k == n  → 1
//
// The quotient is taken over Factorial results, so it overflows for n > 20.
//
// Errors:
//   - ErrNegativeInput if n < 0 or k < 0.
func Binomial(n, k int) (int64, error) {
	if err := checkNonNegative("Binomial", n, k); err != nil {
		return 0, err
	}
	if k > n {
		return 0, nil
	}
	if k == 0 || k == n {
		return 1, nil
	}
	nn, kk := int64(n), int64(k)

	return factorial(nn) / (factorial(kk) * factorial(nn-kk)), nil
}
