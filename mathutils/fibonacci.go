// SPDX-License-Identifier: MIT

package mathutils

// Fibonacci returns the first n Fibonacci numbers F(0)..F(n-1) where
// F(0)=0, F(1)=1 and F(i)=F(i-1)+F(i-2).
//
//	Fibonacci(0) → []
//	Fibonacci(1) → [0]
//	Fibonacci(7) → [0 1 1 2 3 5 8]
//
// Errors:
//   - ErrNegativeInput if n < 0.
func Fibonacci(n int) ([]int, error) {
	if err := checkNonNegative("Fibonacci", n); err != nil {
		return nil, err
	}
	fib := make([]int, n)
	if n > 1 {
		fib[1] = 1
	}
	for i := 2; i < n; i++ {
		fib[i] = fib[i-1] + fib[i-2]
	}

	return fib, nil
}
