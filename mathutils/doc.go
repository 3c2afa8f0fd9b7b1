// SPDX-License-Identifier: MIT

// Package mathutils provides small integer sequence and combinatorics helpers:
// the Fibonacci prefix, factorial and the binomial coefficient.
//
// All functions are pure. Negative inputs are rejected with ErrNegativeInput
// instead of recursing without bound.
//
// Overflow is NOT detected: Factorial wraps past 20! and Binomial computes
// n!/(k!(n-k)!) through Factorial, so it is exact only while n ≤ 20.
// Callers needing larger values should use math/big.
package mathutils
