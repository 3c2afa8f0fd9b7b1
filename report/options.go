// SPDX-License-Identifier: MIT

package report

// DefaultPrecision is the default number of significant digits.
const DefaultPrecision = 6

// Options configures number formatting.
//
// Fields:
//   - Precision — significant digits for every float; values < 1 fall back to
//     DefaultPrecision.
type Options struct {
	Precision int
}

// DefaultOptions returns Options{Precision: DefaultPrecision}.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision}
}
