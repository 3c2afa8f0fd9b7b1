// SPDX-License-Identifier: MIT

package showcase

import "github.com/katalvlaran/shapelab/report"

const (
	// DefaultCoordinates is the literal coordinate string parsed by the demo.
	DefaultCoordinates = "x=123 y=456 radius=789"

	// DefaultFibonacciCount is how many Fibonacci numbers the demo prints.
	DefaultFibonacciCount = 15
)

// Options configures Run.
//
// Fields:
//   - Coordinates    — text handed to the assignment extractor.
//   - FibonacciCount — length of the printed Fibonacci prefix; must be ≥ 0.
//   - Report         — number formatting of the output.
type Options struct {
	Coordinates    string
	FibonacciCount int
	Report         report.Options
}

// DefaultOptions returns the options of the fixed demo.
func DefaultOptions() Options {
	return Options{
		Coordinates:    DefaultCoordinates,
		FibonacciCount: DefaultFibonacciCount,
		Report:         report.DefaultOptions(),
	}
}
