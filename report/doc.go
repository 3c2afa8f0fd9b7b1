// SPDX-License-Identifier: MIT

// Package report renders geometry and number-sequence results as a
// human-readable plain-text report.
//
// Numbers are printed with Options.Precision significant digits in %g style,
// so 314.1592653589793 becomes "314.159" at the default precision of 6.
//
// A Report remembers the first write error; later calls become no-ops and
// Err returns that error.
package report
