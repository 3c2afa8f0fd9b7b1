// SPDX-License-Identifier: MIT

// Package showcase runs the fixed geometry demo: it builds a mixed shape
// collection, reports every shape, analyzes one circle, parses a coordinate
// string, prints mathematical constants and a Fibonacci prefix, and finishes
// with the total area of the collection.
package showcase
