// Package shapelab measures 2D shapes and ships a handful of small numeric
// helpers, plus a demo command that prints a geometry report.
//
// 🚀 What is inside?
//
//	geometry/  — Point, Shape interface, Circle, Ellipse, Rectangle, Triangle, TotalArea
//	mathutils/ — Fibonacci prefix, Factorial, Binomial
//	pattern/   — "name = number" assignment extractor for coordinate strings
//	report/    — plain-text rendering of shapes, constants and sequences
//	showcase/  — the fixed demo driver
//	cmd/shapelab — CLI entry point (no flags)
//
// ✨ Why shapelab?
//
//   - Pure functions and immutable values, nothing to lock
//   - Degenerate inputs return sentinel errors instead of NaN or ±Inf
//   - Generic TotalArea over any slice of shapes
//
// Quick ASCII example:
//
//	    C
//	    │╲
//	    │ ╲      a=(0,0) b=(3,0) c=(0,4)
//	    │  ╲     area=6 perimeter=12 right-angled
//	    A───B
//
//	go run github.com/katalvlaran/shapelab/cmd/shapelab
package shapelab
