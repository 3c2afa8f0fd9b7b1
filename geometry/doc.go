// SPDX-License-Identifier: MIT

// Package geometry computes area, perimeter, centroid and shape-specific
// metrics for a closed set of 2D shapes.
//
// 🚀 What is inside?
//
//	• Point     — immutable 2D vector: Add, Sub, Scale, DistanceTo, Magnitude
//	• Shape     — capability interface: Area, Perimeter, Centroid, Name, Kind
//	• Circle    — arc length and sector area for any real angle
//	• Ellipse   — Ramanujan perimeter, eccentricity, focal distance
//	• Rectangle — diagonal, golden-ratio check and golden factory
//	• Triangle  — shoelace area, circumradius, inradius, right-angle check
//	• TotalArea — generic fold over any slice of shapes
//
// ✨ Guarantees:
//   - every query is pure and deterministic; values never mutate after construction
//   - Area and Perimeter are ≥ 0 for finite inputs
//   - degenerate inputs fail loudly: ErrDegenerate, ErrInvalidArgument (match with errors.Is)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/shapelab/geometry"
//
//	shapes := []geometry.Shape{
//	  geometry.NewCircle(geometry.Pt(0, 0), 42),
//	  geometry.GoldenRectangle(geometry.Pt(0, 0), 100),
//	}
//	total := geometry.TotalArea(shapes)
//
// A Kind switch over Shape is exhaustive for KindCircle, KindEllipse,
// KindRectangle and KindTriangle; no other implementations exist in this module.
package geometry
