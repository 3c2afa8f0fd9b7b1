// SPDX-License-Identifier: MIT

package showcase

import (
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/shapelab/geometry"
	"github.com/katalvlaran/shapelab/mathutils"
	"github.com/katalvlaran/shapelab/pattern"
	"github.com/katalvlaran/shapelab/report"
)

// Shapes returns the demo collection, in report order.
func Shapes() []geometry.Shape {
	return []geometry.Shape{
		geometry.NewCircle(geometry.Pt(0, 0), geometry.DefaultCircleRadius),
		geometry.NewEllipse(geometry.Pt(10, 10), 50, 30),
		geometry.NewRectangle(geometry.Pt(-5, -5), 25, 15),
		geometry.NewTriangle(geometry.Pt(0, 0), geometry.Pt(10, 0), geometry.Pt(5, 8.66)),
		geometry.GoldenRectangle(geometry.Pt(0, 0), 100),
	}
}

// AnalysisCircle returns the circle used for the sector and arc section.
func AnalysisCircle() geometry.Circle {
	return geometry.NewCircle(geometry.Pt(5, 5), 10)
}

// Run writes the full demo report to w.
//
// Shapes failing Validate are still reported; a warning is logged for each.
//
// Errors:
//   - mathutils.ErrNegativeInput if opts.FibonacciCount < 0.
//   - the first write error of w.
func Run(w io.Writer, log zerolog.Logger, opts Options) error {
	fib, err := mathutils.Fibonacci(opts.FibonacciCount)
	if err != nil {
		return fmt.Errorf("showcase: %w", err)
	}

	shapes := Shapes()
	for i, s := range shapes {
		if verr := s.Validate(); verr != nil {
			log.Warn().Err(verr).Int("index", i).Str("shape", s.Name()).Msg("shape outside expected domain")
		}
		log.Debug().Int("index", i).Str("shape", s.Name()).Float64("area", s.Area()).Msg("shape measured")
	}

	matches := pattern.Extract(opts.Coordinates)
	log.Debug().Int("matches", len(matches)).Str("input", opts.Coordinates).Msg("coordinates parsed")

	total := geometry.TotalArea(shapes)

	r := report.New(w, opts.Report)
	r.Title("Mathematical Shape Analysis")
	r.Shapes(shapes)
	r.CircleAnalysis(AnalysisCircle(), math.Pi/4, math.Pi/2)
	r.Coordinates(matches)
	r.Constants()
	r.Sequence("Fibonacci sequence", fib)
	r.Total(total)
	if err := r.Err(); err != nil {
		return fmt.Errorf("showcase: write report: %w", err)
	}

	log.Info().Int("shapes", len(shapes)).Float64("total_area", total).Msg("showcase complete")

	return nil
}
