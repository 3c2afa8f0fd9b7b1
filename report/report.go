// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/shapelab/geometry"
)

// Report writes sections to an underlying io.Writer.
type Report struct {
	w    io.Writer
	prec int
	err  error
}

// New returns a Report writing to w.
func New(w io.Writer, opts Options) *Report {
	prec := opts.Precision
	if prec < 1 {
		prec = DefaultPrecision
	}

	return &Report{w: w, prec: prec}
}

// Err returns the first write error, if any.
func (r *Report) Err() error { return r.err }

func (r *Report) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// num formats v with the configured significant digits.
func (r *Report) num(v float64) string {
	return strconv.FormatFloat(v, 'g', r.prec, 64)
}

func (r *Report) point(p geometry.Point) string {
	return "(" + r.num(p.X) + ", " + r.num(p.Y) + ")"
}

// orNA formats v, or "n/a (<err>)" when err is non-nil.
func (r *Report) orNA(v float64, err error) string {
	if err != nil {
		return "n/a (" + err.Error() + ")"
	}

	return r.num(v)
}

// Title writes "=== title ===" followed by a blank line.
func (r *Report) Title(title string) {
	r.printf("=== %s ===\n\n", title)
}

// Shape writes the common metrics of s followed by its variant-specific
// metrics and a blank line.
func (r *Report) Shape(s geometry.Shape) {
	r.printf("%s:\n", s.Name())
	r.printf("  Area: %s\n", r.num(s.Area()))
	r.printf("  Perimeter: %s\n", r.num(s.Perimeter()))
	r.printf("  Centroid: %s\n", r.point(s.Centroid()))

	switch v := s.(type) {
	case geometry.Circle:
		r.printf("  Radius: %s\n", r.num(v.Radius()))
	case geometry.Ellipse:
		r.printf("  Eccentricity: %s\n", r.orNA(v.Eccentricity()))
		r.printf("  Focal distance: %s\n", r.orNA(v.FocalDistance()))
	case geometry.Rectangle:
		r.printf("  Diagonal: %s\n", r.num(v.Diagonal()))
		r.printf("  Golden: %t\n", v.IsGoldenRectangle())
	case geometry.Triangle:
		r.printf("  Circumradius: %s\n", r.orNA(v.Circumradius()))
		r.printf("  Inradius: %s\n", r.orNA(v.Inradius()))
		r.printf("  Right-angled: %t\n", v.IsRightAngled())
	}
	r.printf("\n")
}

// Shapes writes every shape in order.
func (r *Report) Shapes(shapes []geometry.Shape) {
	for _, s := range shapes {
		r.Shape(s)
	}
}

// CircleAnalysis writes the sector area for sectorAngle and the arc length
// for arcAngle, both in radians.
func (r *Report) CircleAnalysis(c geometry.Circle, sectorAngle, arcAngle float64) {
	r.printf("Circle Analysis:\n")
	r.printf("  Sector area (%s rad): %s\n", angleLabel(sectorAngle), r.num(c.SectorArea(sectorAngle)))
	r.printf("  Arc length (%s rad): %s\n\n", angleLabel(arcAngle), r.num(c.ArcLength(arcAngle)))
}

// Coordinates writes each parsed "name=value" entry on its own line.
func (r *Report) Coordinates(matches []string) {
	r.printf("Parsed coordinates:\n")
	for _, m := range matches {
		r.printf("  %s\n", m)
	}
	r.printf("\n")
}

// Constants writes π, e, φ and the identity φ² = φ + 1.
func (r *Report) Constants() {
	r.Title("Mathematical Constants")
	r.printf("π = %s\n", r.num(geometry.Pi))
	r.printf("e = %s\n", r.num(geometry.E))
	r.printf("φ (Golden Ratio) = %s\n", r.num(geometry.Phi))
	r.printf("φ² = %s ≈ φ + 1\n\n", r.num(geometry.Phi*geometry.Phi))
}

// Sequence writes label followed by the space-separated values.
func (r *Report) Sequence(label string, seq []int) {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}
	r.printf("%s: %s\n\n", label, strings.Join(parts, " "))
}

// Total writes the aggregate area line.
func (r *Report) Total(area float64) {
	r.printf("Total area of all shapes: %s\n", r.num(area))
}

// angleLabel renders simple fractions of π symbolically ("π/4"), anything
// else numerically.
func angleLabel(rad float64) string {
	for _, d := range []float64{1, 2, 3, 4, 6, 8} {
		if math.Abs(rad-math.Pi/d) < 1e-12 {
			if d == 1 {
				return "π"
			}

			return "π/" + strconv.Itoa(int(d))
		}
	}

	return strconv.FormatFloat(rad, 'g', -1, 64)
}
