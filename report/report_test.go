package report_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/shapelab/geometry"
	"github.com/katalvlaran/shapelab/report"
	"github.com/stretchr/testify/assert"
)

// lines runs fn against a fresh Report and returns the output split by line.
func lines(t *testing.T, opts report.Options, fn func(r *report.Report)) []string {
	t.Helper()
	var buf bytes.Buffer
	r := report.New(&buf, opts)
	fn(r)
	assert.NoError(t, r.Err())

	return strings.Split(buf.String(), "\n")
}

func TestReport_Shape(t *testing.T) {
	cases := []struct {
		name  string
		shape geometry.Shape
		want  []string
	}{
		{
			name:  "Circle",
			shape: geometry.NewCircle(geometry.Pt(5, 5), 10),
			want: []string{
				"Circle:", "  Area: 314.159", "  Perimeter: 62.8319", "  Centroid: (5, 5)",
				"  Radius: 10", "", "",
			},
		},
		{
			name:  "Ellipse",
			shape: geometry.NewEllipse(geometry.Pt(10, 10), 50, 30),
			want: []string{
				"Ellipse:", "  Area: 4712.39", "  Perimeter: 255.27", "  Centroid: (10, 10)",
				"  Eccentricity: 0.8", "  Focal distance: 40", "", "",
			},
		},
		{
			name:  "Rectangle",
			shape: geometry.NewRectangle(geometry.Pt(-5, -5), 25, 15),
			want: []string{
				"Rectangle:", "  Area: 375", "  Perimeter: 80", "  Centroid: (7.5, 2.5)",
				"  Diagonal: 29.1548", "  Golden: false", "", "",
			},
		},
		{
			name:  "Triangle",
			shape: geometry.NewTriangle(geometry.Pt(0, 0), geometry.Pt(3, 0), geometry.Pt(0, 4)),
			want: []string{
				"Triangle:", "  Area: 6", "  Perimeter: 12", "  Centroid: (1, 1.33333)",
				"  Circumradius: 2.5", "  Inradius: 1", "  Right-angled: true", "", "",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := lines(t, report.DefaultOptions(), func(r *report.Report) { r.Shape(tc.shape) })
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Shape mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestReport_ShapeErrors checks that failing metrics render as n/a with the cause.
func TestReport_ShapeErrors(t *testing.T) {
	got := lines(t, report.DefaultOptions(), func(r *report.Report) {
		r.Shape(geometry.NewEllipse(geometry.Pt(0, 0), 1, 2))
		r.Shape(geometry.NewTriangle(geometry.Pt(0, 0), geometry.Pt(1, 0), geometry.Pt(2, 0)))
	})
	assert.Contains(t, got, "  Eccentricity: n/a (Eccentricity: geometry: invalid argument)")
	assert.Contains(t, got, "  Focal distance: n/a (FocalDistance: Eccentricity: geometry: invalid argument)")
	assert.Contains(t, got, "  Circumradius: n/a (Circumradius: geometry: degenerate shape)")
	assert.Contains(t, got, "  Inradius: 0")
}

func TestReport_Sections(t *testing.T) {
	got := lines(t, report.DefaultOptions(), func(r *report.Report) {
		r.Title("Demo")
		r.CircleAnalysis(geometry.NewCircle(geometry.Pt(5, 5), 10), math.Pi/4, math.Pi/2)
		r.Coordinates([]string{"x=1", "y=2"})
		r.Constants()
		r.Sequence("Fibonacci sequence", []int{0, 1, 1, 2})
		r.Total(16852.798308816)
	})
	want := []string{
		"=== Demo ===",
		"",
		"Circle Analysis:",
		"  Sector area (π/4 rad): 39.2699",
		"  Arc length (π/2 rad): 15.708",
		"",
		"Parsed coordinates:",
		"  x=1",
		"  y=2",
		"",
		"=== Mathematical Constants ===",
		"",
		"π = 3.14159",
		"e = 2.71828",
		"φ (Golden Ratio) = 1.61803",
		"φ² = 2.61803 ≈ φ + 1",
		"",
		"Fibonacci sequence: 0 1 1 2",
		"",
		"Total area of all shapes: 16852.8",
		"",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestReport_Precision(t *testing.T) {
	got := lines(t, report.Options{Precision: 3}, func(r *report.Report) { r.Total(314.159265) })
	assert.Equal(t, "Total area of all shapes: 314", got[0])

	got = lines(t, report.Options{}, func(r *report.Report) { r.Total(314.159265) })
	assert.Equal(t, "Total area of all shapes: 314.159", got[0], "zero precision falls back to default")
}

func TestReport_NonFractionAngle(t *testing.T) {
	got := lines(t, report.DefaultOptions(), func(r *report.Report) {
		r.CircleAnalysis(geometry.NewCircle(geometry.Pt(0, 0), 1), 1, math.Pi)
	})
	assert.Equal(t, "  Sector area (1 rad): 0.5", got[1])
	assert.Equal(t, "  Arc length (π rad): 3.14159", got[2])
}

type failWriter struct{ calls int }

func (f *failWriter) Write(p []byte) (int, error) {
	f.calls++

	return 0, errors.New("disk full")
}

// TestReport_StickyError verifies that the first write error stops further writes.
func TestReport_StickyError(t *testing.T) {
	fw := &failWriter{}
	r := report.New(fw, report.DefaultOptions())
	r.Title("x")
	r.Constants()
	r.Total(1)

	assert.EqualError(t, r.Err(), "disk full")
	assert.Equal(t, 1, fw.calls)
}
