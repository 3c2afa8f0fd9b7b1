// SPDX-License-Identifier: MIT

package geometry

import (
	"math"
	"sort"
)

// Triangle is defined by three vertices. Collinear vertices are allowed and
// yield zero area.
type Triangle struct {
	a, b, c Point
}

// NewTriangle returns the triangle with vertices a, b, c.
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{a: a, b: b, c: c}
}

// Vertices returns the three vertices in construction order.
func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.a, t.b, t.c}
}

// Sides returns the side lengths opposite a, b and c: |bc|, |ca|, |ab|.
func (t Triangle) Sides() [3]float64 {
	return [3]float64{t.b.DistanceTo(t.c), t.c.DistanceTo(t.a), t.a.DistanceTo(t.b)}
}

// Area uses the shoelace formula:
//
//	½·|ax(by−cy) + bx(cy−ay) + cx(ay−by)|
func (t Triangle) Area() float64 {
	return 0.5 * math.Abs(
		t.a.X*(t.b.Y-t.c.Y)+
			t.b.X*(t.c.Y-t.a.Y)+
			t.c.X*(t.a.Y-t.b.Y),
	)
}

// Perimeter returns |ab| + |bc| + |ca|.
func (t Triangle) Perimeter() float64 {
	return t.a.DistanceTo(t.b) + t.b.DistanceTo(t.c) + t.c.DistanceTo(t.a)
}

// Centroid returns the mean of the three vertices.
func (t Triangle) Centroid() Point {
	return t.a.Add(t.b).Add(t.c).Scale(1.0 / 3.0)
}

// Name returns "Triangle".
func (t Triangle) Name() string { return KindTriangle.String() }

// Kind returns KindTriangle.
func (t Triangle) Kind() Kind { return KindTriangle }

// Circumradius returns the radius of the circumscribed circle, abc / 4K.
//
// Errors:
//   - ErrDegenerate if the area is zero (collinear vertices).
func (t Triangle) Circumradius() (float64, error) {
	area := t.Area()
	if area == 0 {
		return 0, opErrorf("Circumradius", ErrDegenerate)
	}
	s := t.Sides()

	return (s[0] * s[1] * s[2]) / (4 * area), nil
}

// Inradius returns the radius of the inscribed circle, 2K / P.
//
// Errors:
//   - ErrDegenerate if the perimeter is zero (all vertices coincide).
func (t Triangle) Inradius() (float64, error) {
	p := t.Perimeter()
	if p == 0 {
		return 0, opErrorf("Inradius", ErrDegenerate)
	}

	return 2 * t.Area() / p, nil
}

// IsRightAngled reports whether the Pythagorean relation holds within DefaultTolerance.
func (t Triangle) IsRightAngled() bool {
	return t.IsRightAngledWithin(DefaultTolerance)
}

// IsRightAngledWithin sorts the sides ascending as s0 ≤ s1 ≤ s2 and reports
// whether |s2² − (s0² + s1²)| < tol.
func (t Triangle) IsRightAngledWithin(tol float64) bool {
	s := t.Sides()
	sort.Float64s(s[:])

	return withinTolerance(s[2]*s[2], s[0]*s[0]+s[1]*s[1], tol)
}

// Validate checks that every vertex is finite. Degenerate triangles are valid.
func (t Triangle) Validate() error {
	return validatePoints("Triangle.Validate", t.a, t.b, t.c)
}
