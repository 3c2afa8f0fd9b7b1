// SPDX-License-Identifier: MIT

package geometry

// Kind enumerates the closed set of shape variants.
type Kind int

const (
	// KindCircle identifies Circle.
	KindCircle Kind = iota
	// KindEllipse identifies Ellipse.
	KindEllipse
	// KindRectangle identifies Rectangle.
	KindRectangle
	// KindTriangle identifies Triangle.
	KindTriangle
)

// String returns the display name of the variant.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "Circle"
	case KindEllipse:
		return "Ellipse"
	case KindRectangle:
		return "Rectangle"
	case KindTriangle:
		return "Triangle"
	default:
		return "Unknown"
	}
}

// Shape is the capability every variant answers.
//
// All methods are pure queries: calling them any number of times yields
// identical results and never mutates the receiver.
//
//   - Area      — enclosed area, ≥ 0.
//   - Perimeter — boundary length, ≥ 0.
//   - Centroid  — geometric center.
//   - Name      — display name, constant per variant.
//   - Kind      — variant tag for exhaustive switches.
//   - Validate  — nil if the parameters lie in the expected domain.
type Shape interface {
	Area() float64
	Perimeter() float64
	Centroid() Point
	Name() string
	Kind() Kind
	Validate() error
}

var (
	_ Shape = Circle{}
	_ Shape = Ellipse{}
	_ Shape = Rectangle{}
	_ Shape = Triangle{}
)
