// SPDX-License-Identifier: MIT

package geometry

// TotalArea folds the areas of shapes in order. An empty slice yields 0.
//
// S may be the Shape interface itself or any concrete variant, so both
// []Shape and []Rectangle are accepted.
func TotalArea[S Shape](shapes []S) float64 {
	total := 0.0
	for _, s := range shapes {
		total += s.Area()
	}

	return total
}

// TotalPerimeter folds the perimeters of shapes in order.
func TotalPerimeter[S Shape](shapes []S) float64 {
	total := 0.0
	for _, s := range shapes {
		total += s.Perimeter()
	}

	return total
}
