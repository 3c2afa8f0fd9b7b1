package pattern_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/shapelab/pattern"
	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"Coordinates", "x=123 y=456 radius=789", []string{"x=123", "y=456", "radius=789"}},
		{"Whitespace", "x = 1\ty\t=\t2", []string{"x=1", "y=2"}},
		{"Decimals", "width=2.5 height=10.25", []string{"width=2.5", "height=10.25"}},
		{"TrailingDot", "r=3.", []string{"r=3"}},
		{"Underscore", "_id=7 semi_major=50", []string{"_id=7", "semi_major=50"}},
		{"SkipNonNumeric", "name=abc x=1", []string{"x=1"}},
		{"NegativeSignIgnored", "dx=-4 dy=4", []string{"dy=4"}},
		{"NoMatches", "nothing to see here", []string{}},
		{"Empty", "", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pattern.Extract(tc.input)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Extract(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestFindAssignments(t *testing.T) {
	got := pattern.FindAssignments("cx = 5 cy=5.5")
	want := []pattern.Assignment{{Name: "cx", Value: "5"}, {Name: "cy", Value: "5.5"}}
	assert.Equal(t, want, got)
	assert.Equal(t, "cx=5", got[0].String())
	assert.NotNil(t, pattern.FindAssignments("none"))
}
