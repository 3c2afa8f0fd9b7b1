// SPDX-License-Identifier: MIT

package pattern

import "regexp"

var assignmentRE = regexp.MustCompile(`([A-Za-z_]\w*)\s*=\s*(\d+(?:\.\d+)?)`)

// Assignment is one matched name/value pair, both kept as written.
type Assignment struct {
	Name  string
	Value string
}

// String returns the normalized "name=value" form.
func (a Assignment) String() string {
	return a.Name + "=" + a.Value
}

// FindAssignments returns every assignment in input in order of appearance.
// The result is empty, not nil, when nothing matches.
func FindAssignments(input string) []Assignment {
	groups := assignmentRE.FindAllStringSubmatch(input, -1)
	out := make([]Assignment, 0, len(groups))
	for _, g := range groups {
		out = append(out, Assignment{Name: g[1], Value: g[2]})
	}

	return out
}

// Extract returns the normalized "name=value" strings found in input, with
// whitespace around "=" removed.
//
//	Extract("x=123 y = 456 radius=789") → ["x=123" "y=456" "radius=789"]
func Extract(input string) []string {
	found := FindAssignments(input)
	out := make([]string, len(found))
	for i, a := range found {
		out[i] = a.String()
	}

	return out
}
