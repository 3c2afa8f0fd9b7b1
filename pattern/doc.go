// SPDX-License-Identifier: MIT

// Package pattern extracts "name = number" assignments from free text,
// e.g. coordinate strings such as "x=10 y=20 radius=5".
//
// Grammar of a single assignment:
//
//	name   = [A-Za-z_][A-Za-z0-9_]*
//	number = [0-9]+ ( "." [0-9]+ )?
//	assign = name ws* "=" ws* number
//
// Matches are reported left to right and never overlap.
package pattern
