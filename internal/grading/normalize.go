// Package grading implements answer validation, shuffling and scoring.
//
// Every function in this package is pure and safe for concurrent use:
// nothing here holds state between calls.
package grading

import "strings"

// Normalize canonicalizes an answer for comparison.
// Two answers are equal for grading iff their normalized forms are identical.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
