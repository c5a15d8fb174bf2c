package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldCase trims s and returns its case-folded form, suitable for
// caseless comparisons and substring tests.
// A new Caser is built per call since cases.Caser keeps internal state.
func FoldCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal after trimming and case folding.
func EqualFold(a, b string) bool {
	return FoldCase(a) == FoldCase(b)
}
