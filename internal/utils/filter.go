package utils

import (
	"strings"
	"unicode"
)

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsOneOf reports whether s matches any of the tokens, ignoring case and
// surrounding whitespace.
func IsOneOf(s string, tokens ...string) bool {
	s = strings.TrimSpace(s)
	for _, tok := range tokens {
		if strings.EqualFold(s, tok) {
			return true
		}
	}
	return false
}
