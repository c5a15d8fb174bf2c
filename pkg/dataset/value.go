package dataset

import (
	"math"
	"strconv"
	"strings"
)

// missingTokens are the cell spellings treated as an absent measurement.
var missingTokens = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"n/a":      true,
	"NULL":     true,
	"null":     true,
	"None":     true,
	"NaN":      true,
	"nan":      true,
	"-NaN":     true,
	"-nan":     true,
}

// Value is a raw table cell. Nothing is assumed about its type until a
// caller coerces it.
type Value string

// IsMissing reports whether the cell holds no measurement.
func (v Value) IsMissing() bool {
	return missingTokens[strings.TrimSpace(string(v))]
}

// Float parses the cell as a finite number. ok is false for missing,
// non-numeric, NaN and infinite cells.
func (v Value) Float() (f float64, ok bool) {
	if v.IsMissing() {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FloatOr returns the parsed number or def when the cell is not numeric.
func (v Value) FloatOr(def float64) float64 {
	if f, ok := v.Float(); ok {
		return f
	}
	return def
}

func (v Value) String() string {
	return strings.TrimSpace(string(v))
}
