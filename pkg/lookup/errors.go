package lookup

import (
	"errors"
	"fmt"
)

var (
	// ErrNotANumber indicates a menu answer that is not a non-negative integer
	ErrNotANumber = errors.New("invalid input")

	// ErrOutOfRange indicates a menu answer outside the listed items
	ErrOutOfRange = errors.New("invalid selection")

	// ErrNoDetail indicates a record has no positive nutrient outside the majors
	ErrNoDetail = errors.New("no additional nutrient values")
)

// NoMatchError is returned when a search yields no rows.
type NoMatchError struct {
	Query string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no results found for '%s'", e.Query)
}

// InvalidSelectionError is returned for a rejected menu answer. Err is
// ErrNotANumber or ErrOutOfRange.
type InvalidSelectionError struct {
	Input string
	Max   int
	Err   error
}

func (e *InvalidSelectionError) Error() string {
	if errors.Is(e.Err, ErrOutOfRange) {
		return fmt.Sprintf("%v: %q is not between 0 and %d", e.Err, e.Input, e.Max)
	}
	return fmt.Sprintf("%v: %q is not a number", e.Err, e.Input)
}

func (e *InvalidSelectionError) Unwrap() error {
	return e.Err
}
