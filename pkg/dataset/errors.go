package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound indicates the dataset file doesn't exist
	ErrFileNotFound = errors.New("dataset file not found")

	// ErrEmptyFile indicates the file has no header row
	ErrEmptyFile = errors.New("empty dataset file")

	// ErrInvalidCSV indicates the file is not well-formed delimited text
	ErrInvalidCSV = errors.New("invalid delimited file")

	// ErrMissingFoodColumn indicates the header lacks the food name column
	ErrMissingFoodColumn = errors.New("missing food column")

	// ErrDuplicateColumn indicates two columns share a name
	ErrDuplicateColumn = errors.New("duplicate column")
)

// LoadError is returned by Load and Read. Any LoadError is fatal for the
// session: no partially loaded table is ever returned alongside it.
type LoadError struct {
	// Op is the step that failed: open, read, parse or validate.
	Op string

	// Path is the dataset file, empty when reading from a stream.
	Path string

	// Line is the 1-indexed line of the failure, 0 when unknown.
	Line int

	Err error
}

func (e *LoadError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("load dataset: %s: %s:%d: %v", e.Op, e.Path, e.Line, e.Err)
	case e.Path != "":
		return fmt.Sprintf("load dataset: %s: %s: %v", e.Op, e.Path, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("load dataset: %s: line %d: %v", e.Op, e.Line, e.Err)
	}
	return fmt.Sprintf("load dataset: %s: %v", e.Op, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(op, path string, line int, err error) *LoadError {
	return &LoadError{Op: op, Path: path, Line: line, Err: err}
}
