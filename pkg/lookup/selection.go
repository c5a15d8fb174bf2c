package lookup

import (
	"errors"
	"strconv"
	"strings"

	"github.com/deitnotify/nutrisearch/internal/utils"
	"github.com/deitnotify/nutrisearch/pkg/dataset"
)

// Selection is the outcome of Disambiguate: either an exact match or a
// menu of candidates.
type Selection struct {
	// Exact is set when Record was picked without a menu.
	Exact  bool
	Record dataset.Record

	// Menu holds the selectable candidates, numbered from 1.
	Menu []dataset.Record
	// Overflow counts matches beyond the menu that are not selectable.
	Overflow int
	// Total is the number of matches.
	Total int
}

// Disambiguate turns search results into a Selection. A single match whose
// name equals query (ignoring case) is selected directly; anything else
// becomes a menu of at most MenuLimit entries. No matches is a
// *NoMatchError.
func (e *Engine) Disambiguate(matches []dataset.Record, query string) (Selection, error) {
	if len(matches) == 0 {
		return Selection{}, &NoMatchError{Query: strings.TrimSpace(query)}
	}

	sel := Selection{Total: len(matches)}
	if len(matches) == 1 && utils.EqualFold(matches[0].Food(), query) {
		sel.Exact = true
		sel.Record = matches[0]
		return sel, nil
	}

	n := min(len(matches), e.opts.MenuLimit)
	sel.Menu = matches[:n:n]
	sel.Overflow = len(matches) - n
	return sel, nil
}

// Choose resolves a menu answer. "0" cancels and returns ok == false with
// a nil error. Answers that are not digits, or fall outside the menu,
// return an *InvalidSelectionError.
func (s Selection) Choose(input string) (rec dataset.Record, ok bool, err error) {
	input = strings.TrimSpace(input)
	if !utils.IsOnlyNumbers(input) {
		return dataset.Record{}, false, s.invalid(input, ErrNotANumber)
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return dataset.Record{}, false, s.invalid(input, ErrOutOfRange)
		}
		return dataset.Record{}, false, s.invalid(input, ErrNotANumber)
	}

	switch {
	case n == 0:
		return dataset.Record{}, false, nil
	case n > len(s.Menu):
		return dataset.Record{}, false, s.invalid(input, ErrOutOfRange)
	}
	return s.Menu[n-1], true, nil
}

func (s Selection) invalid(input string, err error) *InvalidSelectionError {
	return &InvalidSelectionError{Input: input, Max: len(s.Menu), Err: err}
}
