/*
Package lookup implements search and display over a dataset.Table.

An Engine answers three questions for the interactive session and the IPC
server alike:

	matches := engine.Search("egg")            // case-insensitive substring scan
	sel, err := engine.Disambiguate(matches, "egg")
	fmt.Print(engine.Display(record))          // majors + ranked detail

Search is a plain linear scan over the pre-folded food names, so results
always come back in table order and repeated calls return the same slice
contents. Disambiguate auto-selects a single exact match and otherwise
builds a capped, 1-indexed menu where 0 cancels. Display prints the five
major nutrients in a fixed order followed by the highest remaining
positive values, with units from a UnitTable.
*/
package lookup

import (
	"strings"

	"github.com/deitnotify/nutrisearch/internal/utils"
	"github.com/deitnotify/nutrisearch/pkg/dataset"
)

// Options tunes the engine. Non-positive limits and a nil unit table
// fall back to the defaults.
type Options struct {
	// MenuLimit caps the selectable menu entries.
	MenuLimit int
	// TopOthers caps the detailed profile entries.
	TopOthers int
	Units     UnitTable
}

// DefaultOptions returns a 15 entry menu, a top 10 detail section and the
// built-in units.
func DefaultOptions() Options {
	return Options{
		MenuLimit: 15,
		TopOthers: 10,
		Units:     DefaultUnits(),
	}
}

// Engine searches and formats records of one read-only table.
type Engine struct {
	table *dataset.Table
	opts  Options
}

// NewEngine creates an engine over table.
func NewEngine(table *dataset.Table, opts Options) *Engine {
	def := DefaultOptions()
	if opts.MenuLimit <= 0 {
		opts.MenuLimit = def.MenuLimit
	}
	if opts.TopOthers <= 0 {
		opts.TopOthers = def.TopOthers
	}
	if opts.Units == nil {
		opts.Units = def.Units
	}
	return &Engine{table: table, opts: opts}
}

// Table returns the table the engine reads from.
func (e *Engine) Table() *dataset.Table {
	return e.table
}

// Options returns the effective options.
func (e *Engine) Options() Options {
	return e.opts
}

// Search returns, in table order, every record whose food name contains
// query, ignoring case and surrounding whitespace. A blank query returns
// nil without scanning. Rows without a name never match.
func (e *Engine) Search(query string) []dataset.Record {
	q := utils.FoldCase(query)
	if q == "" {
		return nil
	}

	var matches []dataset.Record
	for id := 0; id < e.table.Len(); id++ {
		name := e.table.FoldedName(id)
		if name == "" || !strings.Contains(name, q) {
			continue
		}
		rec, _ := e.table.Row(id)
		matches = append(matches, rec)
	}
	return matches
}
