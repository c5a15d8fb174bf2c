/*
Package dataset holds the in-memory nutrition table and its loader.

A Table is built once from a delimited file and never mutated afterwards.
Rows keep their source order and are addressed by a 0-based id. Each row
is exposed as a Record, a lightweight view that reads cells by column name
and hands back raw Values; numeric coercion is left to the caller.

	table, err := dataset.Load("dataset/combined_food_data.csv", dataset.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}
	rec, _ := table.Row(0)
	kcal, ok := rec.Get("Caloric Value")

Besides positional access the table keeps a Patricia trie over the
case-folded food names, used for exact-name lookups and name completion.
*/
package dataset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/deitnotify/nutrisearch/internal/utils"
	"github.com/tchap/go-patricia/v2/patricia"
)

// FoodColumn is the name of the required display-name column.
const FoodColumn = "food"

// Table is the read-only nutrition table.
type Table struct {
	columns  []string
	colIndex map[string]int
	rows     [][]string
	names    []string
	folded   []string
	index    *patricia.Trie
	foodCol  int
}

// NewTable builds a table from column names and row cells. Rows shorter
// than the header are padded with missing cells; longer rows are rejected.
// The rows slice is retained, not copied.
func NewTable(columns []string, rows [][]string) (*Table, error) {
	t := &Table{
		columns:  slices.Clone(columns),
		colIndex: make(map[string]int, len(columns)),
		rows:     rows,
		names:    make([]string, len(rows)),
		folded:   make([]string, len(rows)),
		index:    patricia.NewTrie(),
	}

	for i, name := range columns {
		if _, dup := t.colIndex[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		t.colIndex[name] = i
	}
	foodCol, ok := t.colIndex[FoodColumn]
	if !ok {
		return nil, ErrMissingFoodColumn
	}
	t.foodCol = foodCol

	for id, row := range rows {
		if len(row) > len(columns) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d: %w",
				id, len(row), len(columns), ErrInvalidCSV)
		}
		if len(row) < len(columns) {
			padded := make([]string, len(columns))
			copy(padded, row)
			rows[id] = padded
			row = padded
		}

		name := Value(row[foodCol])
		if name.IsMissing() {
			continue
		}
		t.names[id] = name.String()
		t.folded[id] = utils.FoldCase(t.names[id])
		t.indexName(t.folded[id], id)
	}
	return t, nil
}

func (t *Table) indexName(key string, id int) {
	prefix := patricia.Prefix(key)
	if item := t.index.Get(prefix); item != nil {
		t.index.Set(prefix, append(item.([]int), id))
		return
	}
	t.index.Insert(prefix, []int{id})
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the column names in header order.
func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colIndex[name]
	return ok
}

// Row returns the record with the given id.
func (t *Table) Row(id int) (Record, bool) {
	if id < 0 || id >= len(t.rows) {
		return Record{}, false
	}
	return Record{table: t, id: id}, true
}

// FoldedName returns the trimmed, case-folded food name of row id, or ""
// when the row has no name.
func (t *Table) FoldedName(id int) string {
	return t.folded[id]
}

// Lookup returns every row whose food name equals name, ignoring case and
// surrounding whitespace, in table order.
func (t *Table) Lookup(name string) []Record {
	key := utils.FoldCase(name)
	if key == "" {
		return nil
	}
	item := t.index.Get(patricia.Prefix(key))
	if item == nil {
		return nil
	}
	ids := item.([]int)
	records := make([]Record, len(ids))
	for i, id := range ids {
		records[i] = Record{table: t, id: id}
	}
	return records
}

// Complete returns up to limit distinct food names starting with prefix,
// ignoring case, sorted by folded name. limit <= 0 means no limit.
func (t *Table) Complete(prefix string, limit int) []string {
	key := utils.FoldCase(prefix)
	if key == "" {
		return nil
	}

	var keys []string
	var names []string
	visit := func(p patricia.Prefix, item patricia.Item) error {
		keys = append(keys, string(p))
		names = append(names, t.names[item.([]int)[0]])
		return nil
	}
	if err := t.index.VisitSubtree(patricia.Prefix(key), visit); err != nil {
		return nil
	}

	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return strings.Compare(keys[a], keys[b])
	})
	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}
	sorted := make([]string, len(order))
	for i, o := range order {
		sorted[i] = names[o]
	}
	return sorted
}

// Record is a view onto one table row.
type Record struct {
	table *Table
	id    int
}

// ID returns the 0-based row id.
func (r Record) ID() int {
	return r.id
}

// Food returns the trimmed display name, "" when the cell is missing.
func (r Record) Food() string {
	return r.table.names[r.id]
}

// Get returns the cell for field. ok is false when the table has no such
// column; a present but empty cell is a missing Value.
func (r Record) Get(field string) (Value, bool) {
	col, ok := r.table.colIndex[field]
	if !ok {
		return "", false
	}
	return Value(r.table.rows[r.id][col]), true
}

// Fields returns the column names of the record in header order.
func (r Record) Fields() []string {
	return r.table.Columns()
}
