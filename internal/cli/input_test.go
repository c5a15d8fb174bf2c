package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/deitnotify/nutrisearch/pkg/dataset"
	"github.com/deitnotify/nutrisearch/pkg/lookup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, names ...string) *lookup.Engine {
	t.Helper()
	rows := make([][]string, len(names))
	for i, n := range names {
		rows[i] = []string{n, "100", "12.5", "3"}
	}
	table, err := dataset.NewTable([]string{"food", "Caloric Value", "Protein", "Zinc"}, rows)
	require.NoError(t, err)
	return lookup.NewEngine(table, lookup.DefaultOptions())
}

func run(t *testing.T, engine *lookup.Engine, input string) string {
	t.Helper()
	var out bytes.Buffer
	h := NewInputHandler(engine, strings.NewReader(input), &out, true)
	require.NoError(t, h.Start())
	return out.String()
}

func TestSession_BannerAndQuit(t *testing.T) {
	for _, token := range []string{"q", "EXIT", " Quit "} {
		out := run(t, newEngine(t, "Egg"), token+"\negg\n")

		assert.Contains(t, out, "Database Loaded: 1 food items.")
		assert.Contains(t, out, "NUTRITION DATABASE SEARCH")
		assert.Contains(t, out, "Goodbye!")
		// nothing after the quit token is processed
		assert.NotContains(t, out, "Found")
	}
}

func TestSession_EndOfInput(t *testing.T) {
	out := run(t, newEngine(t, "Egg"), "")
	assert.Contains(t, out, "Goodbye!")
}

func TestSession_BlankLinesAreSkipped(t *testing.T) {
	out := run(t, newEngine(t, "Egg"), "\n   \n")
	assert.NotContains(t, out, "Found")
	assert.NotContains(t, out, "No results")
	assert.Equal(t, 3, strings.Count(out, ">> Enter food name: "))
}

func TestSession_ExactMatch(t *testing.T) {
	out := run(t, newEngine(t, "Egg", "Milk"), "EGG\nq\n")

	assert.Contains(t, out, "Found 1 matching item(s).")
	assert.Contains(t, out, "Exact match found!")
	assert.Contains(t, out, "--- Nutritional Facts for 'Egg' ---")
	assert.Contains(t, out, "Caloric Value: 100.00 kcal")
	assert.Contains(t, out, "Protein: 12.50 g")
	assert.Contains(t, out, "Zinc: 3.00 mg")
	assert.NotContains(t, out, "Select a number")
}

func TestSession_NoMatch(t *testing.T) {
	out := run(t, newEngine(t, "Egg"), "tofu\negg\n")

	assert.Contains(t, out, "No results found for 'tofu'. Try a broader term.")
	// the loop continues with the next search
	assert.Contains(t, out, "Exact match found!")
}

func TestSession_MenuSelection(t *testing.T) {
	out := run(t, newEngine(t, "Egg", "Eggplant"), "egg\n2\n")

	assert.Contains(t, out, "Found 2 matching item(s).")
	assert.Contains(t, out, "Please select an item:")
	assert.Contains(t, out, "[1] Egg\n")
	assert.Contains(t, out, "[2] Eggplant\n")
	assert.Contains(t, out, "[0] Cancel Search")
	assert.Contains(t, out, "--- Nutritional Facts for 'Eggplant' ---")
	assert.NotContains(t, out, "Exact match found!")
}

func TestSession_MenuOutcomes(t *testing.T) {
	tests := []struct {
		answer string
		want   string
	}{
		{"0", "Search cancelled."},
		{"3", "Invalid selection."},
		{"two", "Invalid input."},
		{"-1", "Invalid input."},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			out := run(t, newEngine(t, "Egg", "Eggplant"), "egg\n"+tt.answer+"\nmilk\n")

			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, "Nutritional Facts")
			// the session goes back to searching
			assert.Contains(t, out, "No results found for 'milk'")
		})
	}
}

func TestSession_MenuOverflow(t *testing.T) {
	names := make([]string, 20)
	for i := range names {
		names[i] = fmt.Sprintf("Rice %02d", i+1)
	}
	out := run(t, newEngine(t, names...), "rice\n0\n")

	assert.Contains(t, out, "Found 20 matching item(s).")
	assert.Contains(t, out, "[15] Rice 15\n")
	assert.NotContains(t, out, "[16]")
	assert.NotContains(t, out, "Rice 16")
	assert.Contains(t, out, "... and 5 more.")
}

func TestSession_EndOfInputDuringSelection(t *testing.T) {
	out := run(t, newEngine(t, "Egg", "Eggplant"), "egg\n")

	assert.Contains(t, out, "Select a number: ")
	assert.Contains(t, out, "Goodbye!")
}

func TestSession_LastLineWithoutNewline(t *testing.T) {
	out := run(t, newEngine(t, "Egg", "Eggplant"), "egg\n1")
	assert.Contains(t, out, "--- Nutritional Facts for 'Egg' ---")
}

func TestSession_NoBanner(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandler(newEngine(t, "Egg"), strings.NewReader("q\n"), &out, false)
	require.NoError(t, h.Start())
	assert.NotContains(t, out.String(), "NUTRITION DATABASE SEARCH")
	assert.Contains(t, out.String(), "Database Loaded")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestSession_ReadFailure(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandler(newEngine(t, "Egg"), failingReader{}, &out, false)

	err := h.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device gone")
	assert.NotContains(t, out.String(), "Goodbye!")
}
