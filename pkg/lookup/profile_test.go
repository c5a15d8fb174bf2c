package lookup

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplay_Majors(t *testing.T) {
	table := newTable(t,
		[]string{"food", "Caloric Value", "Protein", "Carbohydrates", "Fat", "Zinc"},
		[]string{"Egg", "150.456", "", "10", "trace", "5.2"},
	)
	engine := NewEngine(table, DefaultOptions())
	rec, _ := table.Row(0)

	out := engine.Display(rec)

	assert.Contains(t, out, "--- Nutritional Facts for 'Egg' ---")
	assert.Contains(t, out, "Caloric Value: 150.46 kcal\n")
	assert.Contains(t, out, "Protein: n/a g\n")
	assert.Contains(t, out, "Carbohydrates: 10.00 g\n")
	assert.Contains(t, out, "Fat: trace g\n")
	assert.NotContains(t, out, "Sugars")

	// majors keep the fixed order regardless of column order
	assert.Less(t, strings.Index(out, "Protein:"), strings.Index(out, "Fat:"))
	assert.Less(t, strings.Index(out, "Fat:"), strings.Index(out, "Carbohydrates:"))
}

func TestProfile_Others(t *testing.T) {
	table := newTable(t,
		[]string{"Unnamed: 0", "index", "food", "Iron", "Zinc", "Unnamed", "Nutrition Density", "Protein"},
		[]string{"7", "1", "Oyster", "0", "5.2", "3", "88", "9"},
	)
	engine := NewEngine(table, DefaultOptions())
	rec, _ := table.Row(0)

	p := engine.Profile(rec)
	require.NoError(t, p.DetailErr)
	require.Len(t, p.Others, 1)
	assert.Equal(t, "Zinc: 5.20 mg", p.Others[0].String())

	out := p.String()
	assert.Contains(t, out, "Zinc: 5.20 mg")
	assert.NotContains(t, out, "Iron")
	assert.NotContains(t, out, "Unnamed")
	assert.NotContains(t, out, "index")
	assert.NotContains(t, out, "Nutrition Density")
	// majors are never repeated in the detail section
	assert.Equal(t, 1, strings.Count(out, "Protein"))
}

func TestProfile_OthersRankingAndCap(t *testing.T) {
	columns := []string{"food"}
	row := []string{"Kale"}
	for i := 1; i <= 14; i++ {
		columns = append(columns, fmt.Sprintf("N%02d", i))
		row = append(row, fmt.Sprintf("%d", i))
	}
	columns = append(columns, "Text", "Negative", "Tie")
	row = append(row, "abc", "-4", "14")

	table := newTable(t, columns, row)
	engine := NewEngine(table, DefaultOptions())
	rec, _ := table.Row(0)

	p := engine.Profile(rec)
	require.Len(t, p.Others, 10)

	var names []string
	for _, n := range p.Others {
		names = append(names, n.Name)
	}
	// strictly descending, ties keep column order
	assert.Equal(t, []string{"N14", "Tie", "N13", "N12", "N11", "N10", "N09", "N08", "N07", "N06"}, names)
	assert.Equal(t, "N14: 14.00", p.Others[0].String())
	assert.Contains(t, p.String(), "[Detailed Profile (Top 10 others)]")
}

func TestProfile_TopOthersOption(t *testing.T) {
	table := newTable(t,
		[]string{"food", "Iron", "Zinc", "Copper"},
		[]string{"Liver", "6.5", "4", "9.8"},
	)
	engine := NewEngine(table, Options{TopOthers: 2})
	rec, _ := table.Row(0)

	p := engine.Profile(rec)
	require.Len(t, p.Others, 2)
	assert.Equal(t, "Copper", p.Others[0].Name)
	assert.Equal(t, "Iron", p.Others[1].Name)
	assert.Contains(t, p.String(), "Top 2 others")
}

func TestProfile_DegradesWithoutDetail(t *testing.T) {
	table := newTable(t,
		[]string{"food", "Caloric Value", "Iron", "Notes"},
		[]string{"Water", "0", "", "still"},
	)
	engine := NewEngine(table, DefaultOptions())
	rec, _ := table.Row(0)

	p := engine.Profile(rec)
	assert.ErrorIs(t, p.DetailErr, ErrNoDetail)
	assert.Empty(t, p.Others)

	out := engine.Display(rec)
	assert.Contains(t, out, "Caloric Value: 0.00 kcal")
	assert.Contains(t, out, "(Could not display detailed profile: no additional nutrient values)")
}

func TestNutrient_String(t *testing.T) {
	assert.Equal(t, "Water: 1.50 g", Nutrient{Name: "Water", Value: 1.5, Numeric: true, Unit: "g"}.String())
	assert.Equal(t, "Vitamin K: 0.12", Nutrient{Name: "Vitamin K", Value: 0.123, Numeric: true}.String())
	assert.Equal(t, "Sugars: n/a", Nutrient{Name: "Sugars", Missing: true}.String())
	assert.Equal(t, "Fat: ? g", Nutrient{Name: "Fat", Raw: "?", Unit: "g"}.String())
}

func TestIsArtifact(t *testing.T) {
	for _, f := range []string{"index", "level_0", "id", "Nutrition Density", "Unnamed: 0", "Unnamed"} {
		assert.True(t, IsArtifact(f), f)
	}
	for _, f := range []string{"Iron", "Index", "Vitamin A", "identity"} {
		assert.False(t, IsArtifact(f), f)
	}
	assert.Equal(t, []string{"Caloric Value", "Protein", "Fat", "Carbohydrates", "Sugars"}, MajorNutrients())
}
