package lookup

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/deitnotify/nutrisearch/internal/utils"
	"github.com/deitnotify/nutrisearch/pkg/dataset"
)

// majorNutrients are always printed first, in this order.
var majorNutrients = []string{"Caloric Value", "Protein", "Fat", "Carbohydrates", "Sugars"}

// artifactFields are bookkeeping columns left behind by earlier exports.
var artifactFields = map[string]bool{
	"index":             true,
	"level_0":           true,
	"id":                true,
	"Nutrition Density": true,
}

// MajorNutrients returns the fixed major nutrient names in display order.
func MajorNutrients() []string {
	return slices.Clone(majorNutrients)
}

// IsArtifact reports whether field is a non-nutrient column, including
// the "Unnamed: N" columns produced for blank header cells.
func IsArtifact(field string) bool {
	return artifactFields[field] || strings.HasPrefix(field, "Unnamed")
}

// Nutrient is one formatted profile line.
type Nutrient struct {
	Name string
	// Value is meaningful only when Numeric is true.
	Value   float64
	Numeric bool
	// Missing marks an empty cell; Raw is then "".
	Missing bool
	Raw     string
	Unit    string
}

// FormatValue renders the value part: two decimals when numeric, the raw
// cell otherwise, "n/a" when missing.
func (n Nutrient) FormatValue() string {
	switch {
	case n.Numeric:
		return strconv.FormatFloat(n.Value, 'f', 2, 64)
	case n.Missing:
		return "n/a"
	}
	return n.Raw
}

// String renders "<name>: <value> <unit>", without a trailing space when
// there is no unit.
func (n Nutrient) String() string {
	return n.Name + ": " + utils.JoinNonEmpty(" ", n.FormatValue(), n.Unit)
}

// Profile is the nutrient breakdown of one record.
type Profile struct {
	Food   string
	Majors []Nutrient
	Others []Nutrient
	// Top is the cap the Others section was computed with.
	Top int
	// DetailErr explains an empty Others section.
	DetailErr error
}

// Profile builds the nutrient breakdown of rec. It never fails; problems
// with the detailed section are reported through DetailErr.
func (e *Engine) Profile(rec dataset.Record) Profile {
	p := Profile{Food: rec.Food(), Top: e.opts.TopOthers}

	for _, name := range majorNutrients {
		v, ok := rec.Get(name)
		if !ok {
			continue
		}
		p.Majors = append(p.Majors, e.major(name, v))
	}
	p.Others, p.DetailErr = e.rankOthers(rec)
	return p
}

func (e *Engine) major(name string, v dataset.Value) Nutrient {
	n := Nutrient{Name: name, Raw: v.String(), Unit: e.opts.Units.Unit(name)}
	switch f, ok := v.Float(); {
	case ok:
		n.Value, n.Numeric = f, true
	case v.IsMissing():
		n.Missing, n.Raw = true, ""
	}
	return n
}

// rankOthers coerces every remaining nutrient column to a number, treating
// unparseable cells as zero, keeps positive values and returns the largest
// TopOthers of them. Ties keep column order.
func (e *Engine) rankOthers(rec dataset.Record) ([]Nutrient, error) {
	var ranked []Nutrient
	for _, field := range rec.Fields() {
		if field == dataset.FoodColumn || slices.Contains(majorNutrients, field) || IsArtifact(field) {
			continue
		}
		v, _ := rec.Get(field)
		f := v.FloatOr(0)
		if f <= 0 {
			continue
		}
		ranked = append(ranked, Nutrient{
			Name:    field,
			Value:   f,
			Numeric: true,
			Raw:     v.String(),
			Unit:    e.opts.Units.Unit(field),
		})
	}
	if len(ranked) == 0 {
		return nil, ErrNoDetail
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	if len(ranked) > e.opts.TopOthers {
		ranked = ranked[:e.opts.TopOthers]
	}
	return ranked, nil
}

// String renders the profile as the text block shown to the user.
func (p Profile) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Nutritional Facts for '%s' ---\n", p.Food)

	b.WriteString("\n[Major Nutrients]\n")
	for _, n := range p.Majors {
		b.WriteString(n.String())
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\n[Detailed Profile (Top %d others)]\n", p.Top)
	if p.DetailErr != nil {
		fmt.Fprintf(&b, "(Could not display detailed profile: %v)\n", p.DetailErr)
		return b.String()
	}
	for _, n := range p.Others {
		b.WriteString(n.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Display formats the profile of rec.
func (e *Engine) Display(rec dataset.Record) string {
	return e.Profile(rec).String()
}
