package lookup

// UnitTable maps a nutrient column to its unit label. Columns without an
// entry are printed without a unit.
type UnitTable map[string]string

// defaultUnits is never mutated; DefaultUnits hands out copies.
var defaultUnits = UnitTable{
	"Caloric Value":        "kcal",
	"Protein":              "g",
	"Fat":                  "g",
	"Saturated Fats":       "g",
	"Monounsaturated Fats": "g",
	"Polyunsaturated Fats": "g",
	"Carbohydrates":        "g",
	"Sugars":               "g",
	"Dietary Fiber":        "g",
	"Water":                "g",
	"Cholesterol":          "mg",
	"Sodium":               "mg",
	"Calcium":              "mg",
	"Magnesium":            "mg",
	"Potassium":            "mg",
	"Phosphorus":           "mg",
	"Iron":                 "mg",
	"Zinc":                 "mg",
	"Copper":               "mg",
	"Manganese":            "mg",
	"Vitamin C":            "mg",
	"Vitamin B6":           "mg",
	"Vitamin E":            "mg",
}

// DefaultUnits returns a copy of the built-in unit table.
func DefaultUnits() UnitTable {
	units := make(UnitTable, len(defaultUnits))
	for k, v := range defaultUnits {
		units[k] = v
	}
	return units
}

// Unit returns the unit label for field, "" when unknown.
func (u UnitTable) Unit(field string) string {
	return u[field]
}
