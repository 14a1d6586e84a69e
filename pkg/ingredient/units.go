package ingredient

import "strings"

// unitAliases maps spelling variants (singular, plural, abbreviated) to the
// closed set of normalized unit tokens. Lookup happens after lowercasing and
// stripping trailing periods/commas, so dotted forms ("tbsp.") need no entry.
var unitAliases = map[string]string{
	// volume
	"tsp": "tsp", "teaspoon": "tsp", "teaspoons": "tsp",
	"tbsp": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp",
	"c": "cup", "cup": "cup", "cups": "cup",
	"floz": "floz", "fl-oz": "floz",
	"pt": "pt", "pint": "pt", "pints": "pt",
	"qt": "qt", "quart": "qt", "quarts": "qt",

	// metric volume
	"ml": "ml", "milliliter": "ml", "milliliters": "ml",
	"l": "l", "liter": "l", "liters": "l", "litre": "l", "litres": "l",

	// weight
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",
	"g": "g", "gram": "g", "grams": "g",
	"kg": "kg", "kilogram": "kg", "kilograms": "kg",

	// count / container
	"stick": "stick", "sticks": "stick",
	"pkg": "pkg", "package": "pkg", "packages": "pkg",
	"box": "box", "boxes": "box",
	"can": "can", "cans": "can",
	"carton": "carton", "cartons": "carton",
	"container": "container", "containers": "container",
	"jar": "jar", "jars": "jar",
	"clove": "clove", "cloves": "clove",
	"slice": "slice", "slices": "slice",
	"bunch": "bunch", "bunches": "bunch",
	"piece": "piece", "pieces": "piece",

	"dash":  "dash",
	"pinch": "pinch",
}

// NormalizeUnitToken resolves a raw token against the unit alias table.
// Returns the normalized unit, or "" when the token is not a known unit
// (e.g. "eggs" in "2 eggs", where the token belongs to the ingredient name).
func NormalizeUnitToken(tok string) string {
	t := strings.ToLower(strings.TrimSpace(tok))
	t = strings.TrimRight(t, ",")
	t = strings.TrimRight(t, ".")
	if t == "" {
		return ""
	}
	return unitAliases[t]
}
