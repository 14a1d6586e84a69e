package model

import "time"

// Recipe is a stored recipe with its parsed ingredient lines.
type Recipe struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	CanonicalTitle string             `json:"canonical_title"`
	Fingerprint    string             `json:"fingerprint"`
	Source         string             `json:"source,omitempty"`
	Link           string             `json:"link,omitempty"`
	Directions     []string           `json:"directions"`
	Ingredients    []RecipeIngredient `json:"ingredients"`
	CreatedAt      time.Time          `json:"created_at"`
}

// RecipeIngredient is one ingredient line, raw and parsed. Quantity and
// package fields are nil when the line carried none.
type RecipeIngredient struct {
	Position    int      `json:"position"`
	RawLine     string   `json:"raw_line"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Name        string   `json:"name"`
	PackageQty  *float64 `json:"package_qty,omitempty"`
	PackageUnit string   `json:"package_unit,omitempty"`
}
