package repository

import "cooked-flow/internal/model"

// CreateRecipeOptions holds one recipe to store, fully parsed.
type CreateRecipeOptions struct {
	Recipe model.Recipe
}

// ListUnparsedIngredientsOptions pages the re-normalization scan.
type ListUnparsedIngredientsOptions struct {
	Limit  int
	Offset int
}

// UpdateIngredientParseOptions writes back one re-parsed row.
type UpdateIngredientParseOptions struct {
	RecipeID    string
	Position    int
	Quantity    *float64
	Unit        string
	Name        string
	PackageQty  *float64
	PackageUnit string
}
