package repository

import (
	"context"

	"cooked-flow/internal/model"
)

// Repository is the interface for recipe persistence.
type Repository interface {
	// CreateRecipesBatch stores a chunk of recipes with their ingredients.
	// The chunk is all-or-nothing where the backend supports transactions.
	CreateRecipesBatch(ctx context.Context, opts []CreateRecipeOptions) error

	// ExistingFingerprints reports which of the given fingerprints are
	// already stored.
	ExistingFingerprints(ctx context.Context, fingerprints []string) (map[string]bool, error)

	// Purge deletes all stored recipes and their ingredients.
	Purge(ctx context.Context) error

	// ListUnparsedIngredients pages through ingredient rows whose parsed
	// fields are all empty. An empty result means the pass is done.
	ListUnparsedIngredients(ctx context.Context, opt ListUnparsedIngredientsOptions) ([]StoredIngredient, error)

	// UpdateIngredientParse writes back the re-parsed fields of one row.
	UpdateIngredientParse(ctx context.Context, opt UpdateIngredientParseOptions) error
}

// StoredIngredient is one stored ingredient row keyed by its recipe.
type StoredIngredient struct {
	RecipeID   string
	Ingredient model.RecipeIngredient
}
