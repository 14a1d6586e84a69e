package supabase

import (
	"context"
	"strings"
	"time"

	repo "cooked-flow/internal/recipe/repository"
)

// PostgREST row shapes. Ingredients live in their own table; directions are
// stored as a JSON array column on the recipe row.
type recipeRow struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	CanonicalTitle string    `json:"canonical_title"`
	Fingerprint    string    `json:"fingerprint"`
	Source         string    `json:"source"`
	Link           string    `json:"link"`
	Directions     []string  `json:"directions"`
	CreatedAt      time.Time `json:"created_at"`
}

type ingredientRow struct {
	RecipeID    string   `json:"recipe_id"`
	Position    int      `json:"position"`
	RawLine     string   `json:"raw_line"`
	Quantity    *float64 `json:"quantity"`
	Unit        string   `json:"unit"`
	Name        string   `json:"name"`
	PackageQty  *float64 `json:"package_qty"`
	PackageUnit string   `json:"package_unit"`
}

// CreateRecipesBatch stores a chunk of recipes with their ingredients. Two
// bulk calls per chunk; PostgREST has no cross-table transaction, so an
// ingredient failure leaves the recipes in place and is surfaced as an error.
func (r *implRepository) CreateRecipesBatch(ctx context.Context, opts []repo.CreateRecipeOptions) error {
	if len(opts) == 0 {
		return nil
	}

	recipes := make([]recipeRow, 0, len(opts))
	var ingredients []ingredientRow
	for _, opt := range opts {
		rec := opt.Recipe
		directions := rec.Directions
		if directions == nil {
			directions = []string{}
		}
		recipes = append(recipes, recipeRow{
			ID:             rec.ID,
			Title:          rec.Title,
			CanonicalTitle: rec.CanonicalTitle,
			Fingerprint:    rec.Fingerprint,
			Source:         rec.Source,
			Link:           rec.Link,
			Directions:     directions,
			CreatedAt:      rec.CreatedAt,
		})
		for _, ing := range rec.Ingredients {
			ingredients = append(ingredients, ingredientRow{
				RecipeID:    rec.ID,
				Position:    ing.Position,
				RawLine:     ing.RawLine,
				Quantity:    ing.Quantity,
				Unit:        ing.Unit,
				Name:        ing.Name,
				PackageQty:  ing.PackageQty,
				PackageUnit: ing.PackageUnit,
			})
		}
	}

	if err := r.client.Upsert(ctx, "recipes", "fingerprint", recipes); err != nil {
		r.l.Errorf(ctx, "%s recipes: %v", r.dsn("CreateRecipesBatch"), err)
		return repo.ErrFailedToInsert
	}
	if len(ingredients) > 0 {
		if err := r.client.Insert(ctx, "recipe_ingredients", ingredients); err != nil {
			r.l.Errorf(ctx, "%s ingredients: %v", r.dsn("CreateRecipesBatch"), err)
			return repo.ErrFailedToInsert
		}
	}
	return nil
}

// ExistingFingerprints reports which fingerprints are already stored.
func (r *implRepository) ExistingFingerprints(ctx context.Context, fingerprints []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(fingerprints))
	if len(fingerprints) == 0 {
		return existing, nil
	}

	params := map[string]string{
		"select":      "fingerprint",
		"fingerprint": "in.(" + strings.Join(fingerprints, ",") + ")",
	}
	var rows []struct {
		Fingerprint string `json:"fingerprint"`
	}
	if err := r.client.Select(ctx, "recipes", params, 0, 0, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ExistingFingerprints"), err)
		return nil, repo.ErrFailedToQuery
	}
	for _, row := range rows {
		existing[row.Fingerprint] = true
	}
	return existing, nil
}

// Purge deletes all stored recipes; ingredients cascade on the foreign key.
func (r *implRepository) Purge(ctx context.Context) error {
	// PostgREST refuses an unfiltered delete, so match every row explicitly.
	if err := r.client.Delete(ctx, "recipes", map[string]string{"id": "not.is.null"}); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Purge"), err)
		return repo.ErrFailedToPurge
	}
	return nil
}

// ListUnparsedIngredients pages through rows whose parsed fields are all
// empty.
func (r *implRepository) ListUnparsedIngredients(ctx context.Context, opt repo.ListUnparsedIngredientsOptions) ([]repo.StoredIngredient, error) {
	params := map[string]string{
		"quantity": "is.null",
		"unit":     "eq.",
		"name":     "eq.",
		"order":    "recipe_id.asc,position.asc",
	}
	var rows []ingredientRow
	if err := r.client.Select(ctx, "recipe_ingredients", params, opt.Limit, opt.Offset, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUnparsedIngredients"), err)
		return nil, repo.ErrFailedToQuery
	}

	out := make([]repo.StoredIngredient, 0, len(rows))
	for _, row := range rows {
		s := repo.StoredIngredient{RecipeID: row.RecipeID}
		s.Ingredient.Position = row.Position
		s.Ingredient.RawLine = row.RawLine
		s.Ingredient.Quantity = row.Quantity
		s.Ingredient.Unit = row.Unit
		s.Ingredient.Name = row.Name
		s.Ingredient.PackageQty = row.PackageQty
		s.Ingredient.PackageUnit = row.PackageUnit
		out = append(out, s)
	}
	return out, nil
}

// UpdateIngredientParse writes back the re-parsed fields of one row.
func (r *implRepository) UpdateIngredientParse(ctx context.Context, opt repo.UpdateIngredientParseOptions) error {
	// raw_line is deliberately absent from the payload; PostgREST keeps the
	// stored value for columns a merge upsert does not mention.
	rows := []map[string]interface{}{{
		"recipe_id":    opt.RecipeID,
		"position":     opt.Position,
		"quantity":     opt.Quantity,
		"unit":         opt.Unit,
		"name":         opt.Name,
		"package_qty":  opt.PackageQty,
		"package_unit": opt.PackageUnit,
	}}
	if err := r.client.Upsert(ctx, "recipe_ingredients", "recipe_id,position", rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateIngredientParse"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
