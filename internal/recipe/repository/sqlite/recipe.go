package sqlite

import (
	"context"
	"encoding/json"
	"strings"

	repo "cooked-flow/internal/recipe/repository"
)

// CreateRecipesBatch stores a chunk of recipes with their ingredients inside
// one transaction.
func (r *implRepository) CreateRecipesBatch(ctx context.Context, opts []repo.CreateRecipeOptions) error {
	if len(opts) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateRecipesBatch"), err)
		return repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	recipeStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO recipes (id, title, canonical_title, fingerprint, source, link, directions, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		r.l.Errorf(ctx, "%s prepare: %v", r.dsn("CreateRecipesBatch"), err)
		return repo.ErrFailedToInsert
	}
	defer recipeStmt.Close()

	ingStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO recipe_ingredients (recipe_id, position, raw_line, quantity, unit, name, package_qty, package_unit)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		r.l.Errorf(ctx, "%s prepare: %v", r.dsn("CreateRecipesBatch"), err)
		return repo.ErrFailedToInsert
	}
	defer ingStmt.Close()

	for _, opt := range opts {
		rec := opt.Recipe
		directions, err := json.Marshal(rec.Directions)
		if err != nil {
			r.l.Errorf(ctx, "%s marshal directions: %v", r.dsn("CreateRecipesBatch"), err)
			return repo.ErrFailedToInsert
		}
		if _, err := recipeStmt.ExecContext(ctx,
			rec.ID, rec.Title, rec.CanonicalTitle, rec.Fingerprint,
			rec.Source, rec.Link, string(directions), rec.CreatedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s insert recipe %q: %v", r.dsn("CreateRecipesBatch"), rec.Title, err)
			return repo.ErrFailedToInsert
		}
		for _, ing := range rec.Ingredients {
			if _, err := ingStmt.ExecContext(ctx,
				rec.ID, ing.Position, ing.RawLine, ing.Quantity,
				ing.Unit, ing.Name, ing.PackageQty, ing.PackageUnit,
			); err != nil {
				r.l.Errorf(ctx, "%s insert ingredient: %v", r.dsn("CreateRecipesBatch"), err)
				return repo.ErrFailedToInsert
			}
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateRecipesBatch"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// ExistingFingerprints reports which of the given fingerprints are already
// stored.
func (r *implRepository) ExistingFingerprints(ctx context.Context, fingerprints []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(fingerprints))
	if len(fingerprints) == 0 {
		return existing, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(fingerprints)), ",")
	args := make([]interface{}, len(fingerprints))
	for i, fp := range fingerprints {
		args[i] = fp
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT fingerprint FROM recipes WHERE fingerprint IN ("+placeholders+")", args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ExistingFingerprints"), err)
		return nil, repo.ErrFailedToQuery
	}
	defer rows.Close()

	for rows.Next() {
		var fp string
		if err := rows.Scan(&fp); err != nil {
			return nil, repo.ErrFailedToQuery
		}
		existing[fp] = true
	}
	return existing, nil
}

// Purge deletes all stored recipes; ingredients go with them via cascade.
func (r *implRepository) Purge(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM recipes"); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Purge"), err)
		return repo.ErrFailedToPurge
	}
	return nil
}

// ListUnparsedIngredients pages through rows whose parsed fields are all
// empty, the shape a failed or skipped parse leaves behind.
func (r *implRepository) ListUnparsedIngredients(ctx context.Context, opt repo.ListUnparsedIngredientsOptions) ([]repo.StoredIngredient, error) {
	const query = `
		SELECT recipe_id, position, raw_line, quantity, unit, name, package_qty, package_unit
		FROM recipe_ingredients
		WHERE quantity IS NULL AND unit = '' AND name = ''
		ORDER BY recipe_id, position
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, opt.Limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUnparsedIngredients"), err)
		return nil, repo.ErrFailedToQuery
	}
	defer rows.Close()

	var out []repo.StoredIngredient
	for rows.Next() {
		var s repo.StoredIngredient
		if err := rows.Scan(
			&s.RecipeID, &s.Ingredient.Position, &s.Ingredient.RawLine,
			&s.Ingredient.Quantity, &s.Ingredient.Unit, &s.Ingredient.Name,
			&s.Ingredient.PackageQty, &s.Ingredient.PackageUnit,
		); err != nil {
			return nil, repo.ErrFailedToQuery
		}
		out = append(out, s)
	}
	return out, nil
}

// UpdateIngredientParse writes back the re-parsed fields of one row.
func (r *implRepository) UpdateIngredientParse(ctx context.Context, opt repo.UpdateIngredientParseOptions) error {
	const query = `
		UPDATE recipe_ingredients
		SET quantity = ?, unit = ?, name = ?, package_qty = ?, package_unit = ?
		WHERE recipe_id = ? AND position = ?`

	if _, err := r.db.ExecContext(ctx, query,
		opt.Quantity, opt.Unit, opt.Name, opt.PackageQty, opt.PackageUnit,
		opt.RecipeID, opt.Position,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateIngredientParse"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
