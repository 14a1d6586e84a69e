package usecase

import (
	"context"
	"fmt"

	"cooked-flow/internal/model"
	"cooked-flow/internal/recipe"
	"cooked-flow/internal/recipe/repository"
	"cooked-flow/pkg/ingredient"
)

const normalizePageSize = 500

// ReNormalize re-parses stored ingredient rows whose parsed fields are all
// empty, the residue of earlier loads. Rows that gain a parse are written
// back; rows that stay empty are skipped past.
func (uc *implUseCase) ReNormalize(ctx context.Context, sc model.Scope) (recipe.ReNormalizeOutput, error) {
	var out recipe.ReNormalizeOutput

	// Updated rows drop out of the unparsed predicate, so the offset only
	// advances past rows that stayed empty.
	offset := 0
	for {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if err := uc.limiter.Wait(ctx); err != nil {
			return out, err
		}

		page, err := uc.repo.ListUnparsedIngredients(ctx, repository.ListUnparsedIngredientsOptions{
			Limit:  normalizePageSize,
			Offset: offset,
		})
		if err != nil {
			return out, fmt.Errorf("failed to list unparsed ingredients: %w", err)
		}
		if len(page) == 0 {
			break
		}

		for _, row := range page {
			out.Scanned++

			parsed := ingredient.Parse(row.Ingredient.RawLine)
			if parsed.Quantity == nil && parsed.Unit == "" && parsed.Name == "" {
				offset++
				continue
			}

			if err := uc.limiter.Wait(ctx); err != nil {
				return out, err
			}
			if err := uc.repo.UpdateIngredientParse(ctx, repository.UpdateIngredientParseOptions{
				RecipeID:    row.RecipeID,
				Position:    row.Ingredient.Position,
				Quantity:    parsed.Quantity,
				Unit:        parsed.Unit,
				Name:        truncate(parsed.Name, recipe.MaxIngredientLen),
				PackageQty:  parsed.PackageQty,
				PackageUnit: parsed.PackageUnit,
			}); err != nil {
				uc.l.Errorf(ctx, "ReNormalize: update %s/%d: %v", row.RecipeID, row.Ingredient.Position, err)
				offset++
				continue
			}
			out.Updated++
		}
	}

	uc.l.Infof(ctx, "ReNormalize: user=%s scanned=%d updated=%d", sc.UserID, out.Scanned, out.Updated)
	return out, nil
}
