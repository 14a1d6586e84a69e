package recipe

import (
	"context"

	"cooked-flow/internal/model"
)

// UseCase defines the business logic interface for the recipe domain.
type UseCase interface {
	// ImportCSV streams a RecipeNLG-format CSV into the store: parse,
	// fingerprint, dedupe, chunk, rate-limit. Returns a full accounting.
	ImportCSV(ctx context.Context, sc model.Scope, input ImportCSVInput) (ImportSummary, error)

	// ReNormalize re-parses stored ingredient rows whose parsed fields are
	// empty and writes back the ones that changed.
	ReNormalize(ctx context.Context, sc model.Scope) (ReNormalizeOutput, error)
}
