package plan

import (
	"context"

	"cooked-flow/internal/model"
)

// UseCase defines the business logic interface for the plan domain.
type UseCase interface {
	// Generate turns an uploaded workout CSV into daily nutrition targets
	// and persists the plan when a store is configured.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)

	// List returns saved plans, newest first, without their rows.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Detail returns one saved plan with its rows.
	Detail(ctx context.Context, sc model.Scope, id string) (model.NutritionPlan, error)
}
