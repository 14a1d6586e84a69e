package usecase

import (
	"context"
	"fmt"

	"cooked-flow/internal/model"
	"cooked-flow/internal/plan"
	"cooked-flow/internal/plan/repository"
)

// List returns saved plans, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input plan.ListInput) (plan.ListOutput, error) {
	out := plan.ListOutput{
		Plans:  []model.NutritionPlan{},
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if uc.repo == nil {
		return out, nil
	}

	plans, total, err := uc.repo.ListPlans(ctx, repository.ListPlansOptions{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return out, fmt.Errorf("failed to list plans: %w", err)
	}
	if plans != nil {
		out.Plans = plans
	}
	out.Total = total
	return out, nil
}

// Detail returns one saved plan with its rows.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.NutritionPlan, error) {
	if uc.repo == nil {
		return model.NutritionPlan{}, plan.ErrPlanNotFound
	}

	p, err := uc.repo.GetPlan(ctx, id)
	if err != nil {
		return model.NutritionPlan{}, fmt.Errorf("failed to get plan: %w", err)
	}
	if p.ID == "" {
		return model.NutritionPlan{}, plan.ErrPlanNotFound
	}
	return p, nil
}
