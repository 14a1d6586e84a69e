package repository

import (
	"context"

	"cooked-flow/internal/model"
)

// Repository is the interface for nutrition plan persistence.
type Repository interface {
	// CreatePlan stores a plan and all its rows.
	CreatePlan(ctx context.Context, opt CreatePlanOptions) error

	// ListPlans returns a page of plans (without rows), newest first, and
	// the total count.
	ListPlans(ctx context.Context, opt ListPlansOptions) ([]model.NutritionPlan, int, error)

	// GetPlan retrieves one plan with its rows.
	// Returns zero-value plan (ID == "") when not found, no error.
	GetPlan(ctx context.Context, id string) (model.NutritionPlan, error)
}
