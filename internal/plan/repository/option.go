package repository

import "cooked-flow/internal/model"

// CreatePlanOptions holds one plan to store, rows included.
type CreatePlanOptions struct {
	Plan model.NutritionPlan
}

// ListPlansOptions pages the saved plans.
type ListPlansOptions struct {
	Limit  int
	Offset int
}
