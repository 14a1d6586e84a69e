package plan

import (
	"io"

	"cooked-flow/internal/model"
)

// Weight bounds accepted by plan generation.
const (
	MinWeightKg = 0.0
	MaxWeightKg = 250.0
)

// GenerateInput is one uploaded workout CSV plus the athlete's weight.
type GenerateInput struct {
	Reader   io.Reader
	Filename string
	WeightKg float64
}

// GenerateOutput is the computed plan. Saved reports whether the plan was
// persisted; PlanID is empty when it was not.
type GenerateOutput struct {
	PlanID   string                   `json:"plan_id,omitempty"`
	Saved    bool                     `json:"saved"`
	WeightKg float64                  `json:"weight_kg"`
	Rows     []model.NutritionPlanRow `json:"rows"`
}

// ListInput pages the saved plans.
type ListInput struct {
	Limit  int
	Offset int
}

// ListOutput is one page of saved plans plus the total count.
type ListOutput struct {
	Plans  []model.NutritionPlan `json:"plans"`
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}
