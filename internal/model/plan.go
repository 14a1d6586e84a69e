package model

import (
	"time"

	"cooked-flow/internal/nutrition"
)

// NutritionPlan is one generated fueling plan: a CSV upload reduced to one
// row of targets per training day.
type NutritionPlan struct {
	ID             string             `json:"id"`
	WeightKg       float64            `json:"weight_kg"`
	SourceFilename string             `json:"source_filename,omitempty"`
	Rows           []NutritionPlanRow `json:"rows,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

// NutritionPlanRow is the prescription for a single day of the plan.
type NutritionPlanRow struct {
	Day          string            `json:"day"` // ISO date, "" for rows whose source date was unparseable
	DayType      nutrition.DayType `json:"day_type"`
	PlannedHours float64           `json:"planned_hours"`
	Kcal         int               `json:"kcal"`
	ProteinG     int               `json:"protein_g"`
	CarbsG       int               `json:"carbs_g"`
	FatG         int               `json:"fat_g"`
	IntraCHOGph  int               `json:"intra_cho_g_per_hour"`
}
