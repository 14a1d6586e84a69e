package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cooked-flow/internal/model"
	"cooked-flow/internal/nutrition"
	"cooked-flow/internal/plan"
	"cooked-flow/internal/plan/repository"
	"cooked-flow/pkg/workoutcsv"
)

// Columns an upload must resolve before any transformation runs.
var requiredColumns = []string{"workout_day", "planned_hours"}

// Generate turns an uploaded workout CSV into one row of nutrition targets
// per training day and persists the plan when a store is configured.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input plan.GenerateInput) (plan.GenerateOutput, error) {
	if input.WeightKg <= plan.MinWeightKg || input.WeightKg > plan.MaxWeightKg {
		return plan.GenerateOutput{}, plan.ErrInvalidWeight
	}

	header, rows, err := workoutcsv.ReadCSV(input.Reader)
	if err != nil {
		return plan.GenerateOutput{}, fmt.Errorf("failed to read workout csv: %w", err)
	}
	if len(header) == 0 || len(rows) == 0 {
		return plan.GenerateOutput{}, plan.ErrEmptyFile
	}
	if missing := workoutcsv.MissingRequiredColumns(header, requiredColumns); len(missing) > 0 {
		return plan.GenerateOutput{}, &plan.MissingColumnsError{Columns: missing}
	}

	table := workoutcsv.Normalize(header, rows)
	aggregates := workoutcsv.AggregateBy(table, workoutcsv.GroupByDay)

	planRows := make([]model.NutritionPlanRow, 0, len(aggregates))
	dropped := 0
	for _, agg := range aggregates {
		if agg.Key == "" {
			// rows whose date never parsed cannot become a plan day
			dropped += agg.WorkoutsCount
			continue
		}
		hours := agg.PlannedHours
		dayType := nutrition.ClassifyDay(&hours)
		targets := nutrition.ComputeTargets(input.WeightKg, dayType, hours)
		planRows = append(planRows, model.NutritionPlanRow{
			Day:          agg.Key,
			DayType:      dayType,
			PlannedHours: hours,
			Kcal:         targets.Kcal,
			ProteinG:     targets.ProteinG,
			CarbsG:       targets.CarbsG,
			FatG:         targets.FatG,
			IntraCHOGph:  targets.IntraCHOGph,
		})
	}
	if dropped > 0 {
		uc.l.Warnf(ctx, "Generate: user=%s dropped %d rows with unparseable dates", sc.UserID, dropped)
	}
	if len(planRows) == 0 {
		return plan.GenerateOutput{}, plan.ErrEmptyFile
	}

	out := plan.GenerateOutput{
		WeightKg: input.WeightKg,
		Rows:     planRows,
	}

	if uc.repo != nil {
		p := model.NutritionPlan{
			ID:             uuid.NewString(),
			WeightKg:       input.WeightKg,
			SourceFilename: input.Filename,
			Rows:           planRows,
			CreatedAt:      time.Now().UTC(),
		}
		if err := uc.repo.CreatePlan(ctx, repository.CreatePlanOptions{Plan: p}); err != nil {
			return plan.GenerateOutput{}, fmt.Errorf("failed to save plan: %w", err)
		}
		out.PlanID = p.ID
		out.Saved = true
	}

	uc.l.Infof(ctx, "Generate: user=%s days=%d saved=%t", sc.UserID, len(planRows), out.Saved)
	return out, nil
}
