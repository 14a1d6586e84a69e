package sqlite

import (
	"context"
	"database/sql"

	"cooked-flow/internal/model"
	"cooked-flow/internal/nutrition"
	repo "cooked-flow/internal/plan/repository"
)

// CreatePlan stores a plan and all its rows inside one transaction.
func (r *implRepository) CreatePlan(ctx context.Context, opt repo.CreatePlanOptions) error {
	p := opt.Plan

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreatePlan"), err)
		return repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO nutrition_plans (id, weight_kg, source_filename, created_at)
		VALUES (?, ?, ?, ?)`,
		p.ID, p.WeightKg, p.SourceFilename, p.CreatedAt,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePlan"), err)
		return repo.ErrFailedToInsert
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO nutrition_plan_rows (plan_id, day, day_type, planned_hours, kcal, protein_g, carbs_g, fat_g, intra_cho_gph)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		r.l.Errorf(ctx, "%s prepare: %v", r.dsn("CreatePlan"), err)
		return repo.ErrFailedToInsert
	}
	defer stmt.Close()

	for _, row := range p.Rows {
		if _, err := stmt.ExecContext(ctx,
			p.ID, row.Day, string(row.DayType), row.PlannedHours,
			row.Kcal, row.ProteinG, row.CarbsG, row.FatG, row.IntraCHOGph,
		); err != nil {
			r.l.Errorf(ctx, "%s row %q: %v", r.dsn("CreatePlan"), row.Day, err)
			return repo.ErrFailedToInsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreatePlan"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// ListPlans returns a page of plans, newest first, plus the total count.
// Rows are not loaded for the list view.
func (r *implRepository) ListPlans(ctx context.Context, opt repo.ListPlansOptions) ([]model.NutritionPlan, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM nutrition_plans").Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListPlans"), err)
		return nil, 0, repo.ErrFailedToList
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, weight_kg, source_filename, created_at
		FROM nutrition_plans
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?`, opt.Limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPlans"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var plans []model.NutritionPlan
	for rows.Next() {
		var p model.NutritionPlan
		if err := rows.Scan(&p.ID, &p.WeightKg, &p.SourceFilename, &p.CreatedAt); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		plans = append(plans, p)
	}
	return plans, total, nil
}

// GetPlan retrieves one plan with its rows.
// Returns zero-value plan (ID == "") when not found. Do NOT return error for not-found.
func (r *implRepository) GetPlan(ctx context.Context, id string) (model.NutritionPlan, error) {
	var p model.NutritionPlan
	err := r.db.QueryRowContext(ctx, `
		SELECT id, weight_kg, source_filename, created_at
		FROM nutrition_plans WHERE id = ?`, id,
	).Scan(&p.ID, &p.WeightKg, &p.SourceFilename, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return model.NutritionPlan{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetPlan"), err)
		return model.NutritionPlan{}, repo.ErrFailedToGet
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT day, day_type, planned_hours, kcal, protein_g, carbs_g, fat_g, intra_cho_gph
		FROM nutrition_plan_rows
		WHERE plan_id = ?
		ORDER BY day`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("GetPlan"), err)
		return model.NutritionPlan{}, repo.ErrFailedToGet
	}
	defer rows.Close()

	for rows.Next() {
		var row model.NutritionPlanRow
		var dayType string
		if err := rows.Scan(&row.Day, &dayType, &row.PlannedHours,
			&row.Kcal, &row.ProteinG, &row.CarbsG, &row.FatG, &row.IntraCHOGph,
		); err != nil {
			return model.NutritionPlan{}, repo.ErrFailedToGet
		}
		row.DayType = nutrition.DayType(dayType)
		p.Rows = append(p.Rows, row)
	}
	return p, nil
}
