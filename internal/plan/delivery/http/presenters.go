package http

import (
	"cooked-flow/internal/model"
	"cooked-flow/internal/plan"
	"cooked-flow/pkg/response"
)

// --- Response DTOs ---

type planRowResp struct {
	Day          string  `json:"day"`
	DayType      string  `json:"day_type"`
	PlannedHours float64 `json:"planned_hours"`
	Kcal         int     `json:"kcal"`
	ProteinG     int     `json:"protein_g"`
	CarbsG       int     `json:"carbs_g"`
	FatG         int     `json:"fat_g"`
	IntraCHOGph  int     `json:"intra_cho_g_per_hour"`
}

func newPlanRowResp(row model.NutritionPlanRow) planRowResp {
	return planRowResp{
		Day:          row.Day,
		DayType:      string(row.DayType),
		PlannedHours: row.PlannedHours,
		Kcal:         row.Kcal,
		ProteinG:     row.ProteinG,
		CarbsG:       row.CarbsG,
		FatG:         row.FatG,
		IntraCHOGph:  row.IntraCHOGph,
	}
}

type generateResp struct {
	PlanID   string        `json:"plan_id,omitempty"`
	Saved    bool          `json:"saved"`
	WeightKg float64       `json:"weight_kg"`
	Rows     []planRowResp `json:"rows"`
}

func (h *handler) newGenerateResp(out plan.GenerateOutput) generateResp {
	rows := make([]planRowResp, len(out.Rows))
	for i, row := range out.Rows {
		rows[i] = newPlanRowResp(row)
	}
	return generateResp{
		PlanID:   out.PlanID,
		Saved:    out.Saved,
		WeightKg: out.WeightKg,
		Rows:     rows,
	}
}

type planResp struct {
	ID             string            `json:"id"`
	WeightKg       float64           `json:"weight_kg"`
	SourceFilename string            `json:"source_filename,omitempty"`
	CreatedAt      response.DateTime `json:"created_at"`
	Rows           []planRowResp     `json:"rows,omitempty"`
}

func newPlanResp(p model.NutritionPlan) planResp {
	resp := planResp{
		ID:             p.ID,
		WeightKg:       p.WeightKg,
		SourceFilename: p.SourceFilename,
		CreatedAt:      response.DateTime(p.CreatedAt),
	}
	for _, row := range p.Rows {
		resp.Rows = append(resp.Rows, newPlanRowResp(row))
	}
	return resp
}

type listResp struct {
	Plans  []planResp `json:"plans"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out plan.ListOutput) listResp {
	plans := make([]planResp, len(out.Plans))
	for i, p := range out.Plans {
		plans[i] = newPlanResp(p)
	}
	return listResp{
		Plans:  plans,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
