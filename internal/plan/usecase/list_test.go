package usecase

import (
	"context"
	"errors"
	"testing"

	"cooked-flow/internal/model"
	"cooked-flow/internal/plan"
)

func TestList(t *testing.T) {
	repo := &mockRepository{plans: []model.NutritionPlan{
		{ID: "p1", WeightKg: 70},
		{ID: "p2", WeightKg: 72},
		{ID: "p3", WeightKg: 68},
	}}
	uc := New(&mockLogger{}, repo)

	out, err := uc.List(context.Background(), model.Scope{}, plan.ListInput{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != 3 || len(out.Plans) != 2 {
		t.Errorf("unexpected output: %+v", out)
	}
	if out.Plans[0].ID != "p2" {
		t.Errorf("unexpected first plan: %+v", out.Plans[0])
	}
	if out.Limit != 2 || out.Offset != 1 {
		t.Errorf("paging must echo back: %+v", out)
	}
}

func TestListWithoutStore(t *testing.T) {
	uc := New(&mockLogger{}, nil)

	out, err := uc.List(context.Background(), model.Scope{}, plan.ListInput{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != 0 || len(out.Plans) != 0 {
		t.Errorf("expected empty output, got %+v", out)
	}
	if out.Plans == nil {
		t.Error("plans must serialize as an empty array, not null")
	}
}

func TestDetail(t *testing.T) {
	repo := &mockRepository{plans: []model.NutritionPlan{{ID: "p1", WeightKg: 70}}}
	uc := New(&mockLogger{}, repo)

	p, err := uc.Detail(context.Background(), model.Scope{}, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "p1" {
		t.Errorf("unexpected plan: %+v", p)
	}

	_, err = uc.Detail(context.Background(), model.Scope{}, "missing")
	if !errors.Is(err, plan.ErrPlanNotFound) {
		t.Errorf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestDetailRepoFailure(t *testing.T) {
	repo := &mockRepository{getErr: errors.New("db down")}
	uc := New(&mockLogger{}, repo)

	_, err := uc.Detail(context.Background(), model.Scope{}, "p1")
	if err == nil || errors.Is(err, plan.ErrPlanNotFound) {
		t.Errorf("repository failure must not read as not-found: %v", err)
	}
}
