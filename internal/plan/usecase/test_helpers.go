package usecase

import (
	"context"

	"cooked-flow/internal/model"
	"cooked-flow/internal/plan/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock plan repository for testing
type mockRepository struct {
	plans     []model.NutritionPlan
	createErr error
	listErr   error
	getErr    error
}

func (m *mockRepository) CreatePlan(ctx context.Context, opt repository.CreatePlanOptions) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.plans = append(m.plans, opt.Plan)
	return nil
}

func (m *mockRepository) ListPlans(ctx context.Context, opt repository.ListPlansOptions) ([]model.NutritionPlan, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	start := opt.Offset
	if start > len(m.plans) {
		start = len(m.plans)
	}
	end := start + opt.Limit
	if end > len(m.plans) {
		end = len(m.plans)
	}
	return m.plans[start:end], len(m.plans), nil
}

func (m *mockRepository) GetPlan(ctx context.Context, id string) (model.NutritionPlan, error) {
	if m.getErr != nil {
		return model.NutritionPlan{}, m.getErr
	}
	for _, p := range m.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return model.NutritionPlan{}, nil
}
