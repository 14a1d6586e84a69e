package usecase

import (
	"context"

	"cooked-flow/internal/recipe/repository"
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

// Mock recipe repository for testing
type mockRepository struct {
	created       []repository.CreateRecipeOptions
	existing      map[string]bool
	purged        bool
	unparsedPages [][]repository.StoredIngredient
	updates       []repository.UpdateIngredientParseOptions

	createErr error
	existsErr error
	updateErr error
}

func (m *mockRepository) CreateRecipesBatch(ctx context.Context, opts []repository.CreateRecipeOptions) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, opts...)
	return nil
}

func (m *mockRepository) ExistingFingerprints(ctx context.Context, fingerprints []string) (map[string]bool, error) {
	if m.existsErr != nil {
		return nil, m.existsErr
	}
	out := make(map[string]bool)
	for _, fp := range fingerprints {
		if m.existing[fp] {
			out[fp] = true
		}
	}
	return out, nil
}

func (m *mockRepository) Purge(ctx context.Context) error {
	m.purged = true
	return nil
}

func (m *mockRepository) ListUnparsedIngredients(ctx context.Context, opt repository.ListUnparsedIngredientsOptions) ([]repository.StoredIngredient, error) {
	if len(m.unparsedPages) == 0 {
		return nil, nil
	}
	page := m.unparsedPages[0]
	m.unparsedPages = m.unparsedPages[1:]
	return page, nil
}

func (m *mockRepository) UpdateIngredientParse(ctx context.Context, opt repository.UpdateIngredientParseOptions) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates = append(m.updates, opt)
	return nil
}
