package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cooked-flow/internal/model"
	"cooked-flow/internal/plan"
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

// Mock plan use case for testing
type mockUseCase struct {
	generateOut plan.GenerateOutput
	generateErr error
	listOut     plan.ListOutput
	listErr     error
	detailOut   model.NutritionPlan
	detailErr   error

	lastGenerate plan.GenerateInput
}

func (m *mockUseCase) Generate(ctx context.Context, sc model.Scope, input plan.GenerateInput) (plan.GenerateOutput, error) {
	m.lastGenerate = input
	return m.generateOut, m.generateErr
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input plan.ListInput) (plan.ListOutput, error) {
	return m.listOut, m.listErr
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.NutritionPlan, error) {
	return m.detailOut, m.detailErr
}

func newTestRouter(uc plan.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, uc)
	RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func multipartUpload(t *testing.T, csvContent, weight string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if csvContent != "" {
		fw, err := w.CreateFormFile("file", "week.csv")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(csvContent)); err != nil {
			t.Fatal(err)
		}
	}
	if weight != "" {
		if err := w.WriteField("weight_kg", weight); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func TestGenerateHandler(t *testing.T) {
	uc := &mockUseCase{generateOut: plan.GenerateOutput{
		PlanID:   "p1",
		Saved:    true,
		WeightKg: 70,
		Rows: []model.NutritionPlanRow{
			{Day: "2024-05-06", DayType: "REST", Kcal: 2100, ProteinG: 112, CarbsG: 210, FatG: 90},
		},
	}}
	router := newTestRouter(uc)

	body, contentType := multipartUpload(t, "workout_day,planned_hours\n2024-05-06,0\n", "70")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/nutrition", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ErrorCode int `json:"error_code"`
		Data      struct {
			PlanID string `json:"plan_id"`
			Saved  bool   `json:"saved"`
			Rows   []struct {
				Day  string `json:"day"`
				Kcal int    `json:"kcal"`
			} `json:"rows"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ErrorCode != 0 || resp.Data.PlanID != "p1" || !resp.Data.Saved {
		t.Errorf("unexpected response: %s", rec.Body.String())
	}
	if len(resp.Data.Rows) != 1 || resp.Data.Rows[0].Kcal != 2100 {
		t.Errorf("unexpected rows: %s", rec.Body.String())
	}

	if uc.lastGenerate.WeightKg != 70 || uc.lastGenerate.Filename != "week.csv" {
		t.Errorf("unexpected use case input: %+v", uc.lastGenerate)
	}
}

func TestGenerateHandlerMissingFile(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	body, contentType := multipartUpload(t, "", "70")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/nutrition", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "file is required") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestGenerateHandlerBadWeight(t *testing.T) {
	tests := []struct {
		name   string
		weight string
		want   string
	}{
		{"missing", "", "weight_kg is required"},
		{"not a number", "heavy", "weight_kg must be a number"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&mockUseCase{})

			body, contentType := multipartUpload(t, "workout_day,planned_hours\n", tc.weight)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/nutrition", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.want) {
				t.Errorf("expected %q in body: %s", tc.want, rec.Body.String())
			}
		})
	}
}

func TestGenerateHandlerDomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"invalid weight", plan.ErrInvalidWeight, 400, "weight_kg"},
		{"empty file", plan.ErrEmptyFile, 400, "no workout rows"},
		{"missing columns", &plan.MissingColumnsError{Columns: []string{"workout_day", "planned_hours"}}, 400, "workout_day, planned_hours"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&mockUseCase{generateErr: tc.err})

			body, contentType := multipartUpload(t, "a,b\n1,2\n", "70")
			req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/nutrition", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.wantBody) {
				t.Errorf("expected %q in body: %s", tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	uc := &mockUseCase{listOut: plan.ListOutput{
		Plans: []model.NutritionPlan{{ID: "p1", WeightKg: 70}},
		Total: 1, Limit: 20,
	}}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"total":1`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestDetailHandler(t *testing.T) {
	created := time.Date(2024, 5, 6, 8, 30, 0, 0, time.Local)
	uc := &mockUseCase{detailOut: model.NutritionPlan{
		ID: "p1", WeightKg: 70, CreatedAt: created,
	}}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/p1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id":"p1"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"created_at":"2024-05-06 08:30:00"`) {
		t.Errorf("created_at not rendered as datetime: %s", rec.Body.String())
	}
}

func TestDetailHandlerNotFound(t *testing.T) {
	router := newTestRouter(&mockUseCase{detailErr: plan.ErrPlanNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDetailHandlerInternalErrorHidesDetails(t *testing.T) {
	router := newTestRouter(&mockUseCase{detailErr: context.DeadlineExceeded})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/p1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "deadline") {
		t.Errorf("internal details leaked: %s", rec.Body.String())
	}
}
