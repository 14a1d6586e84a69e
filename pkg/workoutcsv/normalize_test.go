package workoutcsv_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"cooked-flow/pkg/workoutcsv"
)

func fval(f *float64) float64 {
	if f == nil {
		return -1
	}
	return *f
}

func TestNormalizeRawExport(t *testing.T) {
	header := []string{
		"WorkoutDay", "WorkoutType", "Title", "PlannedDuration (hours)",
		"PlannedDistanceInMeters", "TimeTotalInHours", "DistanceInMeters",
		"IF", "TSS", "PowerAverage", "HeartRateAverage", "Rpe", "Feeling",
	}
	rows := [][]string{
		{"2024-05-01", "run", "Morning Run", "1.5", "12000", "1.4", "11500", "0.85", "95", "240", "152", "7", "4"},
		{"2024-05-02", "", "Rest", "", "", "", "", "", "", "", "", "", ""},
		{"not-a-date", "bike", "Broken row", "2", "40000", "", "", "", "", "", "", "", ""},
	}

	table := workoutcsv.Normalize(header, rows)
	if len(table.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(table.Records))
	}

	r0 := table.Records[0]
	if r0.WorkoutDay == nil || r0.WorkoutDay.Format("2006-01-02") != "2024-05-01" {
		t.Errorf("unexpected workout day: %v", r0.WorkoutDay)
	}
	if r0.WorkoutType != "Run" {
		t.Errorf("expected workout type Run, got %q", r0.WorkoutType)
	}
	if fval(r0.PlannedHours) != 1.5 {
		t.Errorf("planned hours: got %v", fval(r0.PlannedHours))
	}
	if fval(r0.PlannedKm) != 12 {
		t.Errorf("meters were not converted to km: got %v", fval(r0.PlannedKm))
	}
	if fval(r0.ActualKm) != 11.5 {
		t.Errorf("actual meters were not converted to km: got %v", fval(r0.ActualKm))
	}
	if !r0.HasActual {
		t.Errorf("expected has_actual true for row with actuals")
	}
	if r0.Week != "2024-W18" {
		t.Errorf("expected week 2024-W18, got %q", r0.Week)
	}
	if r0.DOW != "Wednesday" {
		t.Errorf("expected DOW Wednesday, got %q", r0.DOW)
	}

	r1 := table.Records[1]
	if r1.PlannedHours != nil || r1.TSS != nil {
		t.Errorf("empty cells must normalize to nil, got %+v", r1)
	}
	if r1.HasActual {
		t.Errorf("expected has_actual false for empty row")
	}

	// Unparseable date: row retained, date nil, derived fields empty.
	r2 := table.Records[2]
	if r2.WorkoutDay != nil {
		t.Errorf("expected nil workout day for %q", "not-a-date")
	}
	if r2.Week != "" || r2.DOW != "" {
		t.Errorf("derived fields must be empty when date is nil: week=%q dow=%q", r2.Week, r2.DOW)
	}
	if fval(r2.PlannedKm) != 40 {
		t.Errorf("row with bad date must keep its numeric fields: got %v", fval(r2.PlannedKm))
	}
}

func TestNormalizeCanonicalExport(t *testing.T) {
	header := []string{"workout_day", "planned_hours", "planned_km", "actual_hours", "actual_km", "tss"}
	rows := [][]string{
		{"2024-05-06", "2", "30", "1.9", "28.5", "110"},
	}

	table := workoutcsv.Normalize(header, rows)
	rec := table.Records[0]

	// Already-km fields must not be divided again.
	if fval(rec.PlannedKm) != 30 {
		t.Errorf("canonical km field was rescaled: got %v", fval(rec.PlannedKm))
	}
	if fval(rec.ActualKm) != 28.5 {
		t.Errorf("canonical km field was rescaled: got %v", fval(rec.ActualKm))
	}
	if !rec.HasActual {
		t.Errorf("expected has_actual true when tss present")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	header := []string{"workout_day", "planned_hours", "planned_km", "tss"}
	rows := [][]string{
		{"2024-05-06", "2", "30", "110"},
		{"2024-05-07", "1", "", ""},
	}

	first := workoutcsv.Normalize(header, rows)

	// Serialize the canonical output back to header+rows and normalize again.
	reHeader := []string{"workout_day", "planned_hours", "planned_km", "tss"}
	var reRows [][]string
	for _, rec := range first.Records {
		day := ""
		if rec.WorkoutDay != nil {
			day = rec.WorkoutDay.Format("2006-01-02")
		}
		reRows = append(reRows, []string{day, fmtp(rec.PlannedHours), fmtp(rec.PlannedKm), fmtp(rec.TSS)})
	}
	second := workoutcsv.Normalize(reHeader, reRows)

	if len(first.Records) != len(second.Records) {
		t.Fatalf("row count changed on re-normalization: %d vs %d", len(first.Records), len(second.Records))
	}
	for i := range first.Records {
		a, b := first.Records[i], second.Records[i]
		if fval(a.PlannedHours) != fval(b.PlannedHours) ||
			fval(a.PlannedKm) != fval(b.PlannedKm) ||
			fval(a.TSS) != fval(b.TSS) ||
			a.Week != b.Week || a.DOW != b.DOW {
			t.Errorf("row %d changed on re-normalization: %+v vs %+v", i, a, b)
		}
	}
}

func fmtp(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func TestCoerceNumeric(t *testing.T) {
	tests := []struct {
		input string
		want  *float64
	}{
		{"1.5", ptr(1.5)},
		{"1,250", ptr(1250)},
		{"", nil},
		{"nan", nil},
		{"NaN", nil},
		{"None", nil},
		{"abc", nil},
		{"-5", nil},
		{"0", ptr(0)},
	}
	for _, tc := range tests {
		got := workoutcsv.CoerceNumeric(tc.input)
		if (got == nil) != (tc.want == nil) {
			t.Errorf("CoerceNumeric(%q): got %v, want %v", tc.input, got, tc.want)
			continue
		}
		if got != nil && *got != *tc.want {
			t.Errorf("CoerceNumeric(%q): got %v, want %v", tc.input, *got, *tc.want)
		}
	}
}

func ptr(v float64) *float64 { return &v }

func TestNormalizeEmptyInput(t *testing.T) {
	table := workoutcsv.Normalize(nil, nil)
	if len(table.Records) != 0 {
		t.Errorf("expected empty table, got %d records", len(table.Records))
	}

	table, err := workoutcsv.ReadAndNormalize(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error on empty stream: %v", err)
	}
	if len(table.Records) != 0 {
		t.Errorf("expected empty table from empty stream, got %d records", len(table.Records))
	}
}

func TestNormalizeDetectsRawDespiteWorkoutDay(t *testing.T) {
	// "WorkoutDay" simplifies to "workoutday", a spelling the canonical
	// alias table also accepts. Format detection must not key on it, or a
	// raw export resolves none of its numeric columns.
	header := []string{"WorkoutDay", "PlannedDuration (hours)", "PlannedDistanceInMeters"}
	rows := [][]string{{"2024-05-06", "2", "42000"}}

	table := workoutcsv.Normalize(header, rows)
	if len(table.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(table.Records))
	}
	rec := table.Records[0]
	if rec.PlannedHours == nil || *rec.PlannedHours != 2 {
		t.Errorf("raw planned hours did not resolve: %v", rec.PlannedHours)
	}
	if rec.PlannedKm == nil || *rec.PlannedKm != 42 {
		t.Errorf("raw planned meters did not convert to km: %v", rec.PlannedKm)
	}
	if rec.WorkoutDay == nil || rec.WorkoutDay.Format("2006-01-02") != "2024-05-06" {
		t.Errorf("workout day did not resolve: %v", rec.WorkoutDay)
	}
}

func TestReadCSVWithBOM(t *testing.T) {
	csvData := "\uFEFFworkout_day,planned_hours\n2024-05-06,2\n"
	header, rows, err := workoutcsv.ReadCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if header[0] != "workout_day" {
		t.Errorf("BOM not stripped from first header: %q", header[0])
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
}

func TestMissingRequiredColumns(t *testing.T) {
	header := []string{"Title", "TSS"}
	missing := workoutcsv.MissingRequiredColumns(header, []string{"workout_day", "planned_hours"})
	if len(missing) != 2 || missing[0] != "workout_day" || missing[1] != "planned_hours" {
		t.Errorf("unexpected missing columns: %v", missing)
	}

	header = []string{"WorkoutDay", "PlannedDuration (hours)"}
	missing = workoutcsv.MissingRequiredColumns(header, []string{"workout_day", "planned_hours"})
	if len(missing) != 0 {
		t.Errorf("raw aliases should satisfy requirements, got missing %v", missing)
	}
}

func TestParseDate(t *testing.T) {
	d := workoutcsv.ParseDate("2024-05-01T06:30:00")
	if d == nil || d.Format("2006-01-02") != "2024-05-01" {
		t.Errorf("datetime cell should parse to its date, got %v", d)
	}
	if workoutcsv.ParseDate("yesterday") != nil {
		t.Errorf("expected nil for unparseable date")
	}
	if workoutcsv.ParseDate("") != nil {
		t.Errorf("expected nil for empty date")
	}
}

func TestISOWeekLabel(t *testing.T) {
	// Jan 1 2023 is a Sunday and belongs to ISO week 52 of 2022.
	d := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := workoutcsv.ISOWeekLabel(d); got != "2022-W52" {
		t.Errorf("expected 2022-W52, got %q", got)
	}
}
