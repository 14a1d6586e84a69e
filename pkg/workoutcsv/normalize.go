package workoutcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// rawAliases maps canonical field names to the column spellings of a raw
// TrainingPeaks export. Candidate order is priority order; first hit wins.
var rawAliases = map[string][]string{
	"workout_day":      {"WorkoutDay"},
	"workout_type":     {"WorkoutType"},
	"title":            {"Title"},
	"description":      {"WorkoutDescription"},
	"coach_comments":   {"CoachComments"},
	"athlete_comments": {"AthleteComments"},
	"planned_hours":    {"PlannedDuration (hours)", "PlannedDurationHours", "PlannedDuration"},
	"planned_meters":   {"PlannedDistanceInMeters"},
	"actual_hours":     {"TimeTotalInHours"},
	"actual_meters":    {"DistanceInMeters"},
	"if":               {"IF"},
	"tss":              {"TSS"},
	"power_avg":        {"PowerAverage"},
	"hr_avg":           {"HeartRateAverage"},
	"rpe":              {"Rpe"},
	"feeling":          {"Feeling"},
}

// canonicalAliases maps canonical field names to the spellings of an
// already-normalized export.
var canonicalAliases = map[string][]string{
	"workout_day":      {"workout_day", "workoutday", "date", "day"},
	"workout_type":     {"workout_type", "workouttype", "type"},
	"title":            {"title"},
	"description":      {"description", "workout_description"},
	"coach_comments":   {"coach_comments", "coachcomments"},
	"athlete_comments": {"athlete_comments", "athletecomments"},
	"planned_hours":    {"planned_hours", "plannedhours"},
	"planned_km":       {"planned_km", "plannedkm"},
	"actual_hours":     {"actual_hours", "actualhours"},
	"actual_km":        {"actual_km", "actualkm"},
	"if":               {"if"},
	"tss":              {"tss"},
	"power_avg":        {"power_avg", "poweraverage"},
	"hr_avg":           {"hr_avg", "heartrateaverage"},
	"rpe":              {"rpe"},
	"feeling":          {"feeling"},
}

// canonicalDetectionFields decide which alias set applies: if any of these
// resolve against the header, the input is treated as already canonical.
// workout_day is excluded on purpose: raw "WorkoutDay" simplifies to
// "workoutday", which the canonical set also accepts, so keying detection on
// it would misread every raw export as canonical.
var canonicalDetectionFields = []string{
	"planned_hours", "planned_km", "actual_hours", "actual_km",
}

// dateLayouts accepted for the workout date cell, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
}

// simplifyColumn lowercases a column name and strips everything that is not
// a letter or digit, so "Workout Day", "workout_day" and "WorkoutDay" all
// collapse to "workoutday".
func simplifyColumn(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// resolveColumn finds the index of the first candidate spelling present in
// the simplified header lookup. Returns -1 when no candidate matches.
func resolveColumn(lookup map[string]int, candidates []string) int {
	for _, cand := range candidates {
		if idx, ok := lookup[simplifyColumn(cand)]; ok {
			return idx
		}
	}
	return -1
}

// CoerceNumeric converts a raw cell to a float pointer. Thousands-separator
// commas are stripped; "", "nan", "none" and unparseable or non-finite or
// negative values become nil. Malformed data degrades, it never aborts.
func CoerceNumeric(cell string) *float64 {
	s := strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
	if s == "" {
		return nil
	}
	switch strings.ToLower(s) {
	case "nan", "none", "null":
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	return &v
}

// ParseDate parses a workout date cell. Returns nil when no layout matches;
// callers keep the row either way.
func ParseDate(cell string) *time.Time {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

// ISOWeekLabel formats a date as its ISO year-week label, e.g. "2024-W05".
// Lexical order of these labels is chronological order.
func ISOWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// titleCase normalizes a workout type the way the exports capitalize them
// ("run" -> "Run", "mountain bike" -> "Mountain Bike").
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Normalize maps a heterogeneous header+rows table into the canonical form.
// It accepts either a raw TrainingPeaks export (PascalCase columns, distances
// in meters) or an already-canonical snake_case export; running it on its own
// output is a no-op. Empty input yields an empty table, never an error.
func Normalize(header []string, rows [][]string) Table {
	lookup := make(map[string]int, len(header))
	for i, col := range header {
		// first occurrence wins for duplicated headers
		key := simplifyColumn(col)
		if _, exists := lookup[key]; !exists {
			lookup[key] = i
		}
	}

	aliases := rawAliases
	for _, field := range canonicalDetectionFields {
		if resolveColumn(lookup, canonicalAliases[field]) >= 0 {
			aliases = canonicalAliases
			break
		}
	}

	// field -> column index, -1 when the source has no such column
	colIdx := make(map[string]int, len(aliases))
	for field, candidates := range aliases {
		colIdx[field] = resolveColumn(lookup, candidates)
	}

	cell := func(row []string, field string) (string, bool) {
		idx, ok := colIdx[field]
		if !ok || idx < 0 || idx >= len(row) {
			return "", false
		}
		return row[idx], true
	}

	numeric := func(row []string, field string) *float64 {
		raw, ok := cell(row, field)
		if !ok {
			return nil
		}
		return CoerceNumeric(raw)
	}

	text := func(row []string, field string) string {
		raw, _ := cell(row, field)
		return strings.TrimSpace(raw)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := Record{
			Title:           text(row, "title"),
			Description:     text(row, "description"),
			CoachComments:   text(row, "coach_comments"),
			AthleteComments: text(row, "athlete_comments"),

			PlannedHours: numeric(row, "planned_hours"),
			PlannedKm:    numeric(row, "planned_km"),
			ActualHours:  numeric(row, "actual_hours"),
			ActualKm:     numeric(row, "actual_km"),
			IF:           numeric(row, "if"),
			TSS:          numeric(row, "tss"),
			PowerAvg:     numeric(row, "power_avg"),
			HRAvg:        numeric(row, "hr_avg"),
			RPE:          numeric(row, "rpe"),
			Feeling:      numeric(row, "feeling"),
		}

		if wt := text(row, "workout_type"); wt != "" {
			rec.WorkoutType = titleCase(wt)
		}

		// Meters-denominated distances convert to km; already-km fields pass
		// through untouched.
		if rec.PlannedKm == nil {
			if m := numeric(row, "planned_meters"); m != nil {
				km := *m / 1000
				rec.PlannedKm = &km
			}
		}
		if rec.ActualKm == nil {
			if m := numeric(row, "actual_meters"); m != nil {
				km := *m / 1000
				rec.ActualKm = &km
			}
		}

		if raw, ok := cell(row, "workout_day"); ok {
			rec.WorkoutDay = ParseDate(raw)
		}

		rec.HasActual = rec.ActualHours != nil || rec.ActualKm != nil || rec.TSS != nil
		if rec.WorkoutDay != nil {
			rec.Week = ISOWeekLabel(*rec.WorkoutDay)
			rec.DOW = rec.WorkoutDay.Weekday().String()
		}

		records = append(records, rec)
	}

	return Table{Records: records}
}

// ReadCSV reads a CSV stream (tolerating a UTF-8 BOM and ragged rows) and
// returns header and data rows. An empty stream yields empty header and rows.
func ReadCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}

	header := all[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	return header, all[1:], nil
}

// ReadAndNormalize is the one-call path used by the upload boundary.
func ReadAndNormalize(r io.Reader) (Table, error) {
	header, rows, err := ReadCSV(r)
	if err != nil {
		return Table{}, err
	}
	return Normalize(header, rows), nil
}

// MissingRequiredColumns reports which of the required canonical fields could
// not be resolved from the given header, in a stable order. The boundary uses
// this to produce one client-visible error listing exact names.
func MissingRequiredColumns(header []string, required []string) []string {
	lookup := make(map[string]int, len(header))
	for i, col := range header {
		lookup[simplifyColumn(col)] = i
	}

	var missing []string
	for _, field := range required {
		found := resolveColumn(lookup, canonicalAliases[field]) >= 0 ||
			resolveColumn(lookup, rawAliases[field]) >= 0
		// meters-denominated raw columns satisfy a km requirement
		if !found && field == "planned_km" {
			found = resolveColumn(lookup, rawAliases["planned_meters"]) >= 0
		}
		if !found && field == "actual_km" {
			found = resolveColumn(lookup, rawAliases["actual_meters"]) >= 0
		}
		if !found {
			missing = append(missing, field)
		}
	}
	return missing
}
