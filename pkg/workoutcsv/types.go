package workoutcsv

import "time"

// Record is the canonical per-workout row every supported CSV variant is
// mapped into. Numeric fields are nil when the source cell was absent or
// unparseable; they are never NaN and never negative.
type Record struct {
	WorkoutDay      *time.Time // calendar date; nil when the source date was unparseable
	WorkoutType     string
	Title           string
	Description     string
	CoachComments   string
	AthleteComments string

	PlannedHours *float64
	PlannedKm    *float64
	ActualHours  *float64
	ActualKm     *float64

	IF       *float64
	TSS      *float64
	PowerAvg *float64
	HRAvg    *float64
	RPE      *float64
	Feeling  *float64

	// Derived after normalization.
	HasActual bool
	Week      string // ISO year-week label, e.g. "2024-W05"; "" when WorkoutDay is nil
	DOW       string // weekday name; "" when WorkoutDay is nil
}

// Table is an ordered set of canonical records.
type Table struct {
	Records []Record
}

// GroupKey selects the aggregation grouping.
type GroupKey string

const (
	GroupByDay  GroupKey = "day"
	GroupByWeek GroupKey = "week"
)

// Aggregate is one group row produced by AggregateBy. Sum fields skip nil
// inputs (a group with no values sums to zero); mean fields are nil when the
// group had no values at all.
type Aggregate struct {
	Key string // ISO date for day grouping, ISO week label for week grouping

	PlannedHours float64
	PlannedKm    float64
	ActualHours  float64
	ActualKm     float64
	TSS          float64

	IF       *float64
	PowerAvg *float64
	HRAvg    *float64
	RPE      *float64
	Feeling  *float64

	WorkoutsCount int
}
