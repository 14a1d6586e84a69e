package nutrition

import "math"

// Per-kg coefficients. Energy baseline is maintenance for an endurance
// athlete; harder days add a flat surplus and raise the carb allowance.
const (
	baseKcalPerKg       = 30.0
	proteinGPerKg       = 1.6
	moderateSurplusKcal = 300.0
	hardSurplusKcal     = 600.0
)

var carbsGPerKg = map[DayType]float64{
	DayTypeRest:     3,
	DayTypeEasy:     4,
	DayTypeModerate: 5,
	DayTypeHard:     7,
}

// ClassifyDay buckets a day by planned hours. A nil or zero plan is a rest
// day; under an hour is easy, under two is moderate, anything longer is hard.
func ClassifyDay(plannedHours *float64) DayType {
	if plannedHours == nil || *plannedHours == 0 {
		return DayTypeRest
	}
	h := *plannedHours
	switch {
	case h < 1:
		return DayTypeEasy
	case h < 2:
		return DayTypeModerate
	default:
		return DayTypeHard
	}
}

// ComputeTargets derives the fueling prescription for one day. Protein is
// fixed per kg, carbs scale with the day type, and fat absorbs whatever
// energy remains (floored at zero so heavy days never prescribe negative
// fat). All grams and kcal round to the nearest whole unit.
func ComputeTargets(weightKg float64, dayType DayType, plannedHours float64) Targets {
	kcal := baseKcalPerKg * weightKg
	switch dayType {
	case DayTypeModerate:
		kcal += moderateSurplusKcal
	case DayTypeHard:
		kcal += hardSurplusKcal
	}

	protein := proteinGPerKg * weightKg
	carbs := carbsGPerKg[dayType] * weightKg
	fat := math.Max(0, (kcal-4*protein-4*carbs)/9)

	return Targets{
		Kcal:        int(math.Round(kcal)),
		ProteinG:    int(math.Round(protein)),
		CarbsG:      int(math.Round(carbs)),
		FatG:        int(math.Round(fat)),
		IntraCHOGph: intraCHO(plannedHours),
	}
}

// intraCHO is the in-session carb rate in grams per hour, banded by session
// length. Sessions under an hour need nothing.
func intraCHO(plannedHours float64) int {
	switch {
	case plannedHours < 1.0:
		return 0
	case plannedHours < 1.5:
		return 30
	case plannedHours < 2.5:
		return 60
	default:
		return 75
	}
}
