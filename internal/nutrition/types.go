package nutrition

// DayType buckets a training day by its planned load.
type DayType string

const (
	DayTypeRest     DayType = "REST"
	DayTypeEasy     DayType = "EASY"
	DayTypeModerate DayType = "MODERATE"
	DayTypeHard     DayType = "HARD"
)

// Targets is the daily fueling prescription for one training day.
type Targets struct {
	Kcal        int `json:"kcal"`
	ProteinG    int `json:"protein_g"`
	CarbsG      int `json:"carbs_g"`
	FatG        int `json:"fat_g"`
	IntraCHOGph int `json:"intra_cho_g_per_hour"`
}
