package recipe

import "io"

// Length caps applied before storage. Oversized values are truncated, never
// rejected; the dataset has a long tail of scraped garbage.
const (
	MaxTitleLen      = 500
	MaxIngredientLen = 300
	MaxRawLineLen    = 2000
	MaxStepLen       = 4000
)

// ImportRecord is one parsed dataset row before storage.
type ImportRecord struct {
	Title       string
	Ingredients []string // raw ingredient lines
	Directions  []string
	Link        string
	Source      string
}

// ImportCSVInput drives a bulk import run.
type ImportCSVInput struct {
	Reader io.Reader
	// Purge drops all stored recipes before loading.
	Purge bool
}

// FailedRecord names one record that could not be stored and why.
type FailedRecord struct {
	Row    int    `json:"row"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// ImportSummary is the typed result of a bulk import run. Every input row is
// accounted for in exactly one counter.
type ImportSummary struct {
	BatchID    string         `json:"batch_id"`
	Read       int            `json:"read"`
	Inserted   int            `json:"inserted"`
	Duplicates int            `json:"duplicates"`
	Invalid    int            `json:"invalid"`
	Failed     int            `json:"failed"`
	Failures   []FailedRecord `json:"failures,omitempty"`
}

// ReNormalizeOutput reports an ingredient re-parse pass.
type ReNormalizeOutput struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
}
