package ingredient_test

import (
	"testing"

	"cooked-flow/pkg/ingredient"
)

func TestNormalizeUnitToken(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"tbsp", "tbsp"},
		{"tbsp.", "tbsp"},
		{"Tablespoons", "tbsp"},
		{"c.", "cup"},
		{"CUPS", "cup"},
		{"oz.,", "oz"},
		{"lbs", "lb"},
		{"pkg.", "pkg"},
		{"litres", "l"},
		{"kilograms", "kg"},
		{"pinch", "pinch"},
		{"eggs", ""},
		{"medium", ""},
		{"", ""},
		{".", ""},
	}

	for _, tc := range tests {
		if got := ingredient.NormalizeUnitToken(tc.input); got != tc.want {
			t.Errorf("NormalizeUnitToken(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
