package recipe

import "testing"

func TestCanonicalTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Best  BROWNIES ", "best brownies"},
		{"best brownies", "best brownies"},
		{"", ""},
		{"  \t ", ""},
	}
	for _, tc := range tests {
		if got := CanonicalTitle(tc.input); got != tc.want {
			t.Errorf("CanonicalTitle(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFingerprintStable(t *testing.T) {
	a := Fingerprint("Best Brownies", []string{"2 c. sugar", "1 c. flour"}, []string{"Mix.", "Bake."})
	b := Fingerprint("best  BROWNIES", []string{"2 c.  sugar", "1 c. flour"}, []string{"Mix.", "Bake."})
	if a != b {
		t.Errorf("casing and whitespace must not change the fingerprint: %s vs %s", a, b)
	}
	if len(a) != 40 {
		t.Errorf("expected 40 hex chars, got %d", len(a))
	}
}

func TestFingerprintDistinguishesContent(t *testing.T) {
	base := Fingerprint("Brownies", []string{"2 c. sugar"}, []string{"Bake."})

	if got := Fingerprint("Blondies", []string{"2 c. sugar"}, []string{"Bake."}); got == base {
		t.Error("different titles must fingerprint differently")
	}
	if got := Fingerprint("Brownies", []string{"3 c. sugar"}, []string{"Bake."}); got == base {
		t.Error("different ingredients must fingerprint differently")
	}
	if got := Fingerprint("Brownies", []string{"2 c. sugar"}, []string{"Broil."}); got == base {
		t.Error("different directions must fingerprint differently")
	}
}

func TestFingerprintIgnoresEmptyLines(t *testing.T) {
	a := Fingerprint("Brownies", []string{"2 c. sugar", ""}, []string{"Bake.", "  "})
	b := Fingerprint("Brownies", []string{"2 c. sugar"}, []string{"Bake."})
	if a != b {
		t.Error("blank lines must not affect the fingerprint")
	}
}
