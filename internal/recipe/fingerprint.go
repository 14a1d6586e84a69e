package recipe

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// CanonicalTitle lowercases a title and collapses internal whitespace, so
// "Best  BROWNIES " and "best brownies" identify the same recipe.
func CanonicalTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// fingerprintPayload is the canonical content of a recipe. Field order is
// fixed so the JSON encoding, and therefore the hash, is deterministic.
type fingerprintPayload struct {
	D []string `json:"d"`
	I []string `json:"i"`
	T string   `json:"t"`
}

// Fingerprint derives the dedup key of a recipe: a SHA-1 over the canonical
// JSON of its title, ingredient lines and direction steps. Two rows with the
// same content hash identically regardless of title casing or stray spaces.
func Fingerprint(title string, ingredients, directions []string) string {
	payload := fingerprintPayload{
		D: canonicalLines(directions),
		I: canonicalLines(ingredients),
		T: CanonicalTitle(title),
	}
	// Marshal of this struct cannot fail.
	b, _ := json.Marshal(payload)
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}

func canonicalLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.Join(strings.Fields(l), " ")
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
