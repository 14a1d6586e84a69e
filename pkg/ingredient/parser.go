package ingredient

import (
	"regexp"
	"strconv"
	"strings"
)

// unicodeFractions maps vulgar fraction runes to their ASCII "n/d" form.
var unicodeFractions = map[string]string{
	"¼": "1/4", "½": "1/2", "¾": "3/4",
	"⅓": "1/3", "⅔": "2/3",
	"⅛": "1/8", "⅜": "3/8", "⅝": "5/8", "⅞": "7/8",
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// ", to taste" / ", as needed" / ", optional" at the end of a line.
	trailingNoiseRe = regexp.MustCompile(`(?i)\s*,?\s*(to taste|as needed|optional)\s*$`)

	// "dash of salt", "pinch of cayenne" have no numeric quantity in the text.
	dashPinchRe = regexp.MustCompile(`(?i)^\s*(dash|pinch)\s+of\s+(.*)$`)

	// Parenthesized package annotation anywhere in the line: "(8 oz.)", "(1 1/2 lb.)".
	packageRe = regexp.MustCompile(`\(\s*(\d+\s+\d+\s*/\s*\d+|\d+\s*/\s*\d+|[\d.]+)\s*([a-zA-Z.]+)\s*\)`)

	// Leading quantity: mixed number, simple fraction, or decimal/integer.
	leadingQtyRe = regexp.MustCompile(`^\s*((?:\d+\s+\d+\s*/\s*\d+)|(?:\d+\s*/\s*\d+)|(?:\d+(?:\.\d+)?))\b\s*(.*)$`)

	// Lines like "salt and pepper to taste" keep quantity and unit unset even
	// though later heuristics could be tempted to invent them.
	noQtyPrefixRe = regexp.MustCompile(`(?i)^(salt|pepper|water|flour|sugar)\b`)

	// Bare ordinal markers ("1.", "23.") that show up as list junk in scraped data.
	ordinalMarkerRe = regexp.MustCompile(`^\d{1,3}\.$`)
)

// junkStopwords are non-ingredient lines seen in scraped recipe datasets.
var junkStopwords = map[string]struct{}{
	"pam":                    {},
	"cooking spray":          {},
	"nonstick cooking spray": {},
}

// normalizeText rewrites unicode vulgar fractions to ASCII, folds en/em
// dashes to hyphens, collapses internal whitespace, and trims.
func normalizeText(s string) string {
	for uf, rep := range unicodeFractions {
		s = strings.ReplaceAll(s, uf, rep)
	}
	s = strings.ReplaceAll(s, "–", "-")
	s = strings.ReplaceAll(s, "—", "-")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// fractionToFloat parses "a/b" or a plain decimal token.
// A zero denominator or malformed token yields nil.
func fractionToFloat(token string) *float64 {
	token = strings.ReplaceAll(strings.TrimSpace(token), " ", "")
	if strings.Contains(token, "/") {
		parts := strings.Split(token, "/")
		if len(parts) != 2 {
			return nil
		}
		num, errN := strconv.Atoi(parts[0])
		den, errD := strconv.Atoi(parts[1])
		if errN != nil || errD != nil || den == 0 {
			return nil
		}
		v := float64(num) / float64(den)
		return &v
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseQuantity parses an integer, decimal, simple fraction ("1/2"), or
// mixed number ("1 1/2") into a real value. Returns nil when unparseable.
func ParseQuantity(qtyStr string) *float64 {
	qtyStr = whitespaceRe.ReplaceAllString(strings.TrimSpace(qtyStr), " ")

	// mixed number "1 1/2"
	if strings.Contains(qtyStr, " ") && strings.Contains(qtyStr, "/") {
		parts := strings.SplitN(qtyStr, " ", 2)
		whole := fractionToFloat(parts[0])
		frac := fractionToFloat(parts[1])
		if whole != nil && frac != nil {
			v := *whole + *frac
			return &v
		}
	}

	return fractionToFloat(qtyStr)
}

// removePackageParens extracts the first "(<qty> <unit>)" annotation, e.g.
// "(8 oz.)", returning the line with it removed plus the captured values.
func removePackageParens(s string) (string, *float64, string) {
	loc := packageRe.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, nil, ""
	}

	qtyRaw := s[loc[2]:loc[3]]
	unitRaw := s[loc[4]:loc[5]]

	pkgQty := ParseQuantity(qtyRaw)
	pkgUnit := NormalizeUnitToken(unitRaw)

	stripped := strings.TrimSpace(s[:loc[0]] + s[loc[1]:])
	stripped = whitespaceRe.ReplaceAllString(stripped, " ")
	return stripped, pkgQty, pkgUnit
}

// stripConnector removes a leading connector word ("of", "a", "an") from a name.
func stripConnector(name string) string {
	lower := strings.ToLower(name)
	for _, prefix := range []string{"of ", "a ", "an "} {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(name[len(prefix):])
		}
	}
	return name
}

// Parse converts one free-text ingredient line into its structured form.
// It is total: every input, including the empty string, yields a well-formed
// record and unparseable text degrades to a name-only result.
func Parse(rawLine string) Parsed {
	out := Parsed{RawLine: rawLine}

	raw := normalizeText(rawLine)
	if raw == "" {
		return out
	}

	// "salt and pepper to taste" style lines stay name-only.
	if noQtyPrefixRe.MatchString(raw) {
		lower := strings.ToLower(raw)
		if strings.Contains(lower, "to taste") || strings.Contains(lower, "and pepper") {
			out.Name = raw
			return out
		}
	}

	raw = strings.TrimSpace(trailingNoiseRe.ReplaceAllString(raw, ""))
	if raw == "" {
		return out
	}

	// "dash of X" / "pinch of X": qty 1, the word itself is the unit.
	if m := dashPinchRe.FindStringSubmatch(raw); m != nil {
		one := 1.0
		out.Quantity = &one
		out.Unit = NormalizeUnitToken(m[1])
		out.Name = strings.TrimSpace(m[2])
		return out
	}

	// "1 (8 oz.) pkg. cream cheese": pull the package annotation out first.
	rawWoPkg, pkgQty, pkgUnit := removePackageParens(raw)
	out.PackageQty = pkgQty
	out.PackageUnit = pkgUnit

	m := leadingQtyRe.FindStringSubmatch(rawWoPkg)
	if m == nil {
		out.Name = rawWoPkg
		return out
	}

	out.Quantity = ParseQuantity(m[1])
	rest := strings.TrimSpace(m[2])
	if rest == "" {
		// Quantity with nothing after it ("2"): keep the line as the name.
		out.Name = raw
		return out
	}

	firstTok, remainder, _ := strings.Cut(rest, " ")
	unit := NormalizeUnitToken(firstTok)
	if unit == "" {
		// Token after the quantity is not a unit: "2 eggs", "4 boned chicken breasts".
		out.Name = rest
		return out
	}

	out.Unit = unit
	out.Name = stripConnector(strings.TrimSpace(remainder))
	if out.Name == "" {
		out.Name = raw
	}
	return out
}

// IsJunk reports whether a line should be discarded by importers: empty
// lines, bare ordinal markers left over from numbered lists, and known
// non-ingredient stopwords. The parser itself never rejects input; callers
// apply this filter.
func IsJunk(rawLine string) bool {
	line := normalizeText(rawLine)
	if line == "" {
		return true
	}
	if ordinalMarkerRe.MatchString(line) {
		return true
	}
	_, stop := junkStopwords[strings.ToLower(line)]
	return stop
}
