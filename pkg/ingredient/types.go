package ingredient

// Parsed is the structured form of one free-text recipe ingredient line.
// Quantity and PackageQty are nil when no numeric value was detected;
// Unit and PackageUnit are empty strings when no known unit token matched.
type Parsed struct {
	Quantity    *float64
	Unit        string
	Name        string
	PackageQty  *float64
	PackageUnit string

	// RawLine is the original input, preserved verbatim for audit.
	RawLine string
}

// HasQuantity reports whether a leading numeric quantity was detected.
func (p Parsed) HasQuantity() bool { return p.Quantity != nil }

// HasPackage reports whether a parenthesized package annotation was detected.
func (p Parsed) HasPackage() bool { return p.PackageQty != nil || p.PackageUnit != "" }
