package domain

// TestType represents the declared or computed behavior of a test.
type TestType string

// Test type values. POSITIVE tests must compile without error-severity
// findings, NEGATIVE tests must produce at least one.
const (
	TypePositive TestType = "POSITIVE"
	TypeNegative TestType = "NEGATIVE"
)

// ParseTestType maps a type token to a TestType. It accepts the full
// header tokens and the pos/neg abbreviations used in test paths.
func ParseTestType(token string) (TestType, bool) {
	switch token {
	case "POSITIVE", "pos":
		return TypePositive, true
	case "NEGATIVE", "neg":
		return TypeNegative, true
	}
	return "", false
}

// Abbrev returns the short directory spelling (pos/neg).
func (t TestType) Abbrev() string {
	switch t {
	case TypePositive:
		return "pos"
	case TypeNegative:
		return "neg"
	default:
		return string(t)
	}
}
