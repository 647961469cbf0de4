package rule

// Severity is the impact tier of a failure pattern.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"

	// SeverityUnknown is the zero value: the rule author declared no tier.
	SeverityUnknown Severity = ""
)

// Severities returns the declared tiers in ascending impact order.
// SeverityUnknown is not included; it is the absence of a tier.
func Severities() []Severity {
	return []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
}

// Valid reports whether s is a declared tier or unknown.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical, SeverityUnknown:
		return true
	default:
		return false
	}
}

// String returns the display form, with "unknown" for the empty tier.
func (s Severity) String() string {
	if s == SeverityUnknown {
		return "unknown"
	}
	return string(s)
}
