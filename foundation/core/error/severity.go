// File: severity.go
// Title: Error Severity Levels
// Description: Severity of a coded error. Every code maps to one severity
//              and the logger reports the error at the matching level.
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-12-10
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-12-09 v0.2.0: Severity mapping for lexer/parser codes
// - 2025-12-10 v0.3.0: Severity derived from the code only, low level dropped

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityMedium aborts the current command: bad arguments, missing
	// input, invalid configuration
	SeverityMedium Severity = iota

	// SeverityHigh marks input that cannot be lexed or parsed
	SeverityHigh

	// SeverityCritical marks a broken invariant inside the program
	SeverityCritical
)

var severityNames = [...]string{"medium", "high", "critical"}

func (s Severity) String() string {
	if s >= 0 && int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "unknown"
}

// Severity returns the severity errors with code c are raised at
func (c Code) Severity() Severity {
	switch {
	case c == CodeInternal:
		return SeverityCritical
	case c.IsFault():
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
