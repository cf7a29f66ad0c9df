package models

// Severity is the alert state of a reading. The declaration order is the
// rollup priority: an aggregate severity is only ever raised along
// Unknown < Ok < Warning < Critical, never lowered.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityOk
	SeverityWarning
	SeverityCritical
)

// String returns the severity name used in alert-summary output.
func (s Severity) String() string {
	switch s {
	case SeverityOk:
		return "OK"
	case SeverityWarning:
		return "WARNING"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode maps a severity to the process exit status expected by
// alerting integrations: 0=OK, 1=WARNING, 2=CRITICAL, 3=UNKNOWN/no data.
func (s Severity) ExitCode() int {
	switch s {
	case SeverityOk:
		return 0
	case SeverityWarning:
		return 1
	case SeverityCritical:
		return 2
	default:
		return 3
	}
}
