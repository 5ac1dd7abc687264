package diag

// Severity ranks a diagnostic. Scanner and translator findings are all
// errors; the lower levels exist for notes attached by later stages.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "info",
	SevWarning: "warning",
	SevError:   "error",
}

// Label is the lower-case name used in JSON results ("error").
func (s Severity) Label() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "unknown"
}

// String is the upper-case name printed in diagnostics ("ERROR").
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
