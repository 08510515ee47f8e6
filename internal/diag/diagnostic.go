package diag

import (
	"jsopt/internal/source"
)

// Severity orders diagnostics by importance; HasErrors and friends compare
// against these, so the values must stay ascending.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityLabels = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityLabels) {
		return severityLabels[s]
	}
	return "UNKNOWN"
}

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one reportable finding with its primary location.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
