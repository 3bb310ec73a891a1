package logfan

import (
	"fmt"
	"strings"
)

// Severity is the urgency of a log statement. Severities are totally
// ordered: Debug < Info < Warning < Error.
type Severity int

const (
	// Debug marks statements logged for debugging or testing purposes.
	Debug Severity = iota
	// Info marks events of some importance that happen during normal
	// operation.
	Info
	// Warning marks events off the happy path that are still tolerated.
	Warning
	// Error marks events that are not acceptable and should not happen.
	Error
)

var severityNames = [...]string{"DEBUG", "INFO", "WARNING", "ERROR"}

// String returns the upper-case name of the severity.
func (s Severity) String() string {
	if s < Debug || s > Error {
		return fmt.Sprintf("SEVERITY(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity converts a severity name, in any case, to a Severity.
// "WARN" is accepted as an alias for Warning.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "WARNING", "WARN":
		return Warning, nil
	case "ERROR":
		return Error, nil
	}
	return Debug, fmt.Errorf("logfan: unknown severity %q", name)
}
