package core

import (
	"strconv"
	"strings"
)

// Severity is an open integer severity scale. Any value is legal; the
// named constants mark the display bands.
type Severity int

const (
	// Info is the default band for informational messages
	Info Severity = 0
	// Warning marks conditions worth attention but not failures
	Warning Severity = 100
	// Error marks failures
	Error Severity = 200
	// Fatal marks unrecoverable failures
	Fatal Severity = 1000
)

var bands = map[Severity]string{
	Info:    "info",
	Warning: "warning",
	Error:   "error",
	Fatal:   "fatal",
}

// String returns the band name for the severity. Severities without an
// exact band entry are floored to the nearest multiple of one hundred
// (truncating toward zero, so e.g. 250 renders as "error"); values
// outside every band render as "severity=<n>".
func (s Severity) String() string {
	if name, ok := bands[s]; ok {
		return name
	}
	if name, ok := bands[s/100*100]; ok {
		return name
	}
	return "severity=" + strconv.Itoa(int(s))
}

// ParseSeverity converts a band name to its Severity. Unknown names
// map to Info.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(s) {
	case "info":
		return Info
	case "warn", "warning":
		return Warning
	case "error":
		return Error
	case "fatal":
		return Fatal
	default:
		return Info
	}
}
