package core

import "time"

// Record is a single log event. Time is seconds since the Unix epoch
// (fractional), Context is typically call-site identity ("file.go:42"),
// and Message is pre-formatted text, not a template.
//
// A Record is never mutated after construction. Sinks receive it by
// value and may hand it to other goroutines freely.
type Record struct {
	Time     float64
	Severity Severity
	Context  string
	Message  string
}

// Now returns the current time as fractional seconds since the Unix
// epoch, truncated to millisecond resolution.
func Now() float64 {
	return float64(time.Now().UnixMilli()) / 1000
}

// Timestamp converts the record's time to a time.Time for display.
func (r Record) Timestamp() time.Time {
	sec := int64(r.Time)
	nsec := int64((r.Time - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}
