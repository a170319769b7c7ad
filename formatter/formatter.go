package formatter

import (
	"strings"
	"time"

	"github.com/pipelog/pipelog/core"
)

// Formatter renders a record as a single line of text, without a
// trailing newline.
type Formatter func(r core.Record) string

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for ANSIC)
	TimestampFormat string
}

// Text returns a formatter producing
// "<timestamp> - <severity name>: (<context>) -- <message>".
func Text(cfg Config) Formatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.ANSIC
	}
	return func(r core.Record) string {
		var b strings.Builder
		b.Grow(64 + len(r.Context) + len(r.Message))
		b.WriteString(r.Timestamp().Format(cfg.TimestampFormat))
		b.WriteString(" - ")
		b.WriteString(r.Severity.String())
		b.WriteString(": (")
		b.WriteString(r.Context)
		b.WriteString(") -- ")
		b.WriteString(r.Message)
		return b.String()
	}
}

// Default returns the Text formatter with the ANSIC timestamp.
func Default() Formatter {
	return Text(Config{})
}
