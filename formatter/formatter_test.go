package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/pipelog/pipelog/core"
)

func TestTextLayout(t *testing.T) {
	r := core.Record{
		Time:     1500000000,
		Severity: core.Warning,
		Context:  "main.go:42",
		Message:  "disk almost full",
	}

	line := Default()(r)

	wantStamp := time.Unix(1500000000, 0).Format(time.ANSIC)
	want := wantStamp + " - warning: (main.go:42) -- disk almost full"
	if line != want {
		t.Errorf("Default()(r) = %q, want %q", line, want)
	}
	if strings.HasSuffix(line, "\n") {
		t.Error("formatter must not append a newline")
	}
}

func TestTextCustomTimestamp(t *testing.T) {
	f := Text(Config{TimestampFormat: "2006-01-02"})

	r := core.Record{Time: 1500000000, Severity: core.Info, Context: "c", Message: "m"}
	line := f(r)

	wantStamp := time.Unix(1500000000, 0).Format("2006-01-02")
	if !strings.HasPrefix(line, wantStamp+" - info: ") {
		t.Errorf("unexpected line %q", line)
	}
}

func TestTextUnbandedSeverity(t *testing.T) {
	r := core.Record{Time: 1500000000, Severity: 300, Context: "c", Message: "m"}

	line := Default()(r)
	if !strings.Contains(line, " - severity=300: ") {
		t.Errorf("expected severity fallback in %q", line)
	}
}
