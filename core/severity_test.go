package core

import "testing"

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{Info, "info"},
		{Warning, "warning"},
		{Error, "error"},
		{Fatal, "fatal"},
		{42, "info"},      // floors to 0
		{150, "warning"},  // floors to 100
		{250, "error"},    // floors to 200
		{1050, "fatal"},   // floors to 1000
		{-50, "info"},     // truncation toward zero floors to 0
		{300, "severity=300"},
		{-150, "severity=-150"},
		{999, "severity=999"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
	}{
		{"info", Info},
		{"INFO", Info},
		{"warn", Warning},
		{"Warning", Warning},
		{"error", Error},
		{"fatal", Fatal},
		{"nonsense", Info},
		{"", Info},
	}

	for _, tt := range tests {
		if got := ParseSeverity(tt.in); got != tt.want {
			t.Errorf("ParseSeverity(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
