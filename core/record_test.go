package core

import (
	"testing"
	"time"
)

func TestNow(t *testing.T) {
	before := time.Now().Add(-time.Second).Unix()
	got := Now()
	after := time.Now().Add(time.Second).Unix()

	if got < float64(before) || got > float64(after) {
		t.Errorf("Now() = %f, want between %d and %d", got, before, after)
	}
}

func TestRecordTimestamp(t *testing.T) {
	r := Record{Time: 1500000000.5}

	ts := r.Timestamp()
	if ts.Unix() != 1500000000 {
		t.Errorf("Timestamp().Unix() = %d, want 1500000000", ts.Unix())
	}
	if got := ts.Nanosecond(); got < 499_000_000 || got > 501_000_000 {
		t.Errorf("Timestamp().Nanosecond() = %d, want ~500ms", got)
	}
}

func TestRecordValueSemantics(t *testing.T) {
	r := Record{Time: Now(), Severity: Warning, Context: "a.go:1", Message: "original"}

	cp := r
	cp.Message = "changed"

	if r.Message != "original" {
		t.Errorf("copying a Record must not affect the original, got %q", r.Message)
	}
}
