package sink

import "github.com/pipelog/pipelog/core"

// MultiSink fans one record out to an ordered list of downstream sinks
type MultiSink struct {
	lifetime
	sinks []Sink
}

// NewMultiSink creates a fan-out over the given sinks, taking one
// reference to each.
func NewMultiSink(sinks ...Sink) *MultiSink {
	m := &MultiSink{sinks: sinks}
	m.init(m.releaseAll)
	return m
}

// Accept delivers r to every downstream sink in order, synchronously,
// on the caller's goroutine. Fan-out is best-effort per destination;
// there is no atomicity across destinations.
func (m *MultiSink) Accept(r core.Record) {
	for _, s := range m.sinks {
		s.Accept(r)
	}
}

func (m *MultiSink) releaseAll() {
	for _, s := range m.sinks {
		Release(s)
	}
}
