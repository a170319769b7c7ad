package sink

import "github.com/pipelog/pipelog/core"

// Predicate decides whether a record passes a FilterSink
type Predicate func(r core.Record) bool

// FilterSink forwards records matching a predicate to one downstream
// sink and silently drops the rest.
type FilterSink struct {
	lifetime
	downstream Sink
	pred       Predicate
}

// NewFilterSink creates a predicate gate in front of downstream,
// taking one reference to it.
func NewFilterSink(downstream Sink, pred Predicate) *FilterSink {
	f := &FilterSink{downstream: downstream, pred: pred}
	f.init(func() { Release(downstream) })
	return f
}

// Accept forwards r iff the predicate accepts it.
func (f *FilterSink) Accept(r core.Record) {
	if f.pred(r) {
		f.downstream.Accept(r)
	}
}

// NewSeverityFilter creates a FilterSink passing records with
// severity >= low and, unless high is -1, severity <= high.
func NewSeverityFilter(downstream Sink, low, high core.Severity) *FilterSink {
	return NewFilterSink(downstream, func(r core.Record) bool {
		return r.Severity >= low && (high == -1 || r.Severity <= high)
	})
}
