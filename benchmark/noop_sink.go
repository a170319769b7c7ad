package benchmark

import "github.com/pipelog/pipelog/core"

// noopSink measures pipeline overhead without any I/O.
type noopSink struct{}

func (noopSink) Accept(r core.Record) {
	_ = len(r.Message)
}
