package sink

import "github.com/pipelog/pipelog/core"

// Sink defines the capability all destinations implement
type Sink interface {
	// Accept takes one record. It must not panic on well-formed input
	// and returns nothing: delivery failures are swallowed, never
	// surfaced to the emitting caller. Accept may block the caller
	// briefly (a per-instance lock, or an async enqueue).
	Accept(r core.Record)
}

// Holder is an optional interface for sinks that participate in
// shared ownership. All built-in sinks implement it.
type Holder interface {
	// Retain adds a reference to the sink.
	Retain()

	// Release drops a reference; the last release destroys the sink.
	// Safe to call from any goroutine.
	Release()
}

// Retain adds a reference to s if it participates in shared ownership.
func Retain(s Sink) {
	if h, ok := s.(Holder); ok {
		h.Retain()
	}
}

// Release drops a reference to s if it participates in shared ownership.
func Release(s Sink) {
	if h, ok := s.(Holder); ok {
		h.Release()
	}
}
