// Package sink provides the Sink interface and its built-in
// implementations for routing records to destinations.
//
// Sinks compose into a directed graph: the caller constructs each sink
// with its downstream sink(s) already in hand, then emits records at
// the graph's root. Delivery is fire-and-forget — Accept returns
// nothing and sink-level faults are never propagated back to the code
// that emitted the record.
//
// Built-in sinks:
//
//   - MultiSink fans one record out to an ordered list of sinks.
//   - FilterSink gates records on a predicate; NewSeverityFilter is
//     the built-in severity-range combinator.
//   - MemorySink keeps the last N records in a mutex-guarded buffer,
//     for inspection and tests.
//   - FileSink formats records to text and writes one line per record
//     to an io.Writer.
//   - AsyncSink decouples the caller from downstream latency with an
//     internal queue drained by a spawn-on-demand worker goroutine.
//
// Sinks are shared-ownership objects: a sink may be held by the global
// root slot, by a wrapping sink, and by a draining worker goroutine at
// the same time. Every built-in sink carries a reference count that
// starts at one and runs a destroy hook (closing an owned file,
// releasing downstream sinks) when the last holder calls Release.
// User-defined sinks only need Accept; Retain and Release no-op for
// sinks that don't opt into the Holder interface.
package sink
