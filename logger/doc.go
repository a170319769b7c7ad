// Package logger is the top-level emission API. Most users only need
// to import this package and the sink package.
//
// A process-wide root slot holds the current sink graph. It defaults
// to a synchronous stderr sink, so simple programs can log without
// any setup:
//
//	logger.Infof("listening on %s", addr)
//
// Custom pipelines are built from sinks and installed with SetRoot:
//
//	mem := sink.NewMemorySink(1000)
//	logger.SetRoot(sink.NewAsyncSink(sink.AsyncConfig{
//	    Downstream: sink.NewMultiSink(mem, sink.NewFileSink(sink.FileConfig{})),
//	}))
//
// SetRoot takes ownership of the new sink and releases the previous
// root; swapping the root while an async drain is in flight is legal,
// since the draining worker keeps the old graph alive until its queue
// is exhausted.
//
// The band helpers (Infof, Warningf, Errorf, Fatalf) stamp the current
// time and the caller's file:line as the record context. Fatalf only
// logs — emission never terminates the process and never reports an
// error back to the caller.
package logger
