package benchmark

import (
	"io"
	"testing"
	"time"

	"github.com/pipelog/pipelog/core"
	"github.com/pipelog/pipelog/sink"
)

func benchRecord() core.Record {
	return core.Record{
		Time:     core.Now(),
		Severity: core.Info,
		Context:  "benchmark_test.go:1",
		Message:  "The quick brown fox jumps over the lazy dog",
	}
}

func BenchmarkFileSinkDiscard(b *testing.B) {
	f := sink.NewFileSink(sink.FileConfig{Writer: io.Discard})
	r := benchRecord()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Accept(r)
	}
}

func BenchmarkMemorySinkBounded(b *testing.B) {
	m := sink.NewMemorySink(1024)
	r := benchRecord()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Accept(r)
	}
}

func BenchmarkSeverityFilterDrop(b *testing.B) {
	f := sink.NewSeverityFilter(noopSink{}, 100, -1)
	r := benchRecord() // severity 0: always dropped

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Accept(r)
	}
}

func BenchmarkMultiSinkFanOut3(b *testing.B) {
	m := sink.NewMultiSink(noopSink{}, noopSink{}, noopSink{})
	r := benchRecord()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Accept(r)
	}
}

func BenchmarkAsyncSinkEnqueue(b *testing.B) {
	a := sink.NewAsyncSink(sink.AsyncConfig{Downstream: noopSink{}})
	r := benchRecord()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Accept(r)
	}
	b.StopTimer()

	for !a.Idle() {
		time.Sleep(time.Millisecond)
	}
}
