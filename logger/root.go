package logger

import (
	"sync"

	"github.com/pipelog/pipelog/core"
	"github.com/pipelog/pipelog/sink"
)

var (
	rootMu sync.RWMutex
	root   sink.Sink
)

func init() {
	// By default logging is synchronous and goes to stderr
	root = sink.NewFileSink(sink.FileConfig{})
}

// Root returns the current root sink.
func Root() sink.Sink {
	rootMu.RLock()
	defer rootMu.RUnlock()
	return root
}

// SetRoot installs s as the root sink, taking ownership of its
// initial reference, and releases the previous root. The old graph
// stays alive through any worker still draining it.
func SetRoot(s sink.Sink) {
	rootMu.Lock()
	old := root
	root = s
	rootMu.Unlock()
	sink.Release(old)
}

// Emit forwards a fully-populated record to the current root sink.
func Emit(r core.Record) {
	Root().Accept(r)
}
