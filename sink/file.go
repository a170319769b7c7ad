package sink

import (
	"io"
	"os"
	"sync"

	"github.com/pipelog/pipelog/core"
	"github.com/pipelog/pipelog/formatter"
)

// FileSink formats records to text and writes one line per record to
// an io.Writer.
type FileSink struct {
	lifetime
	mu        sync.Mutex
	w         io.Writer
	format    formatter.Formatter
	autoClose bool
}

// FileConfig holds configuration for a FileSink
type FileConfig struct {
	// Writer receives formatted lines (default: os.Stderr)
	Writer io.Writer
	// Formatter renders records (default: formatter.Default())
	Formatter formatter.Formatter
	// AutoClose closes the writer when the last reference is
	// released. Leave unset for process-owned streams like stderr.
	AutoClose bool
}

// NewFileSink creates a file sink over cfg.Writer.
func NewFileSink(cfg FileConfig) *FileSink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.Default()
	}
	f := &FileSink{w: cfg.Writer, format: cfg.Formatter, autoClose: cfg.AutoClose}
	f.init(f.close)
	return f
}

// OpenFileSink opens path in append mode (creating it if needed) and
// returns a file sink that closes it when the last reference is
// released. cfg.Writer and cfg.AutoClose are ignored.
func OpenFileSink(path string, cfg FileConfig) (*FileSink, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	cfg.Writer = file
	cfg.AutoClose = true
	return NewFileSink(cfg), nil
}

// Accept formats r and writes one newline-terminated line. Accepts on
// the same instance are serialized so concurrent callers never
// interleave lines. Write errors are swallowed.
func (f *FileSink) Accept(r core.Record) {
	line := f.format(r)
	f.mu.Lock()
	defer f.mu.Unlock()
	_, _ = io.WriteString(f.w, line+"\n")
}

func (f *FileSink) close() {
	if !f.autoClose {
		return
	}
	if c, ok := f.w.(io.Closer); ok {
		_ = c.Close()
	}
}
