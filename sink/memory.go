package sink

import (
	"sync"

	"github.com/pipelog/pipelog/core"
)

// MemorySink keeps the most recent records in memory, for inspection
// and tests. Not durable storage.
type MemorySink struct {
	lifetime
	mu      sync.Mutex
	records []core.Record
	maxSize int
}

// NewMemorySink creates a memory sink holding at most maxSize records
// (-1 = unbounded). When full, the oldest records are evicted first.
func NewMemorySink(maxSize int) *MemorySink {
	m := &MemorySink{maxSize: maxSize}
	m.init(nil)
	return m
}

// Accept appends r, evicting from the head while over capacity.
func (m *MemorySink) Accept(r core.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	for m.maxSize != -1 && len(m.records) > m.maxSize {
		m.records = m.records[1:]
	}
}

// Records returns a snapshot copy of the buffered records in
// insertion order.
func (m *MemorySink) Records() []core.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.Record, len(m.records))
	copy(out, m.records)
	return out
}

// Len returns the number of buffered records.
func (m *MemorySink) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
