package sink

import "sync/atomic"

// Stats tracks per-sink delivery counters
type Stats struct {
	accepted  atomic.Uint64
	delivered atomic.Uint64
	dropped   atomic.Uint64
	blocked   atomic.Uint64
}

// Snapshot is a point-in-time copy of a sink's counters
type Snapshot struct {
	// Accepted counts records enqueued
	Accepted uint64
	// Delivered counts records handed to the downstream sink
	Delivered uint64
	// Dropped counts records discarded by an overflow policy
	Dropped uint64
	// Blocked counts accepts that waited for queue space
	Blocked uint64
}

// Snapshot returns a copy of the current counters.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Accepted:  s.accepted.Load(),
		Delivered: s.delivered.Load(),
		Dropped:   s.dropped.Load(),
		Blocked:   s.blocked.Load(),
	}
}
