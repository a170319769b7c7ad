package sink

import (
	"sync"

	"github.com/pipelog/pipelog/core"
)

// AsyncSink decouples the caller from downstream latency. Accept only
// appends to an internal queue; a worker goroutine, spawned on the
// idle→non-empty edge and exiting once the queue empties, delivers
// records to the downstream sink in strict FIFO order.
//
// The worker holds its own reference to the sink, so an AsyncSink
// whose external holders have all released it stays alive until the
// drain finishes. There is no flush operation: callers that need
// guaranteed delivery before exit poll Idle.
type AsyncSink struct {
	lifetime
	mu         sync.Mutex
	space      *sync.Cond
	queue      []core.Record
	draining   bool
	downstream Sink
	limit      int
	policy     OverflowPolicy
	stats      Stats
}

// AsyncConfig holds configuration for an AsyncSink
type AsyncConfig struct {
	// Downstream receives drained records
	Downstream Sink
	// QueueLimit bounds the pending queue (0 = unbounded)
	QueueLimit int
	// Overflow selects the policy applied to a full bounded queue
	// (default: DropNewest). Ignored when QueueLimit is 0.
	Overflow OverflowPolicy
}

// NewAsyncSink creates an async sink in front of cfg.Downstream,
// taking one reference to it.
func NewAsyncSink(cfg AsyncConfig) *AsyncSink {
	a := &AsyncSink{
		downstream: cfg.Downstream,
		limit:      cfg.QueueLimit,
		policy:     cfg.Overflow,
	}
	a.space = sync.NewCond(&a.mu)
	a.init(func() { Release(cfg.Downstream) })
	return a
}

// Accept queues r and returns without waiting for delivery. The only
// blocking is the enqueue itself — and, under the Block overflow
// policy, waiting for queue space.
func (a *AsyncSink) Accept(r core.Record) {
	a.mu.Lock()
	if a.limit > 0 && len(a.queue) >= a.limit {
		switch a.policy {
		case DropOldest:
			// In-flight records are popped before delivery, so the
			// head here is never one the worker is writing.
			a.queue = a.queue[1:]
			a.stats.dropped.Add(1)
		case Block:
			a.stats.blocked.Add(1)
			for len(a.queue) >= a.limit {
				a.space.Wait()
			}
		default:
			a.stats.dropped.Add(1)
			a.mu.Unlock()
			return
		}
	}
	a.queue = append(a.queue, r)
	a.stats.accepted.Add(1)
	if !a.draining {
		a.draining = true
		a.Retain() // worker's reference, released when the drain ends
		go a.drain()
	}
	a.mu.Unlock()
}

// drain pops and delivers queued records until the queue empties, then
// exits. At most one drain goroutine runs per sink: the draining flag
// flips only under the queue mutex, so a new worker spawns only after
// the previous one has provably exited its loop.
func (a *AsyncSink) drain() {
	a.mu.Lock()
	for len(a.queue) > 0 {
		head := a.queue[0]
		a.queue = a.queue[1:]
		a.space.Signal()
		a.mu.Unlock()
		a.downstream.Accept(head) // downstream latency absorbed here
		a.stats.delivered.Add(1)
		a.mu.Lock()
	}
	a.draining = false
	a.queue = nil
	a.mu.Unlock()
	a.Release()
}

// Pending returns the number of queued, not-yet-delivered records.
// A record currently being delivered is not counted.
func (a *AsyncSink) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.queue)
}

// Idle reports whether the queue is empty and no worker is draining.
func (a *AsyncSink) Idle() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.draining && len(a.queue) == 0
}

// Stats returns a snapshot of the sink's delivery counters.
func (a *AsyncSink) Stats() Snapshot {
	return a.stats.Snapshot()
}
