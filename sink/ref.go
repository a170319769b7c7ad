package sink

import "sync/atomic"

// lifetime implements shared ownership for the built-in sinks: an
// atomic reference count starting at one (the constructing caller's
// reference) and a destroy hook that runs exactly once, on whichever
// goroutine drops the last reference.
type lifetime struct {
	refs    atomic.Int32
	destroy func()
}

func (l *lifetime) init(destroy func()) {
	l.refs.Store(1)
	l.destroy = destroy
}

// Retain adds a reference.
func (l *lifetime) Retain() {
	l.refs.Add(1)
}

// Release drops a reference. The release that takes the count to zero
// runs the destroy hook; releases past zero are ignored.
func (l *lifetime) Release() {
	if l.refs.Add(-1) == 0 && l.destroy != nil {
		l.destroy()
	}
}

// Live reports whether the sink still has at least one holder.
func (l *lifetime) Live() bool {
	return l.refs.Load() > 0
}
