package sink

// OverflowPolicy defines how a bounded AsyncSink handles a full queue
type OverflowPolicy int

const (
	// DropNewest drops the incoming record when the queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest evicts the oldest queued record to make room
	DropOldest
	// Block waits for the worker to free queue space
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}
