package easteregg

import "time"

// FrameID identifies a requested frame. Zero means no frame.
type FrameID uint64

// FrameSource schedules callbacks at the host's next refresh opportunity.
type FrameSource interface {
	// RequestFrame schedules fn for the next frame and returns its ID.
	RequestFrame(fn func(now time.Time)) FrameID
	// CancelFrame drops a pending frame. Unknown or fired IDs are ignored.
	CancelFrame(id FrameID)
}

// FrameQueue is a cooperative FrameSource holding at most one pending frame.
// The host calls Fire on each refresh: a Bubble Tea tick message in the
// terminal, or directly in tests.
type FrameQueue struct {
	nextID  FrameID
	pending FrameID
	fn      func(time.Time)
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame replaces any pending frame with fn.
func (q *FrameQueue) RequestFrame(fn func(now time.Time)) FrameID {
	q.nextID++
	q.pending = q.nextID
	q.fn = fn
	return q.pending
}

// CancelFrame drops the pending frame if id still refers to it.
func (q *FrameQueue) CancelFrame(id FrameID) {
	if id == 0 || id != q.pending {
		return
	}
	q.pending = 0
	q.fn = nil
}

// Pending reports whether a frame is waiting to fire.
func (q *FrameQueue) Pending() bool {
	return q.pending != 0
}

// Fire runs the pending callback once and reports whether one ran.
// The slot is emptied before the call so the callback may request the
// next frame.
func (q *FrameQueue) Fire(now time.Time) bool {
	if q.pending == 0 {
		return false
	}
	fn := q.fn
	q.pending = 0
	q.fn = nil
	fn(now)
	return true
}
