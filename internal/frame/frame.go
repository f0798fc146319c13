package frame

import "time"

// Handle identifies one pending frame callback. The zero Handle is
// never issued and is safe to cancel.
type Handle uint64

// Callback is one frame step. now is the frame timestamp; time.Time
// carries a monotonic reading, so subtraction is safe across clock
// adjustments.
type Callback func(now time.Time)

// Scheduler registers callbacks to run on the next frame.
type Scheduler interface {
	Schedule(fn Callback) Handle
	Cancel(h Handle)
}

// Clock is the time source paired with a Scheduler.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Queue is a Scheduler whose pending callbacks fire exactly once on
// the next Flush. Callbacks scheduled during a flush run on the
// following flush, never the current one.
type Queue struct {
	next    Handle
	pending map[Handle]Callback
}

func NewQueue() *Queue {
	return &Queue{pending: make(map[Handle]Callback)}
}

func (q *Queue) Schedule(fn Callback) Handle {
	q.next++
	q.pending[q.next] = fn
	return q.next
}

// Cancel removes a pending callback. Unknown or already-fired handles
// are ignored.
func (q *Queue) Cancel(h Handle) {
	delete(q.pending, h)
}

// Pending reports the number of callbacks waiting for the next flush.
func (q *Queue) Pending() int { return len(q.pending) }

// Flush runs every callback that was pending when it was called,
// passing now as the frame timestamp.
func (q *Queue) Flush(now time.Time) {
	if len(q.pending) == 0 {
		return
	}
	batch := q.pending
	q.pending = make(map[Handle]Callback)
	for _, fn := range batch {
		fn(now)
	}
}
