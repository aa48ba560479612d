package loop

// FrameHandle identifies a requested frame callback. The zero handle is never
// issued.
type FrameHandle uint64

// FrameScheduler is the platform's "call me on the next frame" service.
// CancelFrame stops a callback that has not run yet, including one already
// due in the frame currently being dispatched.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
}

type queuedFrame struct {
	handle FrameHandle
	fn     func()
}

// FrameQueue is a FrameScheduler driven by an external frame signal: each
// Pump runs the callbacks requested before it started. Callbacks requested
// during a Pump wait for the next one. Not safe for concurrent use; the game
// pumps it from ebiten's Update.
type FrameQueue struct {
	next    FrameHandle
	pending []queuedFrame
	// due holds the handles of the running Pump that have not run yet.
	due map[FrameHandle]struct{}
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(fn func()) FrameHandle {
	if fn == nil {
		return 0
	}
	q.next++
	q.pending = append(q.pending, queuedFrame{handle: q.next, fn: fn})
	return q.next
}

func (q *FrameQueue) CancelFrame(h FrameHandle) {
	for i, f := range q.pending {
		if f.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	delete(q.due, h)
}

// Pump runs the due callbacks and returns how many ran. A callback cancelled
// by an earlier one in the same Pump is skipped.
func (q *FrameQueue) Pump() int {
	batch := q.pending
	q.pending = nil
	q.due = make(map[FrameHandle]struct{}, len(batch))
	for _, f := range batch {
		q.due[f.handle] = struct{}{}
	}
	defer func() { q.due = nil }()

	ran := 0
	for _, f := range batch {
		if _, ok := q.due[f.handle]; !ok {
			continue
		}
		delete(q.due, f.handle)
		f.fn()
		ran++
	}
	return ran
}

// Len returns the number of callbacks waiting for the next Pump.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}
