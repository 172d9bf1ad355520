package engine

import "time"

// FrameFunc is a one-shot callback run on the next frame
type FrameFunc func(now time.Time)

// FrameQueue is a cooperative next-frame scheduler
// Callbacks requested during a flush run on the following flush, never re-entrantly
type FrameQueue struct {
	pending []FrameFunc
	running []FrameFunc
	flushes uint64
}

// NewFrameQueue creates an empty queue
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{
		pending: make([]FrameFunc, 0, 4),
		running: make([]FrameFunc, 0, 4),
	}
}

// RequestFrame schedules fn for the next flush
func (q *FrameQueue) RequestFrame(fn FrameFunc) {
	if fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

// Pending returns the number of callbacks waiting for the next flush
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Flushes returns how many frames have been flushed
func (q *FrameQueue) Flushes() uint64 {
	return q.flushes
}

// Flush runs every callback requested before the call, returns how many ran
// The two buffers swap roles so steady-state flushing does not allocate
func (q *FrameQueue) Flush(now time.Time) int {
	q.running, q.pending = q.pending, q.running[:0]
	q.flushes++

	for i, fn := range q.running {
		fn(now)
		q.running[i] = nil
	}
	n := len(q.running)
	q.running = q.running[:0]
	return n
}
