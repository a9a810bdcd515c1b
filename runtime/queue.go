package runtime

import "sync"

// Queue batches callbacks posted from any goroutine for explicit flushing
// on the UI goroutine.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	closed  bool
}

// Post enqueues fn. It returns false after Close.
func (q *Queue) Post(fn func()) bool {
	if q == nil || fn == nil {
		return false
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.pending = append(q.pending, fn)
	return true
}

// Flush runs the queued callbacks in posting order and returns the count.
// Callbacks posted while flushing run on the next Flush.
func (q *Queue) Flush() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}

// Close drops pending callbacks and rejects later posts.
func (q *Queue) Close() {
	if q == nil {
		return
	}
	q.mu.Lock()
	q.closed = true
	q.pending = nil
	q.mu.Unlock()
}

// Len returns the number of pending callbacks.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
