// internal/frame/frame.go
package frame

import "sync"

// Handle identifies a pending frame callback. The zero Handle is never issued.
type Handle uint64

// Scheduler runs callbacks on the next display frame.
type Scheduler interface {
	Request(cb func()) Handle
	Cancel(h Handle)
}

type request struct {
	id Handle
	cb func()
}

// Queue is a Scheduler driven by the host loop: call Run once per frame.
type Queue struct {
	mu       sync.Mutex
	next     Handle
	pending  []request
	inflight map[Handle]struct{} // batch of the Run in progress
}

func NewQueue() *Queue {
	return &Queue{inflight: make(map[Handle]struct{})}
}

func (q *Queue) Request(cb func()) Handle {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.pending = append(q.pending, request{id: q.next, cb: cb})
	return q.next
}

func (q *Queue) Cancel(h Handle) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.inflight, h)
	for i, r := range q.pending {
		if r.id == h {
			q.pending = append(q.pending[:i:i], q.pending[i+1:]...)
			return
		}
	}
}

// Run executes the callbacks pending at the start of the call, in request
// order, and returns how many ran. Callbacks requested while running wait
// for the next Run; callbacks cancelled while running are skipped.
func (q *Queue) Run() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	for _, r := range batch {
		q.inflight[r.id] = struct{}{}
	}
	q.mu.Unlock()

	ran := 0
	for _, r := range batch {
		q.mu.Lock()
		_, live := q.inflight[r.id]
		delete(q.inflight, r.id)
		q.mu.Unlock()
		if !live {
			continue
		}
		r.cb()
		ran++
	}
	return ran
}

// Len reports the number of pending callbacks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
