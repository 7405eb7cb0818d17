package queue

import (
	"sync"
	"time"

	"github.com/kbukum/pipekit/errors"
)

// Operation names reported in timeout errors.
const (
	opPut = "queue.put"
	opGet = "queue.get"
)

// BoundedQueue is a capacity-limited FIFO queue safe for concurrent use.
// Put blocks while the queue is full and Get blocks while it is empty;
// the timed variants give up after a duration measured on the monotonic
// clock. A single mutex guards the buffer for the whole of every
// check-mutate-signal sequence.
type BoundedQueue[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	items    []T
	capacity int
	head     int
	tail     int
	size     int
}

// New creates a bounded queue with the given capacity.
// Returns errors.InvalidConfig if capacity is less than 1.
func New[T any](capacity int) (*BoundedQueue[T], error) {
	if capacity < 1 {
		return nil, errors.InvalidConfig("capacity", "must be at least 1")
	}
	q := &BoundedQueue[T]{
		items:    make([]T, capacity),
		capacity: capacity,
	}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q, nil
}

// Put appends item at the tail, blocking indefinitely while the queue is
// full. On return the item is enqueued and one waiting Get has been woken.
func (q *BoundedQueue[T]) Put(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.size == q.capacity {
		q.notFull.Wait()
	}

	q.enqueue(item)
	q.notEmpty.Signal()
}

// PutTimeout is Put with a bounded wait. If the queue is still full when
// the timeout expires it returns errors.Timeout and the queue is unchanged.
func (q *BoundedQueue[T]) PutTimeout(item T, timeout time.Duration) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.waitTimeout(q.notFull, timeout, func() bool { return q.size < q.capacity }) {
		return errors.Timeout(opPut).WithDetail("timeout_ms", timeout.Milliseconds())
	}

	q.enqueue(item)
	q.notEmpty.Signal()
	return nil
}

// Get removes and returns the head item, blocking indefinitely while the
// queue is empty. On return one waiting Put has been woken.
func (q *BoundedQueue[T]) Get() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.size == 0 {
		q.notEmpty.Wait()
	}

	item := q.dequeue()
	q.notFull.Signal()
	return item
}

// GetTimeout is Get with a bounded wait. If the queue is still empty when
// the timeout expires it returns errors.Timeout and the queue is unchanged.
func (q *BoundedQueue[T]) GetTimeout(timeout time.Duration) (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.waitTimeout(q.notEmpty, timeout, func() bool { return q.size > 0 }) {
		var zero T
		return zero, errors.Timeout(opGet).WithDetail("timeout_ms", timeout.Milliseconds())
	}

	item := q.dequeue()
	q.notFull.Signal()
	return item, nil
}

// Size returns the number of items currently queued. The value is advisory:
// it may be stale as soon as it is returned under concurrent access.
func (q *BoundedQueue[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Cap returns the capacity the queue was constructed with.
func (q *BoundedQueue[T]) Cap() int {
	return q.capacity
}

// IsEmpty reports whether the queue is empty. Advisory, like Size.
func (q *BoundedQueue[T]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size == 0
}

// IsFull reports whether the queue is at capacity. Advisory, like Size.
func (q *BoundedQueue[T]) IsFull() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size == q.capacity
}

// waitTimeout blocks on cond until pred becomes true or the timeout expires,
// and reports whether pred held. The deadline is computed once from
// time.Now (which carries a monotonic reading), so wall-clock adjustments
// never shift it, and every re-wait after a spurious wakeup consumes the
// remaining budget instead of resetting it. Expiry is delivered by a timer
// broadcast on cond; woken waiters re-check pred and their own deadline.
// The timer callback takes and releases q.mu before broadcasting: Wait
// registers on the notify list while still holding the mutex, so the
// lock round-trip orders the broadcast after the registration and the
// wakeup cannot be lost to a waiter that armed the timer but has not
// parked yet. Caller must hold q.mu.
func (q *BoundedQueue[T]) waitTimeout(cond *sync.Cond, timeout time.Duration, pred func() bool) bool {
	deadline := time.Now().Add(timeout)
	for !pred() {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}
		timer := time.AfterFunc(remaining, func() {
			q.mu.Lock()
			q.mu.Unlock()
			cond.Broadcast()
		})
		cond.Wait()
		timer.Stop()
	}
	return true
}

// enqueue appends at the tail. Caller must hold q.mu and have verified
// there is room.
func (q *BoundedQueue[T]) enqueue(item T) {
	q.items[q.tail] = item
	q.tail = (q.tail + 1) % q.capacity
	q.size++
}

// dequeue removes from the head. Caller must hold q.mu and have verified
// the queue is non-empty. The freed slot is zeroed so the queue does not
// pin dequeued values.
func (q *BoundedQueue[T]) dequeue() T {
	var zero T
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % q.capacity
	q.size--
	return item
}
