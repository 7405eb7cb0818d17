// Package queue provides a bounded blocking FIFO queue for coordinating
// producer and consumer goroutines.
//
// The queue follows the monitor pattern: one mutex guards the buffer and two
// condition variables ("not full", "not empty") suspend callers whose
// predicate does not hold. Wait loops re-check their predicate after every
// wakeup, so spurious or surplus wakeups never corrupt the buffer, and timed
// waits measure against the monotonic clock so wall-clock adjustments never
// cause a premature or delayed expiry.
//
//	q, err := queue.New[int](8)
//	if err != nil { ... }
//
//	go func() { q.Put(42) }()
//
//	v, err := q.GetTimeout(50 * time.Millisecond)
//	if errors.IsTimeout(err) { ... }
//
// There is no close operation; end-of-stream is an application concern (the
// pipeline package signals it with an end-of-stream envelope flowing through
// the queue like any other element).
package queue
