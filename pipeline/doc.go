// Package pipeline wires a data source, a bounded blocking queue, and a
// data sink into a single-producer, single-consumer pipeline.
//
// The producer pulls values from a Source and puts them on the queue in
// order; the consumer gets them until it observes the end-of-stream marker.
// End-of-stream travels through the queue as a tagged envelope rather than a
// reserved payload value, so any payload, the zero value included, is
// delivered verbatim.
//
//	items, err := pipeline.Run(ctx, pipeline.FromSlice([]int{1, 2, 3}), 2)
//	// items == []int{1, 2, 3}
//
// Failure discipline: a failing source never strands the consumer; the
// producer delivers the marker before reporting the failure, and Run
// surfaces the error only after both sides have terminated. Per-call put
// and get timeouts (WithPutTimeout, WithGetTimeout) are the only
// cancellation mechanism for the queue operations themselves.
package pipeline
