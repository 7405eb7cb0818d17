package pipeline

// message is the envelope flowing through the shared queue. A message with
// end set is the end-of-stream marker. Because the marker is a tagged
// variant rather than a reserved payload value, no payload (including the
// zero value of T) can ever be mistaken for it.
type message[T any] struct {
	value T
	end   bool
}

// endOfStream returns the end-of-stream marker for element type T.
func endOfStream[T any]() message[T] {
	return message[T]{end: true}
}
