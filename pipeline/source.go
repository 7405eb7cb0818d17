package pipeline

import "context"

// Source provides pull-based sequential access to a stream of values.
type Source[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the source.
	Close() error
}

// FromSlice creates a Source over a slice of values.
func FromSlice[T any](items []T) Source[T] {
	return &sliceSource[T]{items: items}
}

// FromFunc creates a Source from a pull function. The function is called
// once per Next and owns its exhaustion and error signaling.
func FromFunc[T any](fn func(ctx context.Context) (T, bool, error)) Source[T] {
	return &funcSource[T]{fn: fn}
}

type sliceSource[T any] struct {
	items []T
	index int
}

func (s *sliceSource[T]) Next(_ context.Context) (T, bool, error) {
	if s.index >= len(s.items) {
		var zero T
		return zero, false, nil
	}
	val := s.items[s.index]
	s.index++
	return val, true, nil
}

func (s *sliceSource[T]) Close() error { return nil }

type funcSource[T any] struct {
	fn func(ctx context.Context) (T, bool, error)
}

func (s *funcSource[T]) Next(ctx context.Context) (T, bool, error) {
	return s.fn(ctx)
}

func (s *funcSource[T]) Close() error { return nil }
