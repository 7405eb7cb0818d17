package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/queue"
	"github.com/kbukum/pipekit/testutil"
)

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRun_OrderPreservedWithSmallCapacity(t *testing.T) {
	// Capacity below the source length forces at least one blocking cycle.
	got, err := Run(context.Background(), FromSlice([]int{1, 2, 3}), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestRun_EmptySource(t *testing.T) {
	done := make(chan struct{})
	var got []int
	var err error
	go func() {
		defer close(done)
		got, err = Run(context.Background(), FromSlice([]int{}), 2)
	}()

	testutil.AssertCompletes(t, done, 5*time.Second, "pipeline over empty source")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty destination, got %v", got)
	}
}

func TestRun_AllCapacities(t *testing.T) {
	source := []int{10, 20, 30, 40, 50, 60, 70, 80}
	for c := 1; c <= len(source); c++ {
		t.Run(fmt.Sprintf("capacity_%d", c), func(t *testing.T) {
			got, err := Run(context.Background(), FromSlice(source), c)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !intSliceEqual(got, source) {
				t.Errorf("capacity %d: got %v, want %v", c, got, source)
			}
		})
	}
}

func TestRun_InvalidCapacity(t *testing.T) {
	_, err := Run(context.Background(), FromSlice([]int{1}), 0)
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestRun_ZeroValuedPayloadsAreDelivered(t *testing.T) {
	// Payloads equal to T's zero value must never be mistaken for
	// end-of-stream; only the tagged marker halts the consumer.
	got, err := Run(context.Background(), FromSlice([]int{0, 0, 0}), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !intSliceEqual(got, []int{0, 0, 0}) {
		t.Errorf("got %v, want [0 0 0]", got)
	}
}

func TestRun_StringPayloads(t *testing.T) {
	src := []string{"a", "", "c"}
	got, err := Run(context.Background(), FromSlice(src), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "" || got[2] != "c" {
		t.Errorf("got %v, want %v", got, src)
	}
}

func TestRun_SourceFailureMidStream(t *testing.T) {
	cause := stderrors.New("disk read failed")
	calls := 0
	src := FromFunc(func(_ context.Context) (int, bool, error) {
		calls++
		if calls > 2 {
			return 0, false, cause
		}
		return calls, true, nil
	})

	got, err := Run(context.Background(), src, 2)
	if err == nil {
		t.Fatal("expected error from failing source")
	}
	if !errors.IsCode(err, errors.ErrCodeSourceFailure) {
		t.Errorf("expected SOURCE_FAILURE, got %v", err)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected the underlying cause to be preserved")
	}
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("expected the two successfully produced items, got %v", got)
	}
}

func TestRun_StressCapacityOne(t *testing.T) {
	const n = 1000
	source := make([]int, n)
	for i := range source {
		source[i] = i
	}

	got, err := Run(context.Background(), FromSlice(source), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != n {
		t.Fatalf("expected %d items, got %d", n, len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("order violated at index %d: got %d", i, v)
		}
	}
}

func TestRun_FreshStatePerRun(t *testing.T) {
	first, err := Run(context.Background(), FromSlice([]int{1, 2}), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Run(context.Background(), FromSlice([]int{3, 4}), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !intSliceEqual(first, []int{1, 2}) || !intSliceEqual(second, []int{3, 4}) {
		t.Errorf("runs leaked state: first=%v second=%v", first, second)
	}
}

func TestProducer_DeliversMarkerAfterSourceFailure(t *testing.T) {
	q, _ := queue.New[message[int]](2)
	cause := stderrors.New("source exploded")
	prod := &producer[int]{
		queue:  q,
		source: FromFunc(func(_ context.Context) (int, bool, error) { return 0, false, cause }),
		log:    testLogger(),
	}

	errCh := testutil.GoErr(func() error { return prod.run(context.Background()) })

	err := testutil.WaitErr(t, errCh, time.Second)
	if !errors.IsCode(err, errors.ErrCodeSourceFailure) {
		t.Fatalf("expected SOURCE_FAILURE, got %v", err)
	}

	msg := q.Get()
	if !msg.end {
		t.Error("expected the end-of-stream marker despite the failure")
	}
}

func TestProducer_PutTimeoutPropagates(t *testing.T) {
	q, _ := queue.New[message[int]](1)
	// Occupy the only slot so the first put cannot proceed.
	q.Put(message[int]{value: 99})

	prod := &producer[int]{
		queue:      q,
		source:     FromSlice([]int{42}),
		putTimeout: 50 * time.Millisecond,
		log:        testLogger(),
	}

	errCh := testutil.GoErr(func() error { return prod.run(context.Background()) })

	// The marker put blocks indefinitely until the stale item is drained.
	time.Sleep(100 * time.Millisecond)
	if msg := q.Get(); msg.end || msg.value != 99 {
		t.Fatalf("expected the stale payload first, got %+v", msg)
	}

	err := testutil.WaitErr(t, errCh, time.Second)
	if !errors.IsTimeout(err) {
		t.Fatalf("expected TIMEOUT, got %v", err)
	}

	if msg := q.Get(); !msg.end {
		t.Error("expected the end-of-stream marker after the timed-out run")
	}
}

func TestConsumer_GetTimeoutGuardsAgainstSilentProducer(t *testing.T) {
	q, _ := queue.New[message[int]](1)
	cons := &consumer[int]{
		queue:      q,
		getTimeout: 50 * time.Millisecond,
		log:        testLogger(),
	}

	errCh := testutil.GoErr(func() error { return cons.run(context.Background()) })

	err := testutil.WaitErr(t, errCh, time.Second)
	if !errors.IsTimeout(err) {
		t.Fatalf("expected TIMEOUT, got %v", err)
	}
	if len(cons.items()) != 0 {
		t.Errorf("expected no items, got %v", cons.items())
	}
}

func TestConsumer_StopsOnMarkerOnly(t *testing.T) {
	q, _ := queue.New[message[int]](3)
	q.Put(message[int]{value: 0}) // zero payload, not a marker
	q.Put(message[int]{value: 5})
	q.Put(endOfStream[int]())

	cons := &consumer[int]{queue: q, log: testLogger()}

	done := testutil.Go(func() { _ = cons.run(context.Background()) })
	testutil.AssertCompletes(t, done, time.Second, "consumer drain")

	if !intSliceEqual(cons.items(), []int{0, 5}) {
		t.Errorf("expected [0 5], got %v", cons.items())
	}
}
