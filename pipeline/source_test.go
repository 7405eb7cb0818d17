package pipeline

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/kbukum/pipekit/logger"
)

// testLogger returns a quiet logger for producer/consumer tests.
func testLogger() *logger.Logger {
	return logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"}, "test")
}

func TestFromSlice_YieldsInOrder(t *testing.T) {
	src := FromSlice([]string{"a", "b"})
	defer src.Close()

	ctx := context.Background()
	v, ok, err := src.Next(ctx)
	if err != nil || !ok || v != "a" {
		t.Fatalf("expected (a, true, nil), got (%v, %v, %v)", v, ok, err)
	}
	v, ok, err = src.Next(ctx)
	if err != nil || !ok || v != "b" {
		t.Fatalf("expected (b, true, nil), got (%v, %v, %v)", v, ok, err)
	}
}

func TestFromSlice_Exhaustion(t *testing.T) {
	src := FromSlice([]int{1})
	ctx := context.Background()

	if _, ok, _ := src.Next(ctx); !ok {
		t.Fatal("expected first value")
	}
	for i := 0; i < 3; i++ {
		v, ok, err := src.Next(ctx)
		if ok || err != nil || v != 0 {
			t.Fatalf("exhausted source must keep returning (zero, false, nil), got (%v, %v, %v)", v, ok, err)
		}
	}
}

func TestFromSlice_Empty(t *testing.T) {
	src := FromSlice([]int{})
	if _, ok, err := src.Next(context.Background()); ok || err != nil {
		t.Errorf("expected immediate exhaustion, got ok=%v err=%v", ok, err)
	}
}

func TestFromFunc_PassesThrough(t *testing.T) {
	wantErr := stderrors.New("pull failed")
	calls := 0
	src := FromFunc(func(_ context.Context) (int, bool, error) {
		calls++
		if calls == 1 {
			return 7, true, nil
		}
		return 0, false, wantErr
	})
	defer src.Close()

	ctx := context.Background()
	v, ok, err := src.Next(ctx)
	if err != nil || !ok || v != 7 {
		t.Fatalf("expected (7, true, nil), got (%v, %v, %v)", v, ok, err)
	}
	_, _, err = src.Next(ctx)
	if !stderrors.Is(err, wantErr) {
		t.Fatalf("expected pull error, got %v", err)
	}
}

func TestSources_CloseIsNil(t *testing.T) {
	if err := FromSlice([]int{1}).Close(); err != nil {
		t.Errorf("slice source Close should be nil, got %v", err)
	}
	if err := FromFunc(func(_ context.Context) (int, bool, error) { return 0, false, nil }).Close(); err != nil {
		t.Errorf("func source Close should be nil, got %v", err)
	}
}
