package testutil

import (
	"testing"
	"time"
)

// Go runs fn in a goroutine and returns a channel that is closed when fn
// returns. Combine with AssertCompletes / AssertBlocked to test blocking
// behavior.
func Go(fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	return done
}

// GoErr runs fn in a goroutine and returns a channel that receives its
// error result exactly once.
func GoErr(fn func() error) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- fn()
	}()
	return errCh
}

// AssertCompletes fails the test unless done is closed within timeout.
func AssertCompletes(t *testing.T, done <-chan struct{}, timeout time.Duration, msg string) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatalf("%s: goroutine did not complete within %v", msg, timeout)
	}
}

// AssertBlocked fails the test if done closes within window. Use a window
// long enough to make scheduling noise unlikely but short enough to keep
// tests fast.
func AssertBlocked(t *testing.T, done <-chan struct{}, window time.Duration, msg string) {
	t.Helper()
	select {
	case <-done:
		t.Fatalf("%s: expected goroutine to stay blocked for %v", msg, window)
	case <-time.After(window):
	}
}

// WaitErr waits up to timeout for an error result from GoErr and returns it.
// Fails the test if no result arrives in time.
func WaitErr(t *testing.T, errCh <-chan error, timeout time.Duration) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(timeout):
		t.Fatalf("no result within %v", timeout)
		return nil
	}
}

// Eventually polls cond every tick until it returns true or timeout passes,
// and fails the test on timeout.
func Eventually(t *testing.T, timeout, tick time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(tick)
	}
	t.Fatalf("%s: condition not met within %v", msg, timeout)
}
