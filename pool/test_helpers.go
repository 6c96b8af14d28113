package pool

import (
	"testing"
	"time"
)

// spawn runs fn in a goroutine and returns a channel that closes when fn
// returns. Used to observe whether a blocking call has finished.
func spawn(fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	return done
}

// waitDone fails the test unless ch closes within timeout.
func waitDone(t *testing.T, ch <-chan struct{}, timeout time.Duration, msg string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(timeout):
		t.Fatal(msg)
	}
}

// stillOpen fails the test if ch closes before d elapses.
func stillOpen(t *testing.T, ch <-chan struct{}, d time.Duration, msg string) {
	t.Helper()
	select {
	case <-ch:
		t.Fatal(msg)
	case <-time.After(d):
	}
}
