package pool

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_Clear(t *testing.T) {
	t.Run("discards pending while stopped", func(t *testing.T) {
		p := New(WithThreads(2))

		var counter atomic.Int32
		for i := 0; i < 8; i++ {
			p.SubmitFunc(func() { counter.Add(1) })
		}
		if got := p.Pending(); got != 8 {
			t.Fatalf("expected 8 pending, got %d", got)
		}

		p.Clear()
		if got := p.Pending(); got != 0 {
			t.Errorf("expected 0 pending after Clear, got %d", got)
		}

		p.Start()
		p.WaitIdle()
		p.Stop(StopSync)
		if got := counter.Load(); got != 0 {
			t.Errorf("cleared tasks ran anyway: %d", got)
		}
	})

	t.Run("leaves in-flight tasks alone", func(t *testing.T) {
		p := New(WithThreads(1))
		p.Start()
		defer p.Close()

		release := make(chan struct{})
		var inFlight, dropped atomic.Int32
		p.SubmitFunc(func() {
			<-release
			inFlight.Add(1)
		})
		for i := 0; i < 4; i++ {
			p.SubmitFunc(func() { dropped.Add(1) })
		}
		time.Sleep(20 * time.Millisecond) // worker blocked on release, 4 queued

		p.Clear()
		close(release)
		p.WaitIdle()

		if got := inFlight.Load(); got != 1 {
			t.Errorf("in-flight task affected by Clear: ran %d times", got)
		}
		if got := dropped.Load(); got != 0 {
			t.Errorf("cleared tasks ran anyway: %d", got)
		}
	})

	t.Run("empty queue", func(t *testing.T) {
		p := New(WithThreads(1))
		p.Clear()
		if got := p.Pending(); got != 0 {
			t.Errorf("expected 0 pending, got %d", got)
		}
	})
}

func TestPool_WaitIdle(t *testing.T) {
	t.Run("blocks until queue drains", func(t *testing.T) {
		p := New(WithThreads(2))
		p.Start()
		defer p.Close()

		var counter atomic.Int32
		for i := 0; i < 20; i++ {
			p.SubmitFunc(func() {
				time.Sleep(5 * time.Millisecond)
				counter.Add(1)
			})
		}

		p.WaitIdle()
		if got := counter.Load(); got != 20 {
			t.Errorf("WaitIdle returned with %d of 20 tasks done", got)
		}
		if p.HasPending() || p.HasRunning() {
			t.Error("pool not idle after WaitIdle")
		}
	})

	t.Run("blocks on in-flight work", func(t *testing.T) {
		p := New(WithThreads(1))
		p.Start()
		defer p.Close()

		release := make(chan struct{})
		p.SubmitFunc(func() { <-release })
		time.Sleep(20 * time.Millisecond) // claimed, queue now empty

		waiter := spawn(p.WaitIdle)
		stillOpen(t, waiter, 50*time.Millisecond, "WaitIdle returned while a task was running")

		close(release)
		waitDone(t, waiter, time.Second, "WaitIdle did not return after the task finished")
	})

	t.Run("returns immediately when idle", func(t *testing.T) {
		p := New(WithThreads(2))
		p.Start()
		defer p.Close()

		waitDone(t, spawn(p.WaitIdle), time.Second, "WaitIdle blocked on an idle pool")
	})

	t.Run("unblocked by Clear while stopped", func(t *testing.T) {
		p := New(WithThreads(1)) // never started, so the backlog cannot drain

		for i := 0; i < 3; i++ {
			p.SubmitFunc(func() {})
		}

		waiter := spawn(p.WaitIdle)
		stillOpen(t, waiter, 50*time.Millisecond, "WaitIdle returned with tasks pending")

		p.Clear()
		waitDone(t, waiter, time.Second, "WaitIdle did not observe the Clear")
	})

	t.Run("many waiters", func(t *testing.T) {
		p := New(WithThreads(2))
		p.Start()
		defer p.Close()

		release := make(chan struct{})
		p.SubmitFunc(func() { <-release })
		time.Sleep(20 * time.Millisecond)

		waiters := make([]<-chan struct{}, 5)
		for i := range waiters {
			waiters[i] = spawn(p.WaitIdle)
		}
		close(release)
		for _, w := range waiters {
			waitDone(t, w, time.Second, "waiter did not wake")
		}
	})
}
