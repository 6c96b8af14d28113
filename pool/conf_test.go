package pool

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestConfig_Defaults(t *testing.T) {
	p := New()

	if got, want := p.Threads(), runtime.GOMAXPROCS(0); got != want {
		t.Errorf("default threads = %d, want %d", got, want)
	}
	if p.conf.limiter != nil {
		t.Error("default config has a rate limiter")
	}
	if p.conf.onPanic != nil {
		t.Error("default config has a panic handler")
	}
	if p.conf.pinWorkers {
		t.Error("default config pins workers")
	}
}

func TestWithThreads(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"explicit count", 4, 4},
		{"single thread", 1, 1},
		{"zero is legal", 0, 0},
		{"negative ignored", -3, runtime.GOMAXPROCS(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(WithThreads(tt.n))
			if got := p.Threads(); got != tt.want {
				t.Errorf("Threads() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWithRateLimit(t *testing.T) {
	t.Run("throttles execution", func(t *testing.T) {
		// 20 tasks/sec with burst 1: three tasks need two refill
		// periods, 100ms in total.
		p := New(WithThreads(2), WithRateLimit(20, 1))
		p.Start()
		defer p.Close()

		var counter atomic.Int32
		start := time.Now()
		for i := 0; i < 3; i++ {
			p.SubmitFunc(func() { counter.Add(1) })
		}
		p.WaitIdle()
		elapsed := time.Since(start)

		if got := counter.Load(); got != 3 {
			t.Fatalf("expected 3 executions, got %d", got)
		}
		if elapsed < 80*time.Millisecond {
			t.Errorf("3 tasks at 20/s with burst 1 finished in %v; limiter not applied", elapsed)
		}
	})

	t.Run("invalid arguments ignored", func(t *testing.T) {
		for _, p := range []*Pool{
			New(WithRateLimit(0, 1)),
			New(WithRateLimit(-5, 1)),
			New(WithRateLimit(10, 0)),
			New(WithRateLimit(10, -1)),
		} {
			if p.conf.limiter != nil {
				t.Error("invalid rate limit installed a limiter")
			}
		}
	})

	t.Run("burst allows a head start", func(t *testing.T) {
		p := New(WithThreads(4), WithRateLimit(5, 4))
		p.Start()
		defer p.Close()

		var counter atomic.Int32
		start := time.Now()
		for i := 0; i < 4; i++ {
			p.SubmitFunc(func() { counter.Add(1) })
		}
		p.WaitIdle()

		if got := counter.Load(); got != 4 {
			t.Fatalf("expected 4 executions, got %d", got)
		}
		if elapsed := time.Since(start); elapsed > 150*time.Millisecond {
			t.Errorf("burst of 4 took %v; tokens not granted up front", elapsed)
		}
	})
}

func TestWithPanicHandler(t *testing.T) {
	t.Run("recovers and keeps the worker alive", func(t *testing.T) {
		var captured atomic.Value
		p := New(
			WithThreads(1),
			WithPanicHandler(func(v any) { captured.Store(v) }),
		)
		p.Start()
		defer p.Close()

		p.SubmitFunc(func() { panic("boom") })
		var counter atomic.Int32
		p.SubmitFunc(func() { counter.Add(1) })
		p.WaitIdle()

		if got := captured.Load(); got != "boom" {
			t.Errorf("handler captured %v, want boom", got)
		}
		if counter.Load() != 1 {
			t.Error("worker died after a recovered panic")
		}
	})

	t.Run("nil handler ignored", func(t *testing.T) {
		p := New(WithPanicHandler(nil))
		if p.conf.onPanic != nil {
			t.Error("nil handler was installed")
		}
	})
}

func TestWithPinnedWorkers(t *testing.T) {
	p := New(WithThreads(2), WithPinnedWorkers())
	if !p.conf.pinWorkers {
		t.Fatal("option did not set pinning")
	}
	p.Start()
	defer p.Close()

	var counter atomic.Int32
	for i := 0; i < 16; i++ {
		p.SubmitFunc(func() { counter.Add(1) })
	}
	p.WaitIdle()

	if got := counter.Load(); got != 16 {
		t.Errorf("expected 16 executions on pinned workers, got %d", got)
	}
}
