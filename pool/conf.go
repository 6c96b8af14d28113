package pool

import (
	"runtime"

	"golang.org/x/time/rate"
)

// Option is a functional option for configuring the pool.
type Option func(*config)

type config struct {
	threads    int
	limiter    *rate.Limiter
	onPanic    func(any)
	pinWorkers bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		threads: runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithThreads sets the number of workers Start spawns.
// If not specified, defaults to runtime.GOMAXPROCS(0). Zero is accepted
// silently and yields a pool that only accumulates pending tasks;
// negative values are ignored.
func WithThreads(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.threads = n
		}
	}
}

// WithRateLimit sets a rate limiter for controlling task throughput.
// tasksPerSecond specifies the maximum number of tasks to execute per second.
// burst specifies the maximum number of tasks that can start in a burst.
// The limiter is applied by a worker after it has claimed a task, so a
// throttled task already counts as running. If not specified, no rate
// limiting is applied.
//
// Example:
//
//	WithRateLimit(10, 5) // Allow 10 tasks/sec with burst of 5
func WithRateLimit(tasksPerSecond float64, burst int) Option {
	return func(cfg *config) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.limiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

// WithPanicHandler installs a handler for panics escaping Task.Execute.
// The worker recovers, passes the panic value to h, and keeps serving
// tasks. Without a handler a panicking task takes the process down:
// tasks carry no failure contract and the pool reports nothing on their
// behalf.
func WithPanicHandler(h func(v any)) Option {
	return func(cfg *config) {
		if h != nil {
			cfg.onPanic = h
		}
	}
}

// WithPinnedWorkers locks every worker goroutine to an OS thread and pins
// that thread to a CPU core (worker index modulo core count). Useful for
// cache-sensitive CPU-bound workloads. Pinning is best-effort and
// silently degrades on platforms without an affinity API.
func WithPinnedWorkers() Option {
	return func(cfg *config) {
		cfg.pinWorkers = true
	}
}
