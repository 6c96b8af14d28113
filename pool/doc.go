// Package pool provides a small, fixed-size worker pool built around a
// mutex-and-condition monitor.
//
// A Pool owns N long-lived workers that pull tasks from a shared FIFO
// queue and execute them, decoupling task submission from task
// execution. It is an embedded concurrency primitive, not a service:
// construction takes a thread count, and the whole surface is lifecycle
// (Start, Stop, Join, Close), submission (Submit, SubmitFunc, Clear),
// and introspection (Pending, Running, WaitIdle, Status, Stats).
//
// # Basic Usage
//
//	p := pool.New(pool.WithThreads(4))
//	p.Start()
//	defer p.Close()
//
//	var n atomic.Int64
//	for i := 0; i < 10; i++ {
//	    p.SubmitFunc(func() { n.Add(1) })
//	}
//	p.WaitIdle()
//
// # Lifecycle
//
// A pool cycles between stopped and running. Tasks may be submitted in
// any state; they wait in the queue until workers exist to claim them.
// Stop wakes every worker; each finishes its in-flight task and exits
// without dequeuing further work, so pending tasks survive a stop and
// run after the next Start.
//
// Stop takes a policy: StopSync blocks until every worker terminated,
// StopAsync returns immediately and leaves the workers to wind down in
// the background (reclaim them with Join, Close, or the next Start).
// Lifecycle misuse (Start while running, Stop while stopped, Join while
// running) is a silent no-op, never an error.
//
// # Ordering
//
// Tasks execute in FIFO submission order relative to the tasks pending
// at dequeue time. Nothing is guaranteed about the completion order of
// concurrently running tasks, nor about which worker serves which task.
//
// # Waiting for Idle
//
// WaitIdle blocks until no task is pending and none is running. The two
// counts are not one atomic snapshot: a caller that needs a true idle
// barrier must prevent concurrent submission for the duration of the
// wait.
//
// # Error Handling
//
// Tasks carry no failure contract. The pool does not catch, retry, log,
// or report anything a task does; by default a panic escaping Execute
// crashes the process. WithPanicHandler opts into recovery for callers
// that want crash isolation between tasks.
//
// # Configuration Options
//
//   - WithThreads(n): number of workers Start spawns (default: GOMAXPROCS)
//   - WithRateLimit(tasksPerSecond, burst): throttle task execution
//   - WithPanicHandler(h): recover task panics and keep the worker alive
//   - WithPinnedWorkers(): pin each worker's OS thread to a CPU core
//
// # Observability
//
// Stats returns lifetime counters alongside the live gauges. The
// companion package metrics exposes the same snapshot as a
// prometheus.Collector. Builds tagged "debug" log lifecycle transitions
// to stderr.
package pool
