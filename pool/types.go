package pool

// Task is a unit of work owned by the pool once submitted.
//
// Execute takes no arguments, returns nothing, and carries no failure
// contract: whatever goes wrong inside a task is the task's own concern.
// A panic escaping Execute crashes the process unless the pool was built
// with WithPanicHandler.
//
// Every submitted task is executed exactly once by some worker (unless
// discarded by Clear first). After Execute returns the pool drops its
// reference to the task.
type Task interface {
	Execute()
}

// TaskFunc is an adapter to allow the use of ordinary functions as tasks.
type TaskFunc func()

// Execute calls f.
func (f TaskFunc) Execute() { f() }

// Status reports whether a pool currently has live workers.
type Status int32

const (
	// StatusStopped is the state of a pool before Start and after Stop.
	StatusStopped Status = iota
	// StatusRunning is the state of a pool between Start and Stop.
	StatusRunning
)

// String returns "stopped" or "running".
func (s Status) String() string {
	if s == StatusRunning {
		return "running"
	}
	return "stopped"
}

// StopPolicy selects how Stop behaves after workers have been signaled.
type StopPolicy int

const (
	// StopSync blocks until every worker has terminated and discards the
	// worker set. In-flight tasks always run to completion first.
	StopSync StopPolicy = iota
	// StopAsync returns immediately after signaling; the workers wind
	// down in the background and are reclaimed by Join, Close, or the
	// next Start.
	StopAsync
)

// String returns "sync" or "async".
func (p StopPolicy) String() string {
	if p == StopAsync {
		return "async"
	}
	return "sync"
}
