package pool

import "github.com/utkarsh5026/spindle/internal/fifo"

// Submit appends t to the back of the task queue and, if the pool is
// running, wakes one idle worker. Ownership of the task passes to the
// pool.
//
// Submit is legal in any state: tasks queued before Start or after Stop
// stay pending until a future Start claims them. Submit panics if t is
// nil.
func (p *Pool) Submit(t Task) {
	if t == nil {
		panic("spindle: Submit called with nil Task")
	}

	p.mu.Lock()
	p.queue.Push(t)
	if p.state == StatusRunning {
		p.work.Signal()
	}
	p.mu.Unlock()

	p.submitted.Add(1)
}

// SubmitFunc submits a plain function as a task. It panics if f is nil.
func (p *Pool) SubmitFunc(f func()) {
	if f == nil {
		panic("spindle: SubmitFunc called with nil func")
	}
	p.Submit(TaskFunc(f))
}

// Clear swaps out the pending queue in one critical section, discarding
// every task that has not started; discarded tasks are never executed.
// Tasks already claimed by workers are unaffected and run to completion.
func (p *Pool) Clear() {
	p.mu.Lock()
	n := p.queue.Len()
	p.queue = fifo.New[Task](initialQueueCapacity)
	p.idle.Broadcast()
	p.mu.Unlock()

	if n > 0 {
		p.cleared.Add(uint64(n))
	}
	debugLog("cleared %d pending tasks", n)
}

// Pending returns the number of queued tasks no worker has claimed yet.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.Len()
}

// HasPending reports whether any task is waiting in the queue.
func (p *Pool) HasPending() bool {
	return p.Pending() > 0
}

// Running returns the number of tasks currently inside Execute.
func (p *Pool) Running() int {
	return int(p.running.Load())
}

// HasRunning reports whether any task is currently executing.
func (p *Pool) HasRunning() bool {
	return p.running.Load() > 0
}

// WaitIdle blocks the caller until no task is pending and none is
// running. It listens on an idle condition instead of polling, and it
// stops listening the moment both counts are observed at zero: a task
// submitted right after WaitIdle returns does not retroactively violate
// the contract.
//
// The two counts are not one atomic snapshot against concurrent
// submitters; a caller that needs a true idle barrier must keep other
// submitters away for the duration of the wait.
func (p *Pool) WaitIdle() {
	p.mu.Lock()
	for p.queue.Len() > 0 || p.running.Load() > 0 {
		p.idle.Wait()
	}
	p.mu.Unlock()
}
