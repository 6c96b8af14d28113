package pool

// Stats is a point-in-time snapshot of pool activity. Fields are gathered
// from independent counters, so under concurrency they may be mutually
// inconsistent by a task or two; treat them as advisory.
type Stats struct {
	// Threads is the configured worker count.
	Threads int
	// Status is the lifecycle state at snapshot time.
	Status Status
	// Pending is the number of queued tasks not yet claimed.
	Pending int
	// Running is the number of tasks currently inside Execute.
	Running int
	// Submitted counts every task handed to Submit since construction.
	Submitted uint64
	// Completed counts tasks whose Execute finished, including panics
	// recovered by the panic handler.
	Completed uint64
	// Cleared counts tasks discarded by Clear.
	Cleared uint64
}

// Stats returns a snapshot of the pool's gauges and lifetime counters.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	pending := p.queue.Len()
	status := p.state
	p.mu.Unlock()

	return Stats{
		Threads:   p.conf.threads,
		Status:    status,
		Pending:   pending,
		Running:   int(p.running.Load()),
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Cleared:   p.cleared.Load(),
	}
}
