package pool

import (
	"context"

	"github.com/utkarsh5026/spindle/internal/cpu"
)

// spin is the worker loop. A worker blocks on the work condition until a
// task arrives or the pool stops, claims the front task under the queue
// lock, and executes it outside the lock. A stopped pool is the only
// exit path: workers never dequeue past a Stop, so pending tasks survive
// for the next Start.
func (p *Pool) spin(ctx context.Context, id int) error {
	if p.conf.pinWorkers {
		unpin := cpu.Pin(id)
		defer unpin()
	}

	debugLog("worker %d up", id)
	defer debugLog("worker %d down", id)

	for {
		p.mu.Lock()
		for p.state == StatusRunning && p.queue.Len() == 0 {
			p.work.Wait()
		}

		if p.state != StatusRunning {
			p.mu.Unlock()
			return nil
		}

		t, ok := p.queue.Pop()
		if !ok {
			p.mu.Unlock()
			continue
		}

		// The claim must be visible before the queue lock drops, so a
		// task is never observable as neither pending nor running.
		p.running.Add(1)
		p.mu.Unlock()

		p.execute(ctx, t)
	}
}

// execute runs one claimed task outside the queue lock.
func (p *Pool) execute(ctx context.Context, t Task) {
	defer p.finish()

	if lim := p.conf.limiter; lim != nil {
		// A Stop cancels ctx and aborts the wait; the claimed task
		// still runs, keeping stop a barrier for in-flight work.
		_ = lim.Wait(ctx)
	}

	if h := p.conf.onPanic; h != nil {
		defer func() {
			if r := recover(); r != nil {
				h(r)
			}
		}()
	}

	t.Execute()
}

// finish accounts for one finished task and wakes idle waiters when the
// pool drains.
func (p *Pool) finish() {
	p.completed.Add(1)
	if p.running.Add(-1) == 0 {
		p.mu.Lock()
		p.idle.Broadcast()
		p.mu.Unlock()
	}
}
