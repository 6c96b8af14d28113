package pool

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/utkarsh5026/spindle/internal/fifo"
	"golang.org/x/sync/errgroup"
)

// initialQueueCapacity is the ring size a pool's task queue starts with.
const initialQueueCapacity = 64

// Pool is a fixed-size worker pool: a reusable set of long-lived workers
// that pull tasks from a shared FIFO queue and execute them, decoupling
// task submission from task execution.
//
// A Pool begins stopped. Tasks may be submitted in any state; workers
// exist only between a Start and its matching Stop, and the pool may
// cycle between the two states any number of times. The zero value is
// not usable; construct pools with New.
//
// All methods are safe for concurrent use.
type Pool struct {
	conf *config

	// ctl serializes the lifecycle operations (Start, Stop, Join, Close)
	// against each other. It is never held while a task executes.
	ctl sync.Mutex

	// mu guards queue and state. work is signaled on submit and broadcast
	// on stop; idle is broadcast whenever the pool may have drained.
	mu    sync.Mutex
	work  *sync.Cond
	idle  *sync.Cond
	queue *fifo.Queue[Task]
	state Status

	// running counts tasks currently inside Execute. It lives outside mu
	// so completion accounting does not contend with queue operations.
	running atomic.Int64

	cancel context.CancelFunc
	done   chan struct{} // closed once every worker of the current generation exited

	submitted atomic.Uint64
	completed atomic.Uint64
	cleared   atomic.Uint64
}

// New creates a stopped pool with the given options. No workers are
// spawned until Start is called.
//
// Example:
//
//	p := pool.New(pool.WithThreads(4))
//	p.Start()
//	defer p.Close()
//
//	p.SubmitFunc(func() { fmt.Println("hello") })
//	p.WaitIdle()
func New(opts ...Option) *Pool {
	p := &Pool{
		conf:  newConfig(opts...),
		queue: fifo.New[Task](initialQueueCapacity),
		state: StatusStopped,
	}
	p.work = sync.NewCond(&p.mu)
	p.idle = sync.NewCond(&p.mu)
	return p
}

// Start spawns the configured number of workers and begins executing
// queued tasks. It is a no-op if the pool is already running. Workers
// left behind by a previous Stop(StopAsync) are joined and discarded
// before the new generation spawns.
func (p *Pool) Start() {
	p.ctl.Lock()
	defer p.ctl.Unlock()

	p.mu.Lock()
	if p.state == StatusRunning {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	p.reap()

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	p.mu.Lock()
	p.state = StatusRunning
	p.mu.Unlock()

	n := p.conf.threads
	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			return p.spin(ctx, i)
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()
	p.done = done

	debugLog("pool started with %d workers", n)
}

// Stop flips the pool to stopped and wakes every worker. Each worker
// finishes its in-flight task and exits without dequeuing further work;
// pending tasks stay queued for a future Start.
//
// With StopSync the call additionally blocks until every worker has
// terminated, making it a completion barrier for in-flight tasks. With
// StopAsync it returns immediately and the workers wind down in the
// background; reclaim them with Join, Close, or the next Start.
//
// Stopping an already-stopped pool raises nothing; with StopSync it
// still joins workers left behind by an earlier Stop(StopAsync).
func (p *Pool) Stop(policy StopPolicy) {
	p.ctl.Lock()
	defer p.ctl.Unlock()

	p.mu.Lock()
	if p.state == StatusRunning {
		// The state write and the wake-all share one critical section
		// so no worker can begin waiting between them and miss the
		// broadcast.
		p.state = StatusStopped
		p.work.Broadcast()
	}
	p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}

	if policy == StopSync {
		p.reap()
	}

	debugLog("pool stopped (%v)", policy)
}

// Join blocks until workers from an outstanding Stop(StopAsync) have
// terminated and discards them. It is a no-op while the pool is running
// or when no workers are outstanding.
func (p *Pool) Join() {
	p.ctl.Lock()
	defer p.ctl.Unlock()

	p.mu.Lock()
	running := p.state == StatusRunning
	p.mu.Unlock()
	if running {
		return
	}

	p.reap()
}

// Close performs a synchronous stop, guaranteeing no workers outlive the
// call. It always returns nil; the error return exists so a Pool can be
// managed as an io.Closer.
func (p *Pool) Close() error {
	p.Stop(StopSync)
	return nil
}

// Status reports whether the pool is running or stopped. The snapshot
// may already be stale when it returns under a concurrent Start or Stop.
func (p *Pool) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Threads returns the number of workers Start spawns.
func (p *Pool) Threads() int {
	return p.conf.threads
}

// reap waits for the previous worker generation to exit and forgets it.
// Callers hold ctl.
func (p *Pool) reap() {
	if p.done == nil {
		return
	}
	<-p.done
	p.done = nil
}
