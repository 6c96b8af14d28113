// Package fifo provides a growable ring-buffer FIFO queue.
//
// The queue is not synchronized: callers serialize all access themselves,
// typically by holding the mutex that also guards the surrounding state.
// This keeps the structure free of atomics and lets the owner decide the
// locking granularity.
package fifo

// Queue is a first-in-first-out queue backed by a ring buffer.
//
// The buffer capacity is always a power of two so that positions can be
// mapped to slots with a bitwise AND instead of a modulo. When the buffer
// fills up it doubles, preserving order. Popped slots are zeroed so the
// queue never retains a reference to a value it no longer owns.
type Queue[T any] struct {
	ring []T
	mask uint64
	head uint64
	tail uint64
}

// New creates a queue with at least the given initial capacity.
// Capacities below one are raised to one slot.
func New[T any](capacity int) *Queue[T] {
	capacity = nextPowerOfTwo(capacity)
	return &Queue[T]{
		ring: make([]T, capacity),
		mask: uint64(capacity - 1),
	}
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int {
	return int(q.tail - q.head)
}

// Push appends a value to the back of the queue, growing the buffer if full.
func (q *Queue[T]) Push(v T) {
	if q.tail-q.head > q.mask {
		q.grow()
	}
	q.ring[q.tail&q.mask] = v
	q.tail++
}

// Pop removes and returns the front value.
// The second return value is false when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head == q.tail {
		return zero, false
	}

	slot := q.head & q.mask
	v := q.ring[slot]
	q.ring[slot] = zero
	q.head++
	return v, true
}

// grow doubles the buffer and re-packs the live values in order.
func (q *Queue[T]) grow() {
	oldCap := uint64(len(q.ring))
	newCap := oldCap << 1
	newRing := make([]T, newCap)

	for i := q.head; i < q.tail; i++ {
		newRing[i&(newCap-1)] = q.ring[i&q.mask]
	}

	q.ring = newRing
	q.mask = newCap - 1
}

// nextPowerOfTwo returns the next power of 2 >= n
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}

	if n&(n-1) == 0 {
		return n
	}

	power := 1
	for power < n {
		power *= 2
	}
	return power
}
