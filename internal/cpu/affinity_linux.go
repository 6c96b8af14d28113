//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// Pin locks the calling goroutine to its OS thread and restricts that
// thread to a single core chosen by the worker index. It returns an undo
// function that releases the thread again; callers defer it for the
// worker's lifetime.
func Pin(worker int) func() {
	runtime.LockOSThread()
	_ = setAffinity(worker % runtime.NumCPU())

	return func() {
		runtime.UnlockOSThread()
	}
}

// setAffinity restricts the current OS thread to the given core.
func setAffinity(core int) error {
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(core)

	// pid 0 targets the calling thread.
	return unix.SchedSetaffinity(0, &mask)
}
