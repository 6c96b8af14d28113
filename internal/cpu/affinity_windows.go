//go:build windows

package cpu

import (
	"runtime"
	"syscall"
)

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	procSetThreadAffinity = kernel32.NewProc("SetThreadAffinityMask")
	procGetCurrentThread  = kernel32.NewProc("GetCurrentThread")
)

// Pin locks the calling goroutine to its OS thread and restricts that
// thread to a single core chosen by the worker index. It returns an undo
// function that releases the thread again; callers defer it for the
// worker's lifetime.
func Pin(worker int) func() {
	runtime.LockOSThread()
	setAffinity(worker % runtime.NumCPU())

	return func() {
		runtime.UnlockOSThread()
	}
}

// setAffinity restricts the current OS thread to the given core.
// Bit N of the mask selects CPU N.
func setAffinity(core int) {
	handle, _, _ := procGetCurrentThread.Call()
	_, _, _ = procSetThreadAffinity.Call(handle, uintptr(1)<<core)
}
