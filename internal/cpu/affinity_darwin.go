//go:build darwin

package cpu

import "runtime"

// Pin locks the calling goroutine to its OS thread. macOS has no public
// thread-to-core affinity API, so the thread remains schedulable on any
// core. The returned undo function releases the thread.
func Pin(worker int) func() {
	runtime.LockOSThread()

	return func() {
		runtime.UnlockOSThread()
	}
}
