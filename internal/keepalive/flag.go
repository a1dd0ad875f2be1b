package keepalive

import "sync/atomic"

// Flag is the cancellation cell shared by a session and its kill switch.
// It starts active and can be cleared exactly once.
type Flag struct {
	active atomic.Bool
	done   chan struct{}
}

// NewFlag returns an active flag.
func NewFlag() *Flag {
	f := &Flag{done: make(chan struct{})}
	f.active.Store(true)
	return f
}

// Active reports whether the flag has not been cleared yet.
func (f *Flag) Active() bool {
	return f.active.Load()
}

// Clear deactivates the flag. Only the call that performed the transition
// returns true; later calls are no-ops.
func (f *Flag) Clear() bool {
	if !f.active.CompareAndSwap(true, false) {
		return false
	}
	close(f.done)
	return true
}

// Done is closed when the flag is cleared.
func (f *Flag) Done() <-chan struct{} {
	return f.done
}
