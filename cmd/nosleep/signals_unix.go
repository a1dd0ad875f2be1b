//go:build !windows

package main

import (
	"os"
	"syscall"
)

// interruptSignals cancel a running session. SIGTSTP is left alone:
// suspending the process must not end the session.
func interruptSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	}
}
