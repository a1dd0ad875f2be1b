//go:build windows

package main

import (
	"os"
	"syscall"
)

// interruptSignals cancel a running session. Only console interrupts and
// termination reach os/signal on Windows.
func interruptSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
	}
}
