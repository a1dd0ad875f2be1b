//go:build !windows

package integration

import (
	"os"
	"syscall"
)

func getSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	}
}

func sendSignal(proc *os.Process, sig os.Signal) error {
	return proc.Signal(sig)
}
