//go:build windows

package integration

import (
	"errors"
	"os"
	"syscall"
)

func getSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
	}
}

// Windows cannot deliver console signals to a child through os.Process.
func sendSignal(proc *os.Process, sig os.Signal) error {
	return errors.New("sending signals is not supported on windows")
}
