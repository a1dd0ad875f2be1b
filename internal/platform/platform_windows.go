//go:build windows

package platform

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sys/windows"
)

var (
	modkernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadExecutionState = modkernel32.NewProc("SetThreadExecutionState")
)

type stateRequest struct {
	mask  uint32
	reply chan error
}

// windowsExecutionState issues every call from one locked OS thread.
// SetThreadExecutionState is thread-scoped, and goroutines migrate between
// threads, so acquire and release must not land on different threads.
type windowsExecutionState struct {
	flags PowerFlags
	once  sync.Once
	reqs  chan stateRequest
}

// NewExecutionState returns the Windows execution-state controller.
func NewExecutionState(flags PowerFlags) ExecutionState {
	return &windowsExecutionState{
		flags: flags,
		reqs:  make(chan stateRequest),
	}
}

func (w *windowsExecutionState) Acquire() error {
	if err := w.set(w.flags.AcquireMask()); err != nil {
		return &PlatformError{Op: "acquire", Err: err}
	}
	return nil
}

func (w *windowsExecutionState) Release() error {
	if err := w.set(w.flags.ReleaseMask()); err != nil {
		return &PlatformError{Op: "release", Err: err}
	}
	return nil
}

func (w *windowsExecutionState) set(mask uint32) error {
	w.once.Do(func() {
		go w.serve()
	})
	reply := make(chan error, 1)
	w.reqs <- stateRequest{mask: mask, reply: reply}
	return <-reply
}

// serve never unlocks its thread; the controller lives for the whole process.
func (w *windowsExecutionState) serve() {
	runtime.LockOSThread()
	for req := range w.reqs {
		req.reply <- setThreadExecutionState(req.mask)
	}
}

func setThreadExecutionState(mask uint32) error {
	if err := procSetThreadExecutionState.Find(); err != nil {
		return err
	}
	r, _, err := procSetThreadExecutionState.Call(uintptr(mask))
	if r == 0 {
		return fmt.Errorf("SetThreadExecutionState(%#x) rejected: %w", mask, err)
	}
	return nil
}
