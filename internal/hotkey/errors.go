package hotkey

import (
	"errors"
	"fmt"
)

var (
	// ErrListenerUnavailable matches every ListenerUnavailableError via errors.Is.
	ErrListenerUnavailable = errors.New("kill switch unavailable")

	// ErrUnsupported is reported on builds without a global hotkey backend.
	ErrUnsupported = errors.New("global hotkeys are not supported on this platform")

	errAlreadyRegistered = errors.New("hotkey: listener already registered")
)

// ListenerUnavailableError reports that the OS refused the global chord.
type ListenerUnavailableError struct {
	Chord Chord
	Err   error
}

func (e *ListenerUnavailableError) Error() string {
	return fmt.Sprintf("register %s: %v", e.Chord, e.Err)
}

func (e *ListenerUnavailableError) Unwrap() error {
	return e.Err
}

func (e *ListenerUnavailableError) Is(target error) bool {
	return target == ErrListenerUnavailable
}
