package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrPlatform matches every PlatformError via errors.Is.
	ErrPlatform = errors.New("platform error")

	// ErrUnsupported is wrapped by PlatformError on builds without an implementation.
	ErrUnsupported = errors.New("unsupported platform")
)

// PlatformError reports a rejected or unavailable execution-state call.
type PlatformError struct {
	Op  string
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s execution state: %v", e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

func (e *PlatformError) Is(target error) bool {
	return target == ErrPlatform
}
