//go:build !windows

package platform

// unsupportedExecutionState implements ExecutionState for platforms without a power API binding.
type unsupportedExecutionState struct{}

func (unsupportedExecutionState) Acquire() error {
	return &PlatformError{Op: "acquire", Err: ErrUnsupported}
}

func (unsupportedExecutionState) Release() error {
	return &PlatformError{Op: "release", Err: ErrUnsupported}
}

// NewExecutionState returns a controller that reports the platform as unsupported.
func NewExecutionState(flags PowerFlags) ExecutionState {
	return unsupportedExecutionState{}
}
