package platform

// ExecutionState marks the system and display as busy and hands power
// management back to the OS. Both calls are idempotent at the OS level.
type ExecutionState interface {
	Acquire() error
	Release() error
}

// PowerFlags holds the execution-state bits passed to SetThreadExecutionState.
type PowerFlags struct {
	Continuous      uint32
	SystemRequired  uint32
	DisplayRequired uint32
}

// DefaultPowerFlags returns ES_CONTINUOUS, ES_SYSTEM_REQUIRED and ES_DISPLAY_REQUIRED.
func DefaultPowerFlags() PowerFlags {
	return PowerFlags{
		Continuous:      0x80000000,
		SystemRequired:  0x00000001,
		DisplayRequired: 0x00000002,
	}
}

// AcquireMask keeps system and display awake until further notice.
func (f PowerFlags) AcquireMask() uint32 {
	return f.Continuous | f.SystemRequired | f.DisplayRequired
}

// ReleaseMask clears the requirements and leaves only the continuous bit.
func (f PowerFlags) ReleaseMask() uint32 {
	return f.Continuous
}
