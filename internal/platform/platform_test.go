package platform

import (
	"errors"
	"fmt"
	"runtime"
	"testing"
)

func TestPowerFlagsMasks(t *testing.T) {
	flags := DefaultPowerFlags()

	if got := flags.AcquireMask(); got != 0x80000003 {
		t.Errorf("AcquireMask() = %#x, want 0x80000003", got)
	}
	if got := flags.ReleaseMask(); got != 0x80000000 {
		t.Errorf("ReleaseMask() = %#x, want 0x80000000", got)
	}
}

func TestPlatformErrorMatching(t *testing.T) {
	cause := errors.New("access denied")
	err := fmt.Errorf("prevent sleep: %w", &PlatformError{Op: "acquire", Err: cause})

	if !errors.Is(err, ErrPlatform) {
		t.Error("expected errors.Is(err, ErrPlatform)")
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable")
	}

	var perr *PlatformError
	if !errors.As(err, &perr) {
		t.Fatal("expected errors.As to find *PlatformError")
	}
	if perr.Op != "acquire" {
		t.Errorf("Op = %q, want %q", perr.Op, "acquire")
	}
	if want := "acquire execution state: access denied"; perr.Error() != want {
		t.Errorf("Error() = %q, want %q", perr.Error(), want)
	}
}

func TestExecutionStateUnsupported(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execution state is supported on windows")
	}

	es := NewExecutionState(DefaultPowerFlags())

	for name, call := range map[string]func() error{
		"acquire": es.Acquire,
		"release": es.Release,
	} {
		err := call()
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("%s: expected ErrUnsupported, got %v", name, err)
		}
		if !errors.Is(err, ErrPlatform) {
			t.Errorf("%s: expected ErrPlatform, got %v", name, err)
		}
	}
}

func TestExecutionStateWindows(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode")
	}
	if runtime.GOOS != "windows" {
		t.Skip("skipping test on non-windows platform")
	}

	es := NewExecutionState(DefaultPowerFlags())

	// Both calls are idempotent, so repeat them.
	for i := 0; i < 2; i++ {
		if err := es.Acquire(); err != nil {
			t.Fatalf("Acquire #%d failed: %v", i+1, err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := es.Release(); err != nil {
			t.Fatalf("Release #%d failed: %v", i+1, err)
		}
	}
}
