package keepalive

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/nosleep/internal/platform"
	"github.com/stigoleg/nosleep/internal/platform/mocks"
	"github.com/stigoleg/nosleep/internal/util"
)

type outcome struct {
	res Result
	err error
}

func runAsync(s *Session, minutes int) <-chan outcome {
	out := make(chan outcome, 1)
	go func() {
		res, err := s.Run(minutes)
		out <- outcome{res: res, err: err}
	}()
	return out
}

// tick waits until the session is parked on the clock, then advances it by one poll interval.
func tick(t *testing.T, fc *clockwork.FakeClock) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, fc.BlockUntilContext(ctx, 1), "session should be waiting on the clock")
	fc.Advance(DefaultPollInterval)
}

func await(t *testing.T, out <-chan outcome) outcome {
	t.Helper()
	select {
	case o := <-out:
		return o
	case <-time.After(2 * time.Second):
		t.Fatal("session did not finish in time")
		return outcome{}
	}
}

func expectCycle(ctrl *mocks.MockExecutionState) {
	ctrl.EXPECT().Acquire().Return(nil).Once()
	ctrl.EXPECT().Release().Return(nil).Once()
}

func TestSessionCompletesAfterDuration(t *testing.T) {
	for _, minutes := range []int{1, 2, 5} {
		t.Run((time.Duration(minutes) * time.Minute).String(), func(t *testing.T) {
			ctrl := mocks.NewMockExecutionState(t)
			expectCycle(ctrl)
			fc := clockwork.NewFakeClock()
			s := NewSession(ctrl, WithClock(fc))

			out := runAsync(s, minutes)

			// The last tick only succeeds if the session is still waiting at D minus one interval.
			for i := 0; i < minutes*60; i++ {
				tick(t, fc)
			}
			o := await(t, out)

			require.NoError(t, o.err)
			assert.Equal(t, StateCompleted, o.res.State)
			assert.GreaterOrEqual(t, o.res.Elapsed, time.Duration(minutes)*time.Minute)
			assert.Less(t, o.res.Elapsed, time.Duration(minutes)*time.Minute+DefaultPollInterval)
			assert.NoError(t, o.res.ReleaseErr)
			assert.Equal(t, StateCompleted, s.State())
			ctrl.AssertNumberOfCalls(t, "Release", 1)
		})
	}
}

func TestSessionCancelledByKillSwitch(t *testing.T) {
	ctrl := mocks.NewMockExecutionState(t)
	expectCycle(ctrl)
	fc := clockwork.NewFakeClock()
	s := NewSession(ctrl, WithClock(fc))

	out := runAsync(s, 10)
	for i := 0; i < 3; i++ {
		tick(t, fc)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, fc.BlockUntilContext(ctx, 1))
	assert.Equal(t, 10*time.Minute-3*time.Second, s.Remaining())

	require.True(t, s.Cancel(), "first trigger should clear the flag")
	o := await(t, out)

	require.NoError(t, o.err)
	assert.Equal(t, StateCancelled, o.res.State)
	assert.LessOrEqual(t, o.res.Elapsed, 4*time.Second)
	assert.Zero(t, s.Remaining())
	ctrl.AssertNumberOfCalls(t, "Release", 1)
}

func TestSessionCancelIsIdempotent(t *testing.T) {
	ctrl := mocks.NewMockExecutionState(t)
	expectCycle(ctrl)
	s := NewSession(ctrl, WithClock(clockwork.NewFakeClock()))

	assert.True(t, s.Cancel())
	assert.False(t, s.Cancel(), "second trigger must be a no-op")
	assert.False(t, s.Flag().Active())

	res, err := s.Run(10)
	require.NoError(t, err)
	assert.Equal(t, StateCancelled, res.State)
	assert.False(t, s.Cancel(), "flag stays cleared after the session ends")
	ctrl.AssertNumberOfCalls(t, "Release", 1)
}

func TestSessionRejectsInvalidDuration(t *testing.T) {
	for _, minutes := range []int{0, -5, int(util.MaxMinutes) + 1} {
		ctrl := mocks.NewMockExecutionState(t)
		s := NewSession(ctrl, WithClock(clockwork.NewFakeClock()))

		res, err := s.Run(minutes)

		require.Error(t, err)
		assert.ErrorIs(t, err, util.ErrInvalidDuration)
		assert.Equal(t, StateIdle, res.State)
		assert.Equal(t, StateIdle, s.State())
		ctrl.AssertNotCalled(t, "Acquire")
		ctrl.AssertNotCalled(t, "Release")
	}
}

func TestSessionAcquireFailureIsTerminal(t *testing.T) {
	ctrl := mocks.NewMockExecutionState(t)
	acquireErr := &platform.PlatformError{Op: "acquire", Err: errors.New("access denied")}
	ctrl.EXPECT().Acquire().Return(acquireErr).Once()
	ctrl.EXPECT().Release().Return(nil).Once()

	var states []State
	s := NewSession(ctrl, WithClock(clockwork.NewFakeClock()), WithObserver(func(st State) {
		states = append(states, st)
	}))

	res, err := s.Run(10)

	require.Error(t, err)
	assert.ErrorIs(t, err, platform.ErrPlatform)
	assert.Equal(t, StateFailed, res.State)
	assert.Zero(t, res.Elapsed)
	assert.Equal(t, []State{StateFailed}, states, "session must not pass through Running")
	ctrl.AssertNumberOfCalls(t, "Release", 1)
}

func TestSessionReleaseErrorKeepsTerminalState(t *testing.T) {
	ctrl := mocks.NewMockExecutionState(t)
	releaseErr := &platform.PlatformError{Op: "release", Err: errors.New("rejected")}
	ctrl.EXPECT().Acquire().Return(nil).Once()
	ctrl.EXPECT().Release().Return(releaseErr).Once()
	s := NewSession(ctrl, WithClock(clockwork.NewFakeClock()))
	s.Cancel()

	res, err := s.Run(1)

	require.NoError(t, err)
	assert.Equal(t, StateCancelled, res.State)
	assert.ErrorIs(t, res.ReleaseErr, releaseErr)
}

func TestSessionRecoversReleasePanic(t *testing.T) {
	ctrl := mocks.NewMockExecutionState(t)
	ctrl.EXPECT().Acquire().Return(nil).Once()
	ctrl.EXPECT().Release().RunAndReturn(func() error { panic("handle closed") }).Once()
	s := NewSession(ctrl, WithClock(clockwork.NewFakeClock()))
	s.Cancel()

	res, err := s.Run(1)

	require.NoError(t, err)
	assert.Equal(t, StateCancelled, res.State, "a release panic must not mask the terminal state")
	require.Error(t, res.ReleaseErr)
	assert.Contains(t, res.ReleaseErr.Error(), "handle closed")
}

func TestSessionRecoversPanic(t *testing.T) {
	ctrl := mocks.NewMockExecutionState(t)
	ctrl.EXPECT().Acquire().RunAndReturn(func() error { panic("driver exploded") }).Once()
	ctrl.EXPECT().Release().Return(nil).Once()
	s := NewSession(ctrl, WithClock(clockwork.NewFakeClock()))

	res, err := s.Run(1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver exploded")
	assert.Equal(t, StateFailed, res.State)
	ctrl.AssertNumberOfCalls(t, "Release", 1)
}

func TestSessionIsSingleUse(t *testing.T) {
	ctrl := mocks.NewMockExecutionState(t)
	expectCycle(ctrl)
	s := NewSession(ctrl, WithClock(clockwork.NewFakeClock()))
	s.Cancel()

	_, err := s.Run(1)
	require.NoError(t, err)

	res, err := s.Run(1)
	assert.ErrorIs(t, err, ErrSessionUsed)
	assert.Equal(t, StateCancelled, res.State)
}

func TestSessionObserverSeesTransitions(t *testing.T) {
	ctrl := mocks.NewMockExecutionState(t)
	expectCycle(ctrl)
	fc := clockwork.NewFakeClock()

	var mu sync.Mutex
	var states []State
	s := NewSession(ctrl, WithClock(fc), WithObserver(func(st State) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, st)
	}))

	out := runAsync(s, 1)
	tick(t, fc)
	s.Cancel()
	await(t, out)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []State{StateRunning, StateCancelled}, states)
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		want     string
		terminal bool
	}{
		{StateIdle, "Idle", false},
		{StateRunning, "Running", false},
		{StateCompleted, "Completed", true},
		{StateCancelled, "Cancelled", true},
		{StateFailed, "Failed", true},
		{State(42), "Unknown", false},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
		if got := tt.state.Terminal(); got != tt.terminal {
			t.Errorf("State(%d).Terminal() = %v, want %v", tt.state, got, tt.terminal)
		}
	}
}
