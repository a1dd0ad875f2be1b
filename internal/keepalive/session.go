package keepalive

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/stigoleg/nosleep/internal/platform"
	"github.com/stigoleg/nosleep/internal/util"
)

// DefaultPollInterval is how often a running session checks its deadline.
const DefaultPollInterval = time.Second

// ErrSessionUsed is returned when Run is called on a session that already ran.
var ErrSessionUsed = errors.New("session already used")

// Result describes how a session ended.
type Result struct {
	State   State
	Elapsed time.Duration

	// ReleaseErr is set when handing power management back to the OS failed.
	// It never changes State.
	ReleaseErr error
}

// Session keeps the system awake for one timed window. A Session is single
// use; start a new one for every duration request.
type Session struct {
	ctrl     platform.ExecutionState
	clock    clockwork.Clock
	interval time.Duration
	observer func(State)
	flag     *Flag

	mu       sync.Mutex
	used     bool
	state    State
	start    time.Time
	duration time.Duration
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c clockwork.Clock) Option {
	return func(s *Session) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithPollInterval sets the deadline check interval.
func WithPollInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithObserver registers fn to be called on every state transition.
// fn runs on the session's goroutine and must not block.
func WithObserver(fn func(State)) Option {
	return func(s *Session) {
		s.observer = fn
	}
}

// NewSession returns an idle session driving ctrl.
func NewSession(ctrl platform.ExecutionState, opts ...Option) *Session {
	s := &Session{
		ctrl:     ctrl,
		clock:    clockwork.NewRealClock(),
		interval: DefaultPollInterval,
		flag:     NewFlag(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Flag returns the session's cancellation cell.
func (s *Session) Flag() *Flag {
	return s.flag
}

// Cancel clears the flag. It reports whether this call did the clearing.
func (s *Session) Cancel() bool {
	return s.flag.Clear()
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Remaining returns the time left while running, 0 otherwise.
func (s *Session) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return 0
	}
	remaining := s.duration - s.clock.Since(s.start)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Run keeps the system awake for the given number of minutes and blocks
// until the session completes, is cancelled, or fails. The execution state
// is released exactly once on every path that got past validation.
func (s *Session) Run(minutes int) (res Result, err error) {
	if !util.ValidMinutes(minutes) {
		return Result{State: StateIdle}, &util.InvalidDurationError{Input: strconv.Itoa(minutes)}
	}

	s.mu.Lock()
	if s.used {
		state := s.state
		s.mu.Unlock()
		return Result{State: state}, ErrSessionUsed
	}
	s.used = true
	s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("session: panic while running: %v", r)
			res = s.finish(StateFailed)
			err = fmt.Errorf("session aborted: %v", r)
		}
		res.ReleaseErr = s.release()
	}()

	if err := s.ctrl.Acquire(); err != nil {
		log.Printf("session: acquire failed: %v", err)
		return s.finish(StateFailed), fmt.Errorf("prevent sleep: %w", err)
	}

	d := time.Duration(minutes) * time.Minute
	s.mu.Lock()
	s.start = s.clock.Now()
	s.duration = d
	s.mu.Unlock()
	s.transition(StateRunning)
	log.Printf("session: running (duration=%s)", d)

	return s.finish(s.wait(d)), nil
}

// wait blocks until the flag is cleared or the deadline passes.
func (s *Session) wait(d time.Duration) State {
	for {
		select {
		case <-s.flag.Done():
			return StateCancelled
		case <-s.clock.After(s.interval):
		}

		if s.clock.Since(s.startTime()) >= d {
			return StateCompleted
		}
	}
}

func (s *Session) startTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start
}

func (s *Session) finish(state State) Result {
	s.mu.Lock()
	var elapsed time.Duration
	if !s.start.IsZero() {
		elapsed = s.clock.Since(s.start)
	}
	s.mu.Unlock()

	// Whatever ended the session, the kill switch has nothing left to do.
	s.flag.Clear()
	s.transition(state)
	log.Printf("session: %s after %s", state, elapsed)
	return Result{State: state, Elapsed: elapsed}
}

func (s *Session) release() (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("session: panic during release: %v", r)
			err = fmt.Errorf("release aborted: %v", r)
		}
	}()

	if err := s.ctrl.Release(); err != nil {
		log.Printf("session: release failed: %v", err)
		return err
	}
	log.Printf("session: execution state released")
	return nil
}

func (s *Session) transition(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	if s.observer != nil {
		s.observer(state)
	}
}
