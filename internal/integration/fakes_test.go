package integration

import (
	"strings"
	"sync"
)

// recordingState is an execution-state controller that only records calls.
type recordingState struct {
	mu         sync.Mutex
	calls      []string
	acquireErr error
}

func (r *recordingState) Acquire() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "acquire")
	return r.acquireErr
}

func (r *recordingState) Release() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "release")
	return nil
}

func (r *recordingState) Calls() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.calls, ",")
}

// manualKillSwitch lets a test press the chord.
type manualKillSwitch struct {
	mu      sync.Mutex
	trigger func()
	ready   chan struct{}
}

func newManualKillSwitch() *manualKillSwitch {
	return &manualKillSwitch{ready: make(chan struct{})}
}

func (m *manualKillSwitch) Register(onTrigger func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trigger = onTrigger
	close(m.ready)
	return nil
}

func (m *manualKillSwitch) Unregister() error { return nil }

func (m *manualKillSwitch) Press() {
	<-m.ready
	m.mu.Lock()
	fn := m.trigger
	m.mu.Unlock()
	fn()
}

// syncBuffer guards output written from several goroutines.
type syncBuffer struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}
