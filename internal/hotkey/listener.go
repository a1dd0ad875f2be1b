package hotkey

import (
	"fmt"
	"log"
	"sync"
)

// binder attaches a chord to the OS input layer.
type binder interface {
	bind(c Chord) (binding, error)
}

// binding is one live OS registration. events delivers a value per key-down.
type binding interface {
	events() <-chan struct{}
	close() error
}

// Listener forwards presses of a global chord to a callback. Delivery is
// asynchronous and independent of any session loop.
type Listener struct {
	chord  Chord
	binder binder

	mu    sync.Mutex
	bound binding
	stop  chan struct{}
	wg    sync.WaitGroup
}

// NewListener returns a listener for chord backed by the OS hotkey API.
func NewListener(chord Chord) *Listener {
	return newListener(chord, osBinder{})
}

func newListener(chord Chord, b binder) *Listener {
	return &Listener{chord: chord, binder: b}
}

// Chord returns the bound key combination.
func (l *Listener) Chord() Chord {
	return l.chord
}

// Register binds the chord and calls onTrigger for every press until
// Unregister. It does not block. A refused binding is reported as a
// *ListenerUnavailableError.
func (l *Listener) Register(onTrigger func()) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.bound != nil {
		return errAlreadyRegistered
	}

	b, err := l.binder.bind(l.chord)
	if err != nil {
		log.Printf("hotkey: register %s failed: %v", l.chord, err)
		return &ListenerUnavailableError{Chord: l.chord, Err: err}
	}

	l.bound = b
	l.stop = make(chan struct{})
	l.wg.Add(1)
	go l.forward(b.events(), l.stop, onTrigger)

	log.Printf("hotkey: registered %s", l.chord)
	return nil
}

func (l *Listener) forward(events <-chan struct{}, stop <-chan struct{}, onTrigger func()) {
	defer l.wg.Done()
	for {
		select {
		case <-stop:
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			log.Printf("hotkey: %s pressed", l.chord)
			onTrigger()
		}
	}
}

// Unregister releases the OS binding. It is safe to call more than once and
// must not be called from the trigger callback.
func (l *Listener) Unregister() error {
	l.mu.Lock()
	b, stop := l.bound, l.stop
	l.bound, l.stop = nil, nil
	l.mu.Unlock()

	if b == nil {
		return nil
	}

	close(stop)
	l.wg.Wait()

	if err := b.close(); err != nil {
		return fmt.Errorf("hotkey: unregister %s: %w", l.chord, err)
	}
	log.Printf("hotkey: unregistered %s", l.chord)
	return nil
}
