//go:build windows

package hotkey

import (
	"sync"
	"unicode"

	xhotkey "golang.design/x/hotkey"
)

type osBinder struct{}

func (osBinder) bind(c Chord) (binding, error) {
	var mods []xhotkey.Modifier
	if c.Ctrl {
		mods = append(mods, xhotkey.ModCtrl)
	}
	if c.Shift {
		mods = append(mods, xhotkey.ModShift)
	}
	if c.Alt {
		mods = append(mods, xhotkey.ModAlt)
	}
	if c.Win {
		mods = append(mods, xhotkey.ModWin)
	}

	// Virtual-key codes for A-Z and 0-9 equal their uppercase ASCII values.
	hk := xhotkey.New(mods, xhotkey.Key(unicode.ToUpper(c.Key)))
	if err := hk.Register(); err != nil {
		return nil, err
	}

	b := &osBinding{
		hk:   hk,
		out:  make(chan struct{}, 1),
		stop: make(chan struct{}),
	}
	b.wg.Add(1)
	go b.pump()
	return b, nil
}

type osBinding struct {
	hk   *xhotkey.Hotkey
	out  chan struct{}
	stop chan struct{}
	wg   sync.WaitGroup
}

func (b *osBinding) pump() {
	defer b.wg.Done()
	for {
		select {
		case <-b.stop:
			return
		case _, ok := <-b.hk.Keydown():
			if !ok {
				return
			}
			select {
			case b.out <- struct{}{}:
			default:
			}
		}
	}
}

func (b *osBinding) events() <-chan struct{} {
	return b.out
}

func (b *osBinding) close() error {
	close(b.stop)
	b.wg.Wait()
	return b.hk.Unregister()
}
