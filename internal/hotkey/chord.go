// Package hotkey binds the global kill-switch chord that cancels a session.
package hotkey

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Chord is a global key combination: modifiers plus one letter or digit.
type Chord struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Win   bool
	Key   rune
}

var defaultChord = MustParseChord("ctrl+shift+q")

// DefaultChord returns the kill-switch chord, ctrl+shift+q.
func DefaultChord() Chord {
	return defaultChord
}

// ParseChord parses strings like "ctrl+shift+q". Names are case-insensitive.
func ParseChord(s string) (Chord, error) {
	var c Chord
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch part {
		case "ctrl", "control":
			c.Ctrl = true
		case "shift":
			c.Shift = true
		case "alt":
			c.Alt = true
		case "win", "super", "meta":
			c.Win = true
		default:
			r := []rune(part)
			if len(r) != 1 {
				return Chord{}, fmt.Errorf("hotkey: invalid key %q in chord %q", part, s)
			}
			if c.Key != 0 {
				return Chord{}, fmt.Errorf("hotkey: chord %q has more than one key", s)
			}
			c.Key = r[0]
		}
	}
	if err := c.Validate(); err != nil {
		return Chord{}, fmt.Errorf("hotkey: chord %q: %w", s, err)
	}
	return c, nil
}

// MustParseChord is like ParseChord but panics on error.
func MustParseChord(s string) Chord {
	c, err := ParseChord(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks that the chord can be registered globally.
func (c Chord) Validate() error {
	if c.Key > unicode.MaxASCII || !(unicode.IsLetter(c.Key) || unicode.IsDigit(c.Key)) {
		return errors.New("key must be a single ASCII letter or digit")
	}
	if !c.Ctrl && !c.Shift && !c.Alt && !c.Win {
		return errors.New("at least one modifier is required")
	}
	return nil
}

func (c Chord) String() string {
	var parts []string
	if c.Ctrl {
		parts = append(parts, "ctrl")
	}
	if c.Shift {
		parts = append(parts, "shift")
	}
	if c.Alt {
		parts = append(parts, "alt")
	}
	if c.Win {
		parts = append(parts, "win")
	}
	parts = append(parts, string(unicode.ToLower(c.Key)))
	return strings.Join(parts, "+")
}
