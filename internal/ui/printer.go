package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const (
	msgPrompt      = "Enter the number of minutes to prevent system sleep: "
	msgKillSwitch  = "Kill switch activated. Restoring sleep settings..."
	msgInterrupted = "Operation cancelled by user."
	msgCompleted   = "Requested duration elapsed."
	msgRestored    = "System sleep settings restored."
)

// Printer writes the human-readable status lines. It is safe for concurrent
// use: the kill switch, the signal handler and the session all report
// through the same Printer.
type Printer struct {
	mu   sync.Mutex
	w    io.Writer
	sink func(string)
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// SetSink redirects complete lines to fn, e.g. a running countdown program.
// A nil fn writes to the underlying writer again.
func (p *Printer) SetSink(fn func(string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sink = fn
}

func (p *Printer) line(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sink != nil {
		p.sink(s)
		return
	}
	fmt.Fprintln(p.w, s)
}

// Prompt asks for the duration without ending the line.
func (p *Printer) Prompt() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.w, msgPrompt)
}

// EndLine terminates a pending prompt line.
func (p *Printer) EndLine() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w)
}

// Started announces the session with its duration and the kill-switch chord.
func (p *Printer) Started(minutes int, chord string) {
	p.line(Current.Active.Render(fmt.Sprintf("System sleep prevented for %d minutes.", minutes)))
	p.line(Current.Status.Render("Press ") + Current.Key.Render(chord) + Current.Status.Render(" to restore sleep settings."))
}

// KillSwitch reports that the global chord cancelled the session.
func (p *Printer) KillSwitch() {
	p.line(Current.Warning.Render(msgKillSwitch))
}

// Interrupted reports a user abort (signal or stop key).
func (p *Printer) Interrupted() {
	p.line(Current.Warning.Render(msgInterrupted))
}

// Completed reports that the requested duration elapsed.
func (p *Printer) Completed() {
	p.line(Current.Status.Render(msgCompleted))
}

// Restored confirms that default power management is back.
func (p *Printer) Restored() {
	p.line(Current.Active.Render(msgRestored))
}

// Warning reports a non-fatal problem.
func (p *Printer) Warning(msg string) {
	p.line(Current.Warning.Render("Warning: " + msg))
}

// Error reports a failure. Errors carrying format help are shown in a box.
func (p *Printer) Error(err error) {
	p.line(formatError(err))
}

func formatError(err error) string {
	msg := err.Error()
	parts := strings.SplitN(msg, "\n\n", 2)
	if len(parts) != 2 {
		return Current.Error.Render("Error: " + msg)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(defaultColors.Error).
		Render(parts[0])

	details := Current.Help.Render(parts[1])

	return Current.ErrorBox.Render(header + "\n\n" + details)
}
