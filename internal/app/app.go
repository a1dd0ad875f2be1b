// Package app wires the session, kill switch and status output into one run.
package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/stigoleg/nosleep/internal/config"
	"github.com/stigoleg/nosleep/internal/keepalive"
	"github.com/stigoleg/nosleep/internal/platform"
	"github.com/stigoleg/nosleep/internal/ui"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitInvalidInput = 1
	ExitPlatform     = 2
)

// KillSwitch is the global hotkey as seen by the entry point.
type KillSwitch interface {
	Register(onTrigger func()) error
	Unregister() error
}

// Deps are the collaborators of a run. Tests replace the OS-backed ones.
type Deps struct {
	Controller platform.ExecutionState
	KillSwitch KillSwitch
	Clock      clockwork.Clock
	Signals    <-chan os.Signal
	In         io.Reader
	Out        io.Writer

	// Interactive shows the live countdown while the session runs.
	Interactive bool
}

type outcome struct {
	res keepalive.Result
	err error
}

// Run executes one sleep-prevention session and returns the process exit code.
func Run(cfg *config.Config, d Deps) int {
	p := ui.NewPrinter(d.Out)

	minutes := cfg.Minutes
	if minutes == 0 {
		p.Prompt()
		m, ok, err := promptMinutes(d.In, d.Signals)
		if !ok {
			// Nothing was acquired yet, so there is nothing to restore.
			p.EndLine()
			p.Interrupted()
			return ExitOK
		}
		if err != nil {
			p.Error(err)
			return ExitInvalidInput
		}
		minutes = m
	}

	cleanup := keepalive.NewCleanupManager(cfg.CleanupTimeout)
	defer func() {
		if err := cleanup.Execute(); err != nil {
			log.Printf("app: cleanup: %v", err)
		}
	}()
	// Defensive second release; the session already released on its own exit.
	cleanup.RegisterFunc("execution state", d.Controller.Release)

	chord := cfg.KillSwitch.String()
	started := make(chan struct{})
	var startOnce sync.Once
	session := keepalive.NewSession(d.Controller,
		keepalive.WithClock(d.Clock),
		keepalive.WithPollInterval(cfg.PollInterval),
		keepalive.WithObserver(func(st keepalive.State) {
			if st == keepalive.StateRunning {
				p.Started(minutes, chord)
			}
			if st == keepalive.StateRunning || st.Terminal() {
				startOnce.Do(func() { close(started) })
			}
		}),
	)

	if err := d.KillSwitch.Register(func() {
		if session.Cancel() {
			p.KillSwitch()
		}
	}); err != nil {
		log.Printf("app: kill switch: %v", err)
		p.Warning(fmt.Sprintf("%v; sleep prevention will end when the timer expires", err))
	} else {
		cleanup.RegisterFunc("kill switch", d.KillSwitch.Unregister)
	}

	done := make(chan outcome, 1)
	go func() {
		res, err := session.Run(minutes)
		done <- outcome{res: res, err: err}
	}()

	var prog *tea.Program
	var progDone <-chan error
	if d.Interactive {
		<-started
		if session.State() == keepalive.StateRunning {
			prog, progDone = startCountdown(session, time.Duration(minutes)*time.Minute, chord, d)
			p.SetSink(func(s string) { prog.Println(s) })
		}
	}

	out, exited := wait(session, p, done, progDone, d.Signals)

	if prog != nil {
		prog.Send(ui.DoneMsg{})
		if !exited {
			<-progDone
		}
		p.SetSink(nil)
	}

	return report(p, out)
}

type promptResult struct {
	minutes int
	err     error
}

// promptMinutes reads the duration from in. ok is false when an interrupt
// arrived first; the reading goroutine is then abandoned with the process.
func promptMinutes(in io.Reader, signals <-chan os.Signal) (minutes int, ok bool, err error) {
	res := make(chan promptResult, 1)
	go func() {
		m, err := config.ReadMinutes(in)
		res <- promptResult{minutes: m, err: err}
	}()

	select {
	case r := <-res:
		return r.minutes, true, r.err
	case sig := <-signals:
		log.Printf("app: received signal at prompt: %v", sig)
		return 0, false, nil
	}
}

func startCountdown(session *keepalive.Session, total time.Duration, chord string, d Deps) (*tea.Program, <-chan error) {
	prog := tea.NewProgram(
		ui.NewCountdown(session, total, chord),
		tea.WithInput(d.In),
		tea.WithOutput(d.Out),
		tea.WithoutSignalHandler(),
	)
	progDone := make(chan error, 1)
	go func() {
		_, err := prog.Run()
		progDone <- err
	}()
	return prog, progDone
}

// wait blocks until the session ends. Interrupt signals are treated as a
// cancel; the session still decides the terminal state. exited reports
// whether the countdown program already returned.
func wait(session *keepalive.Session, p *ui.Printer, done <-chan outcome, progDone <-chan error, signals <-chan os.Signal) (out outcome, exited bool) {
	for {
		select {
		case out = <-done:
			return out, exited
		case err := <-progDone:
			if err != nil {
				log.Printf("app: countdown stopped: %v", err)
			}
			p.SetSink(nil)
			exited = true
			progDone = nil
		case sig := <-signals:
			log.Printf("app: received signal: %v", sig)
			if session.Cancel() {
				p.Interrupted()
			}
		}
	}
}

func report(p *ui.Printer, out outcome) int {
	if out.err != nil {
		p.Error(out.err)
	}
	if out.res.State == keepalive.StateCompleted {
		p.Completed()
	}
	if out.res.ReleaseErr != nil {
		p.Error(out.res.ReleaseErr)
	} else if out.res.State.Terminal() {
		p.Restored()
	}

	if out.res.State == keepalive.StateFailed {
		return ExitPlatform
	}
	return ExitOK
}
