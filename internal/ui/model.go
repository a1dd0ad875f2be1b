package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const maxProgressWidth = 40

// Source is the running session as seen by the countdown.
type Source interface {
	Remaining() time.Duration
	Cancel() bool
}

// DoneMsg tells the countdown that the session reached a terminal state.
type DoneMsg struct{}

// tickMsg is sent when the countdown timer ticks
type tickMsg time.Time

// Countdown shows time left and a progress bar while a session runs.
type Countdown struct {
	src      Source
	total    time.Duration
	chord    string
	keys     KeyMap
	help     help.Model
	progress progress.Model
	stopping bool
	done     bool
}

// NewCountdown returns a countdown for a session of the given total length.
func NewCountdown(src Source, total time.Duration, chord string) Countdown {
	return Countdown{
		src:   src,
		total: total,
		chord: chord,
		keys:  DefaultKeys(),
		help:  help.New(),
		progress: progress.New(
			progress.WithGradient("#7D56F4", "#43BF6D"),
			progress.WithWidth(maxProgressWidth),
			progress.WithoutPercentage(),
		),
	}
}

// Init implements tea.Model
func (m Countdown) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model
func (m Countdown) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return update(msg, m)
}

// View implements tea.Model
func (m Countdown) View() string {
	return view(m)
}

// Percent returns the elapsed share of the session in [0, 1].
func (m Countdown) Percent() float64 {
	if m.total <= 0 {
		return 0
	}
	p := 1 - float64(m.src.Remaining())/float64(m.total)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
