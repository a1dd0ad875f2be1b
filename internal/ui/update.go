package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func update(msg tea.Msg, m Countdown) (Countdown, tea.Cmd) {
	switch msg := msg.(type) {
	case DoneMsg:
		m.done = true
		return m, tea.Quit

	case tickMsg:
		if m.done {
			return m, nil
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.progress.Width = msg.Width - 4
		if m.progress.Width > maxProgressWidth {
			m.progress.Width = maxProgressWidth
		}
		if m.progress.Width < 10 {
			m.progress.Width = 10
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Stop):
			if m.stopping {
				return m, nil
			}
			m.stopping = true
			// The session goroutine sees the cleared flag and the app sends DoneMsg.
			if m.src.Cancel() {
				return m, tea.Println(Current.Warning.Render(msgInterrupted))
			}
			return m, nil
		case key.Matches(msg, m.keys.ToggleHelp):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	return m, nil
}
