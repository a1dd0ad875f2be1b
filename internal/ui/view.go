package ui

import (
	"fmt"
	"strings"
)

func view(m Countdown) string {
	if m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString(Current.Title.Render("Sleep Prevention Active"))
	b.WriteString("\n\n")

	if m.stopping {
		b.WriteString(Current.Warning.Render("Stopping, restoring sleep settings..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(Current.Active.Render("System is being kept awake"))
	b.WriteString("\n")

	remaining := m.src.Remaining()
	hours := int(remaining.Hours())
	minutes := int(remaining.Minutes()) % 60
	seconds := int(remaining.Seconds()) % 60
	var countdown string
	if hours > 0 {
		countdown = fmt.Sprintf("%d:%02d:%02d remaining", hours, minutes, seconds)
	} else {
		countdown = fmt.Sprintf("%d:%02d remaining", minutes, seconds)
	}
	b.WriteString(Current.Countdown.Render(countdown))
	b.WriteString("\n\n")

	b.WriteString(m.progress.ViewAs(m.Percent()))
	b.WriteString("\n\n")

	b.WriteString(Current.Status.Render("Press ") + Current.Key.Render(m.chord) +
		Current.Status.Render(" anywhere to restore sleep settings"))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}
