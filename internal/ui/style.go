// Package ui renders status output and the live countdown for a session.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the application
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Warning:   lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#FFD75F"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style represents a collection of styles used in the application
type Style struct {
	Title     lipgloss.Style
	Active    lipgloss.Style
	Status    lipgloss.Style
	Warning   lipgloss.Style
	Help      lipgloss.Style
	Error     lipgloss.Style
	ErrorBox  lipgloss.Style
	Countdown lipgloss.Style
	Key       lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	base := lipgloss.NewStyle()

	return Style{
		Title: base.
			Bold(true).
			Foreground(defaultColors.Highlight),

		Active: base.
			Foreground(defaultColors.Special),

		Status: base.
			Foreground(defaultColors.Subtle),

		Warning: base.
			Foreground(defaultColors.Warning),

		Help: base.
			Foreground(defaultColors.Subtle),

		Error: base.
			Foreground(defaultColors.Error),

		ErrorBox: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Error).
			Padding(0, 1),

		Countdown: base.
			Foreground(defaultColors.Highlight).
			Bold(true),

		Key: base.
			Bold(true).
			Foreground(defaultColors.Highlight),
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()
