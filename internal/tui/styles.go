// Package tui provides an interactive terminal editor for the mediadata configuration.
package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	muted  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}

	styles = struct {
		header, cursor, hint, ok, fail, prompt lipgloss.Style
	}{
		header: lipgloss.NewStyle().Bold(true).Foreground(accent),
		cursor: lipgloss.NewStyle().Bold(true).Foreground(accent),
		hint:   lipgloss.NewStyle().Foreground(muted),
		ok:     lipgloss.NewStyle().Foreground(lipgloss.Color("#02BF87")),
		fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FE5F86")),
		prompt: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#FFAA33")).Padding(1, 2),
	}
)

func formTheme() *huh.Theme {
	return huh.ThemeCharm()
}
