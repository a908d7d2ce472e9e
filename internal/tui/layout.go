package tui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout stacks the menu bar, panel and status bar.
func ComposeLayout(menuBar, panel, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, panel, statusBar)
}

func pad(width int, parts ...string) string {
	used := 0
	for _, p := range parts {
		used += lipgloss.Width(p)
	}
	gap := max(width-used, 0)
	spaces := make([]byte, gap)
	for i := range spaces {
		spaces[i] = ' '
	}
	return string(spaces)
}
