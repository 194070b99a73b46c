package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// refreshCurrent re-downloads the feed for the current location, even if it is loaded.
func (m *Model) refreshCurrent() tea.Cmd {
	target := m.feedTarget()
	m.loadedTarget = ""
	return m.startFetch(target)
}
