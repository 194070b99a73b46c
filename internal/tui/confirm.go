package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "q", "ctrl+c":
		return m.answerQuit(true)
	case "n", "esc":
		return m.answerQuit(false)
	case "enter":
		return m.answerQuit(m.quitFocused)
	case "tab", "shift+tab":
		m.quitFocused = !m.quitFocused
	case "left", "h":
		m.quitFocused = false
	case "right", "l":
		m.quitFocused = true
	}
	return m, nil
}

func (m Model) openQuitConfirm() (tea.Model, tea.Cmd) {
	m.confirmState = confirmState{quitPending: true}
	return m, nil
}

func (m Model) answerQuit(quit bool) (tea.Model, tea.Cmd) {
	m.confirmState = confirmState{}
	if quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) isConfirmModalActive() bool {
	return m.quitPending
}
