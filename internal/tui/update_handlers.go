package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/manifestview/internal/render"
)

func (m Model) updateKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.helpActive {
		return m.handleHelpKey(msg)
	}
	if isHelpShortcut(msg) &&
		!m.commandActive &&
		!m.filterActive &&
		!m.selectActive &&
		!m.isConfirmModalActive() {
		return m.openHelp()
	}
	if m.isConfirmModalActive() {
		return m.handleConfirmKey(msg)
	}
	if m.selectActive {
		return m.handleSelectKey(msg)
	}
	if m.commandActive {
		return m.handleCommandKey(msg)
	}
	if m.detailActive {
		return m.handleDetailKey(msg)
	}
	return m.handleKey(msg)
}

func (m Model) updateMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.helpActive ||
		m.commandActive ||
		m.selectActive ||
		m.detailActive ||
		m.isConfirmModalActive() {
		return m, nil
	}
	return m.handleMouse(msg)
}

func (m Model) updateWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.syncTable()
	return m, nil
}

func (m Model) updateFeedMsg(msg feedMsg) (tea.Model, tea.Cmd) {
	m.stopLoading()
	if msg.target != m.pendingTarget {
		return m, nil
	}
	m.pendingTarget = ""
	m.loadedTarget = msg.target
	m.resetSelection()
	m.clearFilter()
	if msg.err != nil {
		m.loadErr = msg.err
		m.images = nil
		m.sync.Reload(nil)
		m.status = fmt.Sprintf("Failed to load feed: %v", msg.err)
		m.syncTable()
		return m, nil
	}
	m.loadErr = nil
	m.images = m.renderer.Render(msg.feed)
	m.sync.Reload(render.Entries(m.images))
	m.status = fmt.Sprintf("Loaded %d images across %d repos", len(m.images), len(msg.feed.Repos))
	m.syncTable()
	return m, nil
}

func (m Model) updateLogMsg(msg logMsg) (tea.Model, tea.Cmd) {
	m.appendLog(string(msg))
	m.syncTable()
	if m.logCh != nil {
		return m, listenLogs(m.logCh)
	}
	return m, nil
}
