package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterActive {
		return m.handleFilterKey(msg)
	}
	if m.controlFocused() {
		if next, cmd, ok := m.handleControlKey(msg); ok {
			return next, cmd
		}
	}

	switch {
	case isShortcut(msg, shortcutQuit):
		return m.openQuitConfirm()
	case isShortcut(msg, shortcutNextControl):
		m.cycleControlFocus(1)
		return m, nil
	case isShortcut(msg, shortcutPrevControl):
		m.cycleControlFocus(-1)
		return m, nil
	case isShortcut(msg, shortcutBack):
		return m, m.handleEscape()
	case isShortcut(msg, shortcutClearControls):
		return m, m.clearControls()
	case isShortcut(msg, shortcutHistoryBack):
		return m, m.historyBack()
	case isShortcut(msg, shortcutHistoryForward):
		return m, m.historyForward()
	case isShortcut(msg, shortcutCopyReference):
		m.copySelectedReference()
		return m, nil
	case isShortcut(msg, shortcutOpenDetail):
		return m.openDetail()
	case isShortcut(msg, shortcutOpenFilter):
		m.filterActive = true
		m.filterInput.Focus()
		m.filterInput.CursorEnd()
		m.syncTable()
		return m, nil
	case isShortcut(msg, shortcutOpenCommand):
		return m.enterCommandMode()
	case isShortcut(msg, shortcutRefresh):
		return m, m.refreshCurrent()
	case isShortcut(msg, shortcutOpenPlatforms):
		return m, m.handleEnter()
	}
	if m.handleTableNavKey(msg) {
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleFilterKey feeds the quick text filter while it has focus. The
// cursor returns to the first row whenever the text changes.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isShortcut(msg, shortcutClearFilter):
		m.clearFilter()
		m.syncTable()
		return m, nil
	case isShortcut(msg, shortcutOpenCommand):
		return m.enterCommandMode()
	case isShortcut(msg, shortcutApplyFilter):
		m.stopFilterEditing()
		m.syncTable()
		return m, nil
	}
	before := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() != before {
		m.table.SetCursor(0)
		m.syncTable()
	}
	return m, cmd
}

func (m Model) handleControlKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case isShortcut(msg, shortcutOpenSelect):
		next, cmd := m.openSelect()
		return next, cmd, true
	case isShortcut(msg, shortcutPrevOption):
		return m, m.stepControl(-1), true
	case isShortcut(msg, shortcutNextOption):
		return m, m.stepControl(1), true
	case isShortcut(msg, shortcutLeaveControls):
		m.controlFocus = noControlFocus
		return m, nil, true
	}
	return m, nil, false
}

func (m *Model) handleTableNavKey(msg tea.KeyMsg) bool {
	if len(m.table.Rows()) == 0 {
		return false
	}
	page := max(1, m.table.Height())
	half := max(1, page/2)

	moves := []struct {
		action shortcutAction
		delta  int
	}{
		{shortcutMoveUp, -1},
		{shortcutMoveDown, 1},
		{shortcutMovePageUp, -page},
		{shortcutMovePageDown, page},
		{shortcutMoveHalfUp, -half},
		{shortcutMoveHalfDown, half},
	}
	for _, move := range moves {
		if !isShortcut(msg, move.action) {
			continue
		}
		if move.delta < 0 {
			m.table.MoveUp(-move.delta)
		} else {
			m.table.MoveDown(move.delta)
		}
		return true
	}

	switch {
	case isShortcut(msg, shortcutMoveTop):
		m.table.GotoTop()
	case isShortcut(msg, shortcutMoveBottom):
		m.table.GotoBottom()
	default:
		return false
	}
	return true
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || len(m.table.Rows()) == 0 {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.table.MoveUp(1)
	case tea.MouseButtonWheelDown:
		m.table.MoveDown(1)
	}
	return m, nil
}
