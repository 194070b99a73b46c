package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const maxSelectRows = 12

func (m Model) openSelect() (tea.Model, tea.Cmd) {
	control, ok := m.focusedControl()
	if !ok {
		return m, nil
	}
	return m.openSelectFor(control.Dimension.Name)
}

func (m Model) openSelectFor(name string) (tea.Model, tea.Cmd) {
	control, ok := m.sync.Control(name)
	if !ok {
		return m, nil
	}
	m.selectActive = true
	m.selectDim = control.Dimension.Name
	m.selectLabel = control.Dimension.Label
	m.selectOptions = append([]string(nil), control.Options...)
	m.selectIndex = 0
	for i, option := range m.selectOptions {
		if option == control.Selected() {
			m.selectIndex = i
			break
		}
	}
	return m, nil
}

func (m *Model) closeSelect() {
	m.selectActive = false
	m.selectDim = ""
	m.selectLabel = ""
	m.selectOptions = nil
	m.selectIndex = 0
}

func (m Model) handleSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.selectOptions)
	switch {
	case isShortcut(msg, shortcutSelectCancel):
		m.closeSelect()
		return m, nil
	case isShortcut(msg, shortcutSelectApply):
		if count == 0 {
			m.closeSelect()
			return m, nil
		}
		name := m.selectDim
		value := m.selectOptions[clamp(m.selectIndex, 0, count-1)]
		m.closeSelect()
		return m, m.changeControl(name, value)
	case isShortcut(msg, shortcutMoveUp):
		if count > 0 {
			m.selectIndex = (m.selectIndex - 1 + count) % count
		}
	case isShortcut(msg, shortcutMoveDown):
		if count > 0 {
			m.selectIndex = (m.selectIndex + 1) % count
		}
	case isShortcut(msg, shortcutMoveTop):
		m.selectIndex = 0
	case isShortcut(msg, shortcutMoveBottom):
		m.selectIndex = max(0, count-1)
	case msg.String() == "ctrl+c":
		m.closeSelect()
		return m.openQuitConfirm()
	}
	return m, nil
}

func (m Model) renderSelectModal() string {
	lines := []string{
		modalTitleStyle.Render(fmt.Sprintf("Filter by %s", m.selectLabel)),
		modalDividerStyle.Render(strings.Repeat("─", 24)),
	}
	if len(m.selectOptions) == 0 {
		lines = append(lines, modalOptionMutedStyle.Render("No values available."))
	}

	selected := clamp(m.selectIndex, 0, max(0, len(m.selectOptions)-1))
	start := 0
	if selected >= maxSelectRows {
		start = selected - maxSelectRows + 1
	}
	end := min(len(m.selectOptions), start+maxSelectRows)
	if start > 0 {
		lines = append(lines, modalOptionMutedStyle.Render(fmt.Sprintf("  ... %d more", start)))
	}
	for i := start; i < end; i++ {
		prefix := "  "
		style := modalOptionStyle
		if i == selected {
			prefix = "> "
			style = modalOptionFocusStyle
		}
		lines = append(lines, style.Render(prefix+m.selectOptions[i]))
	}
	if end < len(m.selectOptions) {
		lines = append(lines, modalOptionMutedStyle.Render(fmt.Sprintf("  ... %d more", len(m.selectOptions)-end)))
	}
	lines = append(lines,
		"",
		modalHelpStyle.Render("up/down move  enter apply  esc cancel"),
	)
	return m.renderModalCard(strings.Join(lines, "\n"), 48)
}
