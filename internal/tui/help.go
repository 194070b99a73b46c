package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) renderHelpSectionBody() string {
	shortcuts := m.currentPageHelpEntries()
	lines := []string{
		helpFooterStyle.Render(fmt.Sprintf("Current page: %s", m.shortcutPageTitle(false))),
		"",
		helpHeadingStyle.Render("Shortcuts"),
	}
	lines = append(lines, renderHelpEntries(shortcuts)...)
	lines = append(lines, "", helpHeadingStyle.Render("Filters"))
	lines = append(lines, m.renderFilterHelpEntries()...)
	lines = append(lines, "", helpHeadingStyle.Render("Commands"))
	lines = append(lines, renderCommandHelpEntries(availableCommands())...)
	lines = append(lines,
		"",
		helpFooterStyle.Render("Press esc, ?, f1, or enter to close help."),
	)
	return strings.Join(lines, "\n")
}

func renderHelpEntries(entries []helpEntry) []string {
	if len(entries) == 0 {
		return []string{helpFooterStyle.Render("No shortcuts available.")}
	}
	width := 8
	for _, entry := range entries {
		width = max(width, len(entry.Keys))
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, helpItemStyle.Render(fmt.Sprintf("%-*s  %s", width, entry.Keys, entry.Action)))
	}
	return lines
}

// renderFilterHelpEntries lists the query parameter behind each control so URLs can
// be written by hand.
func (m Model) renderFilterHelpEntries() []string {
	controls := m.sync.Controls()
	if len(controls) == 0 {
		return []string{helpFooterStyle.Render("No filters configured.")}
	}
	width := 8
	for _, control := range controls {
		width = max(width, len(control.Dimension.Name))
	}
	lines := make([]string, 0, len(controls))
	for _, control := range controls {
		line := fmt.Sprintf("%-*s  %s (%s level, %d values)",
			width,
			control.Dimension.Name,
			control.Dimension.Label,
			control.Dimension.Level,
			max(0, len(control.Options)-1),
		)
		lines = append(lines, helpItemStyle.Render(line))
	}
	return lines
}

func renderCommandHelpEntries(entries []commandHelp) []string {
	if len(entries) == 0 {
		return []string{helpFooterStyle.Render("No commands available.")}
	}
	width := 12
	for _, entry := range entries {
		width = max(width, len(entry.Command))
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, helpItemStyle.Render(fmt.Sprintf(":%-*s  %s", width, entry.Command, entry.Usage)))
	}
	return lines
}

func (m Model) openHelp() (tea.Model, tea.Cmd) {
	m.helpActive = true
	return m, nil
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isShortcut(msg, shortcutCloseHelp):
		m.helpActive = false
		return m, nil
	case isShortcut(msg, shortcutQuit):
		m.helpActive = false
		return m.openQuitConfirm()
	default:
		return m, nil
	}
}

func isHelpShortcut(msg tea.KeyMsg) bool {
	return isShortcut(msg, shortcutOpenHelp)
}
