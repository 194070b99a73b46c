package tui

import (
	"strings"
)

// renderLogs draws the Requests panel. The panel keeps a fixed height so the
// table above it does not jump while requests stream in.
func (m Model) renderLogs() string {
	width := sectionPanelWidth(m.width)
	rows := make([]string, 0, maxVisibleLogs+1)
	rows = append(rows, logTitleStyle.Render("Requests"))

	tail := m.visibleLogs()
	switch {
	case len(tail) == 0:
		rows = append(rows, emptyStyle.Render("(no requests yet)"))
	default:
		for _, entry := range tail {
			rows = append(rows, singleLine(entry, max(10, width-6)))
		}
	}
	for pad := maxVisibleLogs + 1 - len(rows); pad > 0; pad-- {
		rows = append(rows, "")
	}
	return logBoxStyle.Width(width).Render(strings.Join(rows, "\n"))
}

func (m Model) visibleLogs() []string {
	return m.logs[len(m.logs)-min(len(m.logs), maxVisibleLogs):]
}
