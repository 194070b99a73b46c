package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderControlBar shows one select per filter dimension, wrapping to extra lines when
// the bar is wider than width.
func (m Model) renderControlBar(width int) string {
	controls := m.sync.Controls()
	if len(controls) == 0 {
		return controlLabelStyle.Render("No filters configured")
	}
	var lines []string
	var current []string
	currentWidth := 0
	for i, control := range controls {
		valueStyle := controlValueStyle
		switch {
		case i == m.controlFocus:
			valueStyle = controlFocusValueStyle
		case control.Value != "":
			valueStyle = controlActiveValueStyle
		}
		cell := lipgloss.JoinHorizontal(
			lipgloss.Top,
			controlLabelStyle.Render(control.Dimension.Label+" "),
			valueStyle.Render(truncateWidth(control.Selected(), 24)),
			"  ",
		)
		cellWidth := lipgloss.Width(cell)
		if currentWidth > 0 && currentWidth+cellWidth > width {
			lines = append(lines, strings.Join(current, ""))
			current = nil
			currentWidth = 0
		}
		current = append(current, cell)
		currentWidth += cellWidth
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, ""))
	}
	return strings.Join(lines, "\n")
}
