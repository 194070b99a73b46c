package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func makeColumns(focus Focus, width int) []table.Column {
	contentWidth := func(columnCount int) int {
		// bubbles/table default cell style uses horizontal padding of 1 on each side.
		available := width - (2 * columnCount)
		if available < columnCount {
			return columnCount
		}
		return available
	}

	dateWidth := 10
	sizeWidth := 10
	digestWidth := 12

	switch focus {
	case FocusPlatforms:
		platformWidth := 14
		content := contentWidth(6)
		flexible := max(2, content-platformWidth-sizeWidth-digestWidth-dateWidth)
		osWidth := max(1, flexible/2)
		return []table.Column{
			{Title: "Platform", Width: platformWidth},
			{Title: "OS Version", Width: osWidth},
			{Title: "Size", Width: sizeWidth},
			{Title: "Digest", Width: digestWidth},
			{Title: "Created", Width: dateWidth},
			{Title: "Tag", Width: max(1, flexible-osWidth)},
		}
	case FocusLayers:
		content := contentWidth(2)
		return []table.Column{
			{Title: "Digest", Width: max(1, content-sizeWidth)},
			{Title: "Size", Width: sizeWidth},
		}
	default:
		versionWidth := 12
		osWidth := 14
		archWidth := 14
		content := contentWidth(6)
		flexible := max(2, content-versionWidth-osWidth-archWidth-dateWidth)
		repoWidth := max(1, flexible*2/5)
		return []table.Column{
			{Title: "Repo", Width: repoWidth},
			{Title: "Version", Width: versionWidth},
			{Title: "Tag", Width: max(1, flexible-repoWidth)},
			{Title: "OS", Width: osWidth},
			{Title: "Arch", Width: archWidth},
			{Title: "Created", Width: dateWidth},
		}
	}
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Foreground(colorTitleText).
		Background(colorSurface2).
		Bold(true)
	styles.Cell = lipgloss.NewStyle().Padding(0, 1)
	styles.Selected = styles.Selected.
		Foreground(colorSelected).
		Background(colorAccent).
		Bold(true)
	return styles
}
