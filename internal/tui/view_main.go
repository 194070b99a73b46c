package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderApp() string {
	sections := []string{
		m.renderTopSection(),
		m.renderMainSection(),
	}
	if m.debug {
		sections = append(sections, m.renderLogs())
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderTopSection() string {
	statusValue := strings.TrimSpace(m.status)
	if statusValue == "" {
		statusValue = "-"
	}
	statusLine := statusStyle.Render(statusValue)
	switch {
	case m.isLoading():
		statusLine = statusLoadingStyle.Render(statusValue)
	case m.loadErr != nil:
		statusLine = statusErrorStyle.Render(statusValue)
	}
	contentWidth := max(10, sectionPanelWidth(m.width)-4)

	headerLine := lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render("manifestview"), statusLine)
	source := m.currentSource()
	metaLine := lipgloss.JoinHorizontal(
		lipgloss.Top,
		metaLabelStyle.Render("Ref"),
		metaValueStyle.Render(firstNonEmpty(source.Ref, "-")),
		metaLabelStyle.Render("File"),
		metaValueStyle.Render(firstNonEmpty(source.File, "-")),
		metaLabelStyle.Render("Path"),
		metaValueStyle.Render(firstNonEmpty(m.breadcrumb(), "/")),
	)
	lines := []string{
		truncateWidth(headerLine, contentWidth),
		metaLine,
		metaLabelStyle.Render("URL") + truncateWidth(m.sync.Location().QueryString(), contentWidth-4),
		m.renderControlBar(contentWidth),
	}
	if summary := m.repoSummary(); summary != "" {
		lines = append(lines, shortcutHintStyle.Render(truncateWidth(summary, contentWidth)))
	}
	if inputLine := m.renderModeInputLine(); inputLine != "" {
		lines = append(lines, modeInputStyle.Render(inputLine))
	}
	lines = append(lines, shortcutHintStyle.Render(truncateWidth(m.shortcutHintLine(), contentWidth)))
	return topSectionStyle.Width(sectionPanelWidth(m.width)).Render(strings.Join(lines, "\n"))
}

// repoSummary lists visible image counts per repo, in feed order.
func (m Model) repoSummary() string {
	if len(m.images) == 0 {
		return ""
	}
	var order []string
	counts := make(map[string]int)
	for _, image := range m.images {
		if _, ok := counts[image.Repo]; !ok {
			order = append(order, image.Repo)
			counts[image.Repo] = 0
		}
	}
	for _, index := range m.sync.Visibility().VisibleImages() {
		counts[m.images[index].Repo]++
	}
	parts := make([]string, 0, len(order))
	for _, repo := range order {
		parts = append(parts, fmt.Sprintf("%s - %d images", repo, counts[repo]))
	}
	return strings.Join(parts, "  |  ")
}

func (m Model) renderMainSection() string {
	panelWidth := sectionPanelWidth(m.width)
	contentWidth := m.mainSectionContentWidth()
	titleLabel := focusLabel(m.focus)
	body := m.renderBody()
	switch {
	case m.helpActive:
		titleLabel = "Help"
		body = m.renderHelpSectionBody()
	case m.detailActive:
		titleLabel = m.detailTitle
		body = m.renderDetailBody()
	}
	title := mainSectionTitleStyle.Render(strings.ToUpper(titleLabel))
	titleLine := mainSectionTitleLine.
		Width(contentWidth).
		Align(lipgloss.Center).
		Render(title)
	content := strings.Join([]string{
		titleLine,
		body,
	}, "\n")
	return mainSectionStyle.Width(panelWidth).Render(content)
}

func sectionPanelWidth(width int) int {
	if width <= 0 {
		width = defaultRenderWidth
	}
	panelWidth := width - 2
	if panelWidth < 24 {
		panelWidth = width
	}
	if panelWidth < 1 {
		panelWidth = 1
	}
	return panelWidth
}

func (m Model) mainSectionContentWidth() int {
	contentWidth := sectionPanelWidth(m.width) - mainSectionHChromeChars
	if contentWidth < 1 {
		return 1
	}
	return contentWidth
}

func (m Model) renderModeInputLine() string {
	if m.commandActive {
		line := m.commandInput.View()
		if len(m.commandMatches) > 0 {
			line += "  " + strings.Join(m.commandMatches, " ")
		}
		return line
	}
	if m.filterActive {
		return m.filterInput.View()
	}
	if value := strings.TrimSpace(m.filterInput.Value()); value != "" {
		return m.filterInput.Prompt + value
	}
	return ""
}

func (m Model) renderBody() string {
	view := m.table.View()
	if len(m.table.Rows()) == 0 {
		return view + "\n" + emptyStyle.Render(m.emptyBodyMessage())
	}
	return view
}
