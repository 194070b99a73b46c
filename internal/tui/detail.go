package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/scottbass3/manifestview/internal/render"
)

func (m Model) openDetail() (tea.Model, tea.Cmd) {
	entry, ok := m.detailEntry()
	if !ok {
		m.status = "No image selected"
		return m, nil
	}
	content, err := renderMarkdown(render.Markdown(entry), m.markdownStyle, m.mainSectionContentWidth())
	if err != nil {
		m.status = fmt.Sprintf("Failed to render details: %v", err)
		return m, nil
	}
	m.detailActive = true
	m.detailTitle = strings.TrimSpace(entry.Repo + " " + entry.ProductVersion)
	m.detailContent = content
	m.detailOffset = 0
	return m, nil
}

// detailEntry is the selected image restricted to its visible platforms.
func (m Model) detailEntry() (render.ImageEntry, bool) {
	index, ok := m.currentImageIndex()
	if !ok {
		return render.ImageEntry{}, false
	}
	entry := m.images[index]
	visible := m.sync.Visibility().VisiblePlatforms(index)
	platforms := make([]render.PlatformEntry, 0, len(visible))
	for _, p := range visible {
		platforms = append(platforms, entry.Platforms[p])
	}
	entry.Platforms = platforms
	return entry, true
}

func (m *Model) closeDetail() {
	m.detailActive = false
	m.detailTitle = ""
	m.detailContent = ""
	m.detailOffset = 0
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	maxOffset := max(0, lineCount(m.detailContent)-m.tableHeight())
	switch {
	case isShortcut(msg, shortcutCloseDetail):
		m.closeDetail()
	case isShortcut(msg, shortcutMoveUp):
		m.detailOffset = clamp(m.detailOffset-1, 0, maxOffset)
	case isShortcut(msg, shortcutMoveDown):
		m.detailOffset = clamp(m.detailOffset+1, 0, maxOffset)
	case isShortcut(msg, shortcutMovePageUp):
		m.detailOffset = clamp(m.detailOffset-m.tableHeight(), 0, maxOffset)
	case isShortcut(msg, shortcutMovePageDown):
		m.detailOffset = clamp(m.detailOffset+m.tableHeight(), 0, maxOffset)
	case isShortcut(msg, shortcutMoveTop):
		m.detailOffset = 0
	case isShortcut(msg, shortcutMoveBottom):
		m.detailOffset = maxOffset
	}
	return m, nil
}

func (m Model) renderDetailBody() string {
	lines := strings.Split(m.detailContent, "\n")
	height := m.tableHeight() + tableChromeLines
	start := clamp(m.detailOffset, 0, max(0, len(lines)-1))
	end := min(len(lines), start+height)
	return strings.Join(lines[start:end], "\n")
}

func renderMarkdown(markdown, style string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(20, width)),
	)
	if err != nil {
		return "", err
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
