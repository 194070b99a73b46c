package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleEnter() tea.Cmd {
	index, ok := m.cursorIndex()
	if !ok {
		return nil
	}

	switch m.focus {
	case FocusImages:
		image := m.images[index]
		m.selectedImage = index
		m.hasSelectedImage = true
		m.hasSelectedPlatform = false
		m.focus = FocusPlatforms
		m.status = fmt.Sprintf("%s %s", image.Repo, image.ProductVersion)
		m.clearFilter()
		m.table.SetCursor(0)
		m.syncTable()
		return nil
	case FocusPlatforms:
		if !m.renderer.IncludeLayers {
			m.status = "Layer details are disabled; start with --layers"
			return nil
		}
		platform := m.images[m.selectedImage].Platforms[index]
		m.selectedPlatform = index
		m.hasSelectedPlatform = true
		m.focus = FocusLayers
		m.status = fmt.Sprintf("%d layers in %s", len(platform.Layers), platform.Platform)
		m.clearFilter()
		m.table.SetCursor(0)
		m.syncTable()
		return nil
	default:
		return nil
	}
}

func (m *Model) handleEscape() tea.Cmd {
	switch m.focus {
	case FocusLayers:
		m.hasSelectedPlatform = false
		m.focus = FocusPlatforms
		m.clearFilter()
		m.table.SetCursor(m.selectedPlatformRow())
		m.syncTable()
		return nil
	case FocusPlatforms:
		row := m.selectedImageRow()
		m.resetSelection()
		m.clearFilter()
		m.table.SetCursor(row)
		m.syncTable()
		return nil
	default:
		m.clearFilter()
		m.syncTable()
		return nil
	}
}

func (m *Model) resetSelection() {
	m.selectedImage = 0
	m.hasSelectedImage = false
	m.selectedPlatform = 0
	m.hasSelectedPlatform = false
	m.focus = FocusImages
}

// cursorIndex maps the table cursor back to an index into the focused collection.
func (m Model) cursorIndex() (int, bool) {
	list := m.listView()
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(list.indices) {
		return 0, false
	}
	index := list.indices[cursor]
	if index < 0 {
		return 0, false
	}
	return index, true
}

func (m Model) currentImageIndex() (int, bool) {
	if m.focus == FocusImages {
		return m.cursorIndex()
	}
	if !m.hasSelectedImage || m.selectedImage >= len(m.images) {
		return 0, false
	}
	return m.selectedImage, true
}

func (m Model) selectedImageRow() int {
	for row, index := range m.sync.Visibility().VisibleImages() {
		if index == m.selectedImage {
			return row
		}
	}
	return 0
}

func (m Model) selectedPlatformRow() int {
	for row, index := range m.sync.Visibility().VisiblePlatforms(m.selectedImage) {
		if index == m.selectedPlatform {
			return row
		}
	}
	return 0
}

func (m *Model) clearFilter() {
	m.filterInput.SetValue("")
	m.stopFilterEditing()
}

func (m *Model) stopFilterEditing() {
	m.filterInput.Blur()
	m.filterActive = false
}

func (m *Model) startLoading() {
	m.loadingCount++
}

func (m *Model) stopLoading() {
	if m.loadingCount <= 0 {
		return
	}
	m.loadingCount--
}

func (m Model) isLoading() bool {
	return m.loadingCount > 0
}

func (m Model) emptyBodyMessage() string {
	if m.isLoading() {
		return "Loading feed..."
	}
	if m.loadErr != nil {
		return fmt.Sprintf("Failed to load feed: %v. Press r to retry.", m.loadErr)
	}

	filter := strings.TrimSpace(m.filterInput.Value())
	if filter != "" {
		return fmt.Sprintf("No results for filter %q", filter)
	}

	switch m.focus {
	case FocusPlatforms:
		return "No platforms match the current filters."
	case FocusLayers:
		return "No layers recorded for this platform."
	default:
		if len(m.images) > 0 && m.activeFilterCount() > 0 {
			return "No images match the current filters. Press x to clear them."
		}
		return "No images to display."
	}
}
