package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/manifestview/internal/feed"
	"github.com/scottbass3/manifestview/internal/filter"
	"github.com/scottbass3/manifestview/internal/urlstate"
)

func (m Model) controlFocused() bool {
	return m.controlFocus >= 0 && m.controlFocus < len(m.sync.Controls())
}

func (m Model) focusedControl() (urlstate.Control, bool) {
	if !m.controlFocused() {
		return urlstate.Control{}, false
	}
	return m.sync.Controls()[m.controlFocus], true
}

// cycleControlFocus moves through the control bar; stepping past either end returns
// focus to the table.
func (m *Model) cycleControlFocus(delta int) {
	count := len(m.sync.Controls())
	if count == 0 {
		m.controlFocus = noControlFocus
		return
	}
	next := m.controlFocus + delta
	switch {
	case m.controlFocus == noControlFocus && delta > 0:
		next = 0
	case m.controlFocus == noControlFocus && delta < 0:
		next = count - 1
	case next < 0 || next >= count:
		next = noControlFocus
	}
	m.controlFocus = next
}

func (m *Model) stepControl(delta int) tea.Cmd {
	control, ok := m.focusedControl()
	if !ok {
		return nil
	}
	return m.changeControl(control.Dimension.Name, control.Step(delta))
}

// changeControl applies a select change: the query parameter is set or removed, a
// history entry is pushed and visibility recomputed.
func (m *Model) changeControl(name, value string) tea.Cmd {
	if err := m.sync.Change(name, value); err != nil {
		m.status = err.Error()
		return nil
	}
	control, _ := m.sync.Control(name)
	m.status = fmt.Sprintf("%s: %s", control.Dimension.Label, control.Selected())
	return m.afterNavigation()
}

func (m *Model) clearControls() tea.Cmd {
	if len(m.sync.State()) == 0 {
		m.status = "No filters to clear"
		return nil
	}
	m.sync.Clear()
	m.status = "Cleared all filters"
	return m.afterNavigation()
}

func (m *Model) historyBack() tea.Cmd {
	if !m.sync.Back() {
		m.status = "No earlier location"
		return nil
	}
	m.status = "Back to " + m.sync.Location().QueryString()
	return m.afterNavigation()
}

func (m *Model) historyForward() tea.Cmd {
	if !m.sync.Forward() {
		m.status = "No later location"
		return nil
	}
	m.status = "Forward to " + m.sync.Location().QueryString()
	return m.afterNavigation()
}

func (m *Model) navigate(location urlstate.Location) tea.Cmd {
	m.sync.Navigate(location)
	return m.afterNavigation()
}

// afterNavigation reconciles the view with the current location: a changed feed source
// triggers a fetch, anything else only re-filters the loaded entries.
func (m *Model) afterNavigation() tea.Cmd {
	if m.hasSelectedImage && !m.sync.Visibility().ImageVisible(m.selectedImage) {
		m.resetSelection()
	}
	if m.hasSelectedPlatform && !m.sync.Visibility().PlatformVisible(m.selectedImage, m.selectedPlatform) {
		m.hasSelectedPlatform = false
		m.focus = FocusPlatforms
	}
	cmd := m.fetchIfNeeded()
	m.syncTable()
	return cmd
}

func (m Model) currentSource() feed.Source {
	return feed.SourceFromQuery(m.sync.Location().Query(), m.defaults)
}

// withSource sets the feed-selection parameters, dropping the legacy branch alias.
func (m *Model) withSource(ref, file string) urlstate.Location {
	m.feedOverride = ""
	location := m.sync.Location().Without(feed.ParamBranch)
	if ref != "" {
		location = location.With(feed.ParamRef, ref)
	}
	if file != "" {
		location = location.With(feed.ParamFile, file)
	}
	return location
}

func (m Model) activeFilterCount() int {
	return len(m.sync.State())
}

func (m Model) dimensionByName(name string) (filter.Dimension, bool) {
	dims := make([]filter.Dimension, 0, len(m.sync.Controls()))
	for _, control := range m.sync.Controls() {
		dims = append(dims, control.Dimension)
	}
	return filter.Find(dims, name)
}
