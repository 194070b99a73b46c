package main

import (
	"errors"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scottbass3/manifestview/internal/config"
)

var errPickCanceled = errors.New("source selection canceled")

type sourceItem struct {
	source config.Source
}

func (i sourceItem) Title() string {
	return i.source.Name
}

func (i sourceItem) Description() string {
	switch {
	case i.source.Ref != "" && i.source.File != "":
		return i.source.Ref + " · " + i.source.File
	case i.source.Ref != "":
		return i.source.Ref
	default:
		return i.source.File
	}
}

func (i sourceItem) FilterValue() string {
	return i.source.Name
}

type sourcePickerModel struct {
	list   list.Model
	choice *config.Source
}

func newSourcePickerModel(sources []config.Source) sourcePickerModel {
	items := make([]list.Item, 0, len(sources))
	for _, source := range sources {
		items = append(items, sourceItem{source: source})
	}

	lst := list.New(items, list.NewDefaultDelegate(), 0, 0)
	lst.Title = "Select Source"
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(true)
	lst.Styles.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	lst.Styles.HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return sourcePickerModel{list: lst}
}

func (m sourcePickerModel) Init() tea.Cmd {
	return nil
}

func (m sourcePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, max(4, msg.Height-2))
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "esc", "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(sourceItem); ok {
				choice := item.source
				m.choice = &choice
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m sourcePickerModel) View() string {
	return m.list.View()
}

func pickSource(sources []config.Source) (config.Source, error) {
	if len(sources) == 0 {
		return config.Source{}, errors.New("no sources saved in the config file")
	}
	result, err := tea.NewProgram(newSourcePickerModel(sources), tea.WithAltScreen()).Run()
	if err != nil {
		return config.Source{}, err
	}
	final, ok := result.(sourcePickerModel)
	if !ok || final.choice == nil {
		return config.Source{}, errPickCanceled
	}
	return *final.choice, nil
}
