package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m.openQuitConfirm()
	case isShortcut(msg, shortcutCommandCancel):
		return m.exitCommandMode()
	case isShortcut(msg, shortcutCommandAutocomplete):
		if len(m.commandMatches) > 0 {
			m.commandInput.SetValue(m.commandMatches[m.commandIndex] + " ")
			m.commandInput.CursorEnd()
		}
		return m, nil
	case isShortcut(msg, shortcutCommandPrevSuggestion):
		m.cycleSuggestion(-1)
		return m, nil
	case isShortcut(msg, shortcutCommandNextSuggestion):
		m.cycleSuggestion(1)
		return m, nil
	case isShortcut(msg, shortcutCommandRun):
		return m.runCommand()
	}

	before := m.commandInput.Value()
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	if m.commandInput.Value() != before {
		m.commandIndex = 0
		m.commandMatches = matchCommands(commandToken(m.commandInput.Value()))
	}
	return m, cmd
}

func (m *Model) cycleSuggestion(step int) {
	n := len(m.commandMatches)
	if n == 0 {
		return
	}
	m.commandIndex = ((m.commandIndex+step)%n + n) % n
}

func (m Model) enterCommandMode() (tea.Model, tea.Cmd) {
	m.commandPrevFilterActive = m.filterActive
	if m.filterActive {
		m.stopFilterEditing()
	}
	m.commandActive = true
	m.commandError = ""
	m.commandInput.SetValue("")
	cmd := m.commandInput.Focus()
	m.commandInput.CursorEnd()
	m.commandMatches = matchCommands("")
	m.commandIndex = 0
	m.syncTable()
	return m, cmd
}

func (m Model) exitCommandMode() (tea.Model, tea.Cmd) {
	m.resetCommandInput()
	var cmd tea.Cmd
	if m.commandPrevFilterActive {
		m.filterActive = true
		cmd = m.filterInput.Focus()
		m.filterInput.CursorEnd()
	}
	m.commandPrevFilterActive = false
	m.syncTable()
	return m, cmd
}

func (m *Model) resetCommandInput() {
	m.commandActive = false
	m.commandInput.Blur()
	m.commandInput.SetValue("")
	m.commandMatches = nil
	m.commandIndex = 0
	m.commandError = ""
}

func (m Model) runCommand() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.commandInput.Value())
	if input == "" {
		return m.exitCommandMode()
	}

	m.resetCommandInput()
	m.commandPrevFilterActive = false
	m.syncTable()

	name, args := parseCommand(input)
	command, ok := resolveCommand(name)
	if !ok {
		m.status = fmt.Sprintf("Unknown command: %s", name)
		return m, nil
	}
	m.log.V(1).Info("running command", "command", command.Name, "args", args)
	return command.Run(m, args)
}

// parseCommand splits a command line into its lower-cased name and arguments.
func parseCommand(input string) (string, []string) {
	name, args := splitFirst(input)
	return strings.ToLower(name), args
}

func commandToken(input string) string {
	name, _ := splitFirst(input)
	return name
}

func splitFirst(input string) (string, []string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
