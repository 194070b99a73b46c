package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/manifestview/internal/config"
	"github.com/scottbass3/manifestview/internal/filter"
	"github.com/scottbass3/manifestview/internal/urlstate"
)

type commandDescriptor struct {
	Name    string
	Aliases []string
	Help    []commandHelp
	Run     func(Model, []string) (tea.Model, tea.Cmd)
}

func commandRegistry() []commandDescriptor {
	return []commandDescriptor{
		{
			Name: "help",
			Help: []commandHelp{
				{Command: "help", Usage: "Open the help page"},
			},
			Run: runHelpCommand,
		},
		{
			Name:    "filter",
			Aliases: []string{"f"},
			Help: []commandHelp{
				{Command: "filter <dim>", Usage: "Open the select for a filter"},
				{Command: "filter <dim> <value>", Usage: "Set a filter; All resets it"},
			},
			Run: runFilterCommand,
		},
		{
			Name: "clear",
			Help: []commandHelp{
				{Command: "clear", Usage: "Reset every filter to All"},
			},
			Run: runClearCommand,
		},
		{
			Name: "back",
			Help: []commandHelp{
				{Command: "back", Usage: "Return to the previous location"},
			},
			Run: runBackCommand,
		},
		{
			Name: "forward",
			Help: []commandHelp{
				{Command: "forward", Usage: "Move to the next location"},
			},
			Run: runForwardCommand,
		},
		{
			Name:    "ref",
			Aliases: []string{"branch"},
			Help: []commandHelp{
				{Command: "ref <ref>", Usage: "Load the feed from another git ref"},
			},
			Run: runRefCommand,
		},
		{
			Name: "file",
			Help: []commandHelp{
				{Command: "file <name>", Usage: "Load another image-info file"},
			},
			Run: runFileCommand,
		},
		{
			Name:    "source",
			Aliases: []string{"src"},
			Help: []commandHelp{
				{Command: "source", Usage: "List saved sources"},
				{Command: "source <name>", Usage: "Switch to a saved source"},
				{Command: "source save <name>", Usage: "Save the current ref and file"},
				{Command: "source rm <name>", Usage: "Remove a saved source"},
			},
			Run: runSourceCommand,
		},
		{
			Name: "open",
			Help: []commandHelp{
				{Command: "open <url>", Usage: "Navigate to a viewer URL or query string"},
			},
			Run: runOpenCommand,
		},
		{
			Name:    "refresh",
			Aliases: []string{"reload"},
			Help: []commandHelp{
				{Command: "refresh", Usage: "Fetch the current feed again"},
			},
			Run: runRefreshCommand,
		},
		{
			Name:    "quit",
			Aliases: []string{"q"},
			Help: []commandHelp{
				{Command: "quit", Usage: "Quit manifestview"},
			},
			Run: runQuitCommand,
		},
	}
}

func availableCommands() []commandHelp {
	registry := commandRegistry()
	entries := make([]commandHelp, 0, len(registry)*2)
	for _, cmd := range registry {
		entries = append(entries, cmd.Help...)
	}
	return entries
}

func resolveCommand(name string) (commandDescriptor, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return commandDescriptor{}, false
	}
	for _, descriptor := range commandRegistry() {
		if descriptor.Name == needle {
			return descriptor, true
		}
		for _, alias := range descriptor.Aliases {
			if alias == needle {
				return descriptor, true
			}
		}
	}
	return commandDescriptor{}, false
}

func commandSuggestions() []string {
	registry := commandRegistry()
	out := make([]string, 0, len(registry))
	for _, descriptor := range registry {
		out = append(out, descriptor.Name)
	}
	return out
}

func matchCommands(prefix string) []string {
	candidates := commandSuggestions()
	if prefix == "" {
		return candidates
	}
	prefix = strings.ToLower(prefix)
	out := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, prefix) {
			out = append(out, candidate)
		}
	}
	return out
}

func runHelpCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	return m.openHelp()
}

func runFilterCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		m.status = "Usage: filter <dim> [value]"
		return m, nil
	}
	dim, ok := m.dimensionByName(args[0])
	if !ok {
		m.status = fmt.Sprintf("%v: %s", filter.ErrUnknownDimension, args[0])
		return m, nil
	}
	if len(args) == 1 {
		return m.openSelectFor(dim.Name)
	}
	control, _ := m.sync.Control(dim.Name)
	input := strings.Join(args[1:], " ")
	value, ok := control.Match(input)
	if !ok {
		m.status = fmt.Sprintf("no %s option %q (have %s)", dim.Name, input, strings.Join(control.Values(), ", "))
		return m, nil
	}
	cmd := m.changeControl(dim.Name, value)
	return m, cmd
}

func runClearCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	cmd := m.clearControls()
	return m, cmd
}

func runBackCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	cmd := m.historyBack()
	return m, cmd
}

func runForwardCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	cmd := m.historyForward()
	return m, cmd
}

func runRefCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	if len(args) != 1 {
		m.status = "Usage: ref <ref>"
		return m, nil
	}
	cmd := m.navigate(m.withSource(args[0], ""))
	return m, cmd
}

func runFileCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	if len(args) != 1 {
		m.status = "Usage: file <name>"
		return m, nil
	}
	cmd := m.navigate(m.withSource("", args[0]))
	return m, cmd
}

func runSourceCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		m.status = m.sourceListStatus()
		return m, nil
	}
	switch strings.ToLower(args[0]) {
	case "save", "add":
		if len(args) != 2 {
			m.status = "Usage: source save <name>"
			return m, nil
		}
		m.saveSource(args[1])
		return m, nil
	case "rm", "remove", "delete":
		if len(args) != 2 {
			m.status = "Usage: source rm <name>"
			return m, nil
		}
		m.removeSource(args[1])
		return m, nil
	}
	source, err := config.ResolveSource(m.cfg.Sources, strings.Join(args, " "))
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	cmd := m.navigate(m.withSource(source.Ref, source.File))
	if m.pendingTarget != "" {
		m.status = fmt.Sprintf("Source %s: loading %s", source.Name, m.pendingTarget)
	}
	return m, cmd
}

func runOpenCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	if len(args) != 1 {
		m.status = "Usage: open <url>"
		return m, nil
	}
	location, err := urlstate.ParseLocation(args[0])
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.feedOverride = ""
	cmd := m.navigate(location)
	return m, cmd
}

func runRefreshCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	cmd := m.refreshCurrent()
	return m, cmd
}

func runQuitCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	return m.openQuitConfirm()
}

func (m Model) sourceListStatus() string {
	if len(m.cfg.Sources) == 0 {
		return "No saved sources; use :source save <name>"
	}
	names := make([]string, 0, len(m.cfg.Sources))
	for _, source := range m.cfg.Sources {
		names = append(names, source.Name)
	}
	return "Sources: " + strings.Join(names, ", ")
}

func (m *Model) saveSource(name string) {
	current := m.currentSource()
	sources, err := config.AddSource(m.cfg.Sources, config.Source{
		Name: name,
		Ref:  current.Ref,
		File: current.File,
	})
	if err != nil {
		m.status = err.Error()
		return
	}
	if !m.persistSources(sources) {
		return
	}
	m.status = fmt.Sprintf("Saved source %s", name)
}

func (m *Model) removeSource(name string) {
	sources, removed, err := config.RemoveSource(m.cfg.Sources, name)
	if err != nil {
		m.status = err.Error()
		return
	}
	if !m.persistSources(sources) {
		return
	}
	m.status = fmt.Sprintf("Removed source %s", removed.Name)
}

func (m *Model) persistSources(sources []config.Source) bool {
	if err := config.SaveSources(m.configFs, m.configPath, sources); err != nil {
		m.log.Error(err, "save config failed", "path", m.configPath)
		m.status = fmt.Sprintf("Failed to save config: %v", err)
		return false
	}
	m.cfg.Sources = sources
	return true
}
