package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
	"github.com/spf13/afero"

	"github.com/scottbass3/manifestview/internal/feed"
	"github.com/scottbass3/manifestview/internal/filter"
	"github.com/scottbass3/manifestview/internal/urlstate"
)

func NewModel(opts Options) Model {
	filterInput := textinput.New()
	filterInput.Prompt = "/ "
	filterInput.Placeholder = "filter"
	filterInput.CharLimit = 64
	filterInput.Blur()

	commandInput := textinput.New()
	commandInput.Prompt = ":"
	commandInput.Placeholder = "filter <dim> <value> | ref <ref> | source <name>"
	commandInput.CharLimit = 256
	commandInput.Blur()

	tbl := table.New()
	tbl.SetStyles(tableStyles())
	tbl.SetHeight(defaultTableHeight)
	tbl.Focus()

	dims := opts.Dimensions
	if len(dims) == 0 {
		dims = filter.DefaultDimensions()
	}
	defaults := opts.Defaults
	if defaults == (feed.Source{}) {
		defaults = feed.DefaultSource()
	}
	configFs := opts.ConfigFs
	if configFs == nil {
		configFs = afero.NewOsFs()
	}
	markdownStyle := opts.MarkdownStyle
	if markdownStyle == "" {
		markdownStyle = "dark"
	}
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	m := Model{
		status:        "Loading feed...",
		focus:         FocusImages,
		fetcher:       opts.Fetcher,
		renderer:      opts.Renderer,
		defaults:      defaults,
		feedOverride:  opts.FeedOverride,
		cfg:           opts.Config,
		configPath:    opts.ConfigPath,
		configFs:      configFs,
		markdownStyle: markdownStyle,
		log:           log,
		sync:          urlstate.New(opts.Location, dims, nil),
		controlState:  controlState{controlFocus: noControlFocus},
		filterInput:   filterInput,
		commandState:  commandState{commandInput: commandInput},
		table:         tbl,
		debug:         opts.Debug,
		logCh:         opts.LogCh,
		logMax:        maxLogLines,
	}
	// Init cannot mutate the model, so the first fetch is recorded as pending here.
	if m.fetcher != nil {
		target := m.feedTarget()
		m.pendingTarget = target
		m.status = "Loading " + target
		m.startLoading()
	}
	m.syncTable()
	return m
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.pendingTarget != "" {
		cmds = append(cmds, fetchFeedCmd(m.fetcher, m.pendingTarget))
	}
	if m.logCh != nil {
		cmds = append(cmds, listenLogs(m.logCh))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeyMsg(msg)
	case tea.MouseMsg:
		return m.updateMouseMsg(msg)
	case tea.WindowSizeMsg:
		return m.updateWindowSizeMsg(msg)
	case feedMsg:
		return m.updateFeedMsg(msg)
	case logMsg:
		return m.updateLogMsg(msg)
	}
	return m, nil
}

func (m Model) View() string {
	base := m.renderApp()
	switch {
	case m.isConfirmModalActive():
		return m.renderModal(base, m.renderConfirmModal())
	case m.selectActive:
		return m.renderModal(base, m.renderSelectModal())
	default:
		return base
	}
}

// Location returns the current viewer URL.
func (m Model) Location() urlstate.Location {
	return m.sync.Location()
}
