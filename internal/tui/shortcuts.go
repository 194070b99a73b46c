package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type shortcutAction int

const (
	shortcutOpenHelp shortcutAction = iota
	shortcutQuit
	shortcutOpenCommand
	shortcutOpenFilter
	shortcutRefresh
	shortcutBack
	shortcutCopyReference
	shortcutOpenDetail
	shortcutCloseDetail

	shortcutOpenPlatforms
	shortcutOpenLayers

	shortcutNextControl
	shortcutPrevControl
	shortcutOpenSelect
	shortcutPrevOption
	shortcutNextOption
	shortcutLeaveControls
	shortcutClearControls
	shortcutHistoryBack
	shortcutHistoryForward

	shortcutSelectApply
	shortcutSelectCancel

	shortcutTypeCommand
	shortcutCommandAutocomplete
	shortcutCommandPrevSuggestion
	shortcutCommandNextSuggestion
	shortcutCommandCycleSuggestions
	shortcutCommandRun
	shortcutCommandCancel

	shortcutTypeFilter
	shortcutApplyFilter
	shortcutClearFilter

	shortcutCloseHelp

	shortcutMoveUp
	shortcutMoveDown
	shortcutMovePageUp
	shortcutMovePageDown
	shortcutMoveHalfUp
	shortcutMoveHalfDown
	shortcutMoveTop
	shortcutMoveBottom
)

type shortcutDefinition struct {
	Keys        []string
	HelpKeys    string
	HintKeys    string
	Description string
	HintLabel   string
}

var shortcutDefinitions = map[shortcutAction]shortcutDefinition{
	shortcutOpenHelp: {
		Keys:        []string{"?", "f1"},
		HelpKeys:    "?/F1",
		HintKeys:    "?",
		Description: "Open help",
		HintLabel:   "help",
	},
	shortcutQuit: {
		Keys:        []string{"q", "ctrl+c"},
		HelpKeys:    "q/Ctrl+C",
		HintKeys:    "q",
		Description: "Quit",
		HintLabel:   "quit",
	},
	shortcutOpenCommand: {
		Keys:        []string{":"},
		HelpKeys:    ":",
		HintKeys:    ":",
		Description: "Open command input",
		HintLabel:   "command",
	},
	shortcutOpenFilter: {
		Keys:        []string{"/"},
		HelpKeys:    "/",
		HintKeys:    "/",
		Description: "Filter current list",
		HintLabel:   "search",
	},
	shortcutRefresh: {
		Keys:        []string{"r"},
		HelpKeys:    "r",
		HintKeys:    "r",
		Description: "Reload the feed",
		HintLabel:   "reload",
	},
	shortcutBack: {
		Keys:        []string{"esc"},
		HelpKeys:    "Esc",
		HintKeys:    "esc",
		Description: "Go back one level",
		HintLabel:   "back",
	},
	shortcutCopyReference: {
		Keys:        []string{"c"},
		HelpKeys:    "c",
		HintKeys:    "c",
		Description: "Copy selected reference",
		HintLabel:   "copy",
	},
	shortcutOpenDetail: {
		Keys:        []string{"i"},
		HelpKeys:    "i",
		HintKeys:    "i",
		Description: "Show image details",
		HintLabel:   "details",
	},
	shortcutCloseDetail: {
		Keys:        []string{"esc", "i", "q"},
		HelpKeys:    "Esc/i/q",
		HintKeys:    "esc",
		Description: "Close details",
		HintLabel:   "close",
	},
	shortcutOpenPlatforms: {
		Keys:        []string{"enter"},
		HelpKeys:    "Enter",
		HintKeys:    "enter",
		Description: "Open selected image platforms",
		HintLabel:   "open",
	},
	shortcutOpenLayers: {
		Keys:        []string{"enter"},
		HelpKeys:    "Enter",
		HintKeys:    "enter",
		Description: "Open selected platform layers",
		HintLabel:   "layers",
	},
	shortcutNextControl: {
		Keys:        []string{"tab"},
		HelpKeys:    "Tab",
		HintKeys:    "tab",
		Description: "Focus next filter control",
		HintLabel:   "filters",
	},
	shortcutPrevControl: {
		Keys:        []string{"shift+tab"},
		HelpKeys:    "Shift+Tab",
		Description: "Focus previous filter control",
	},
	shortcutOpenSelect: {
		Keys:        []string{"enter"},
		HelpKeys:    "Enter",
		HintKeys:    "enter",
		Description: "Choose a value for the focused filter",
		HintLabel:   "choose",
	},
	shortcutPrevOption: {
		Keys:        []string{"left", "h"},
		HelpKeys:    "Left/h",
		Description: "Previous filter value",
	},
	shortcutNextOption: {
		Keys:        []string{"right", "l"},
		HelpKeys:    "Right/l",
		HintKeys:    "left/right",
		Description: "Next filter value",
		HintLabel:   "step",
	},
	shortcutLeaveControls: {
		Keys:        []string{"esc"},
		HelpKeys:    "Esc",
		HintKeys:    "esc",
		Description: "Return to the table",
		HintLabel:   "table",
	},
	shortcutClearControls: {
		Keys:        []string{"x"},
		HelpKeys:    "x",
		HintKeys:    "x",
		Description: "Clear all filters",
		HintLabel:   "clear",
	},
	shortcutHistoryBack: {
		Keys:        []string{"["},
		HelpKeys:    "[",
		HintKeys:    "[",
		Description: "Previous location",
		HintLabel:   "prev",
	},
	shortcutHistoryForward: {
		Keys:        []string{"]"},
		HelpKeys:    "]",
		HintKeys:    "]",
		Description: "Next location",
		HintLabel:   "next",
	},
	shortcutSelectApply: {
		Keys:        []string{"enter"},
		HelpKeys:    "Enter",
		HintKeys:    "enter",
		Description: "Apply selected value",
		HintLabel:   "apply",
	},
	shortcutSelectCancel: {
		Keys:        []string{"esc"},
		HelpKeys:    "Esc",
		HintKeys:    "esc",
		Description: "Close without changes",
		HintLabel:   "cancel",
	},
	shortcutTypeCommand: {
		HelpKeys:    "Type",
		HintKeys:    "type",
		Description: "Set command text",
		HintLabel:   "command",
	},
	shortcutCommandAutocomplete: {
		Keys:        []string{"tab"},
		HelpKeys:    "Tab",
		HintKeys:    "tab",
		Description: "Autocomplete command",
		HintLabel:   "complete",
	},
	shortcutCommandPrevSuggestion: {
		Keys: []string{"up"},
	},
	shortcutCommandNextSuggestion: {
		Keys: []string{"down"},
	},
	shortcutCommandCycleSuggestions: {
		HelpKeys:    "Up/Down",
		HintKeys:    "up/down",
		Description: "Cycle command suggestions",
		HintLabel:   "cycle",
	},
	shortcutCommandRun: {
		Keys:        []string{"enter"},
		HelpKeys:    "Enter",
		HintKeys:    "enter",
		Description: "Run command",
		HintLabel:   "run",
	},
	shortcutCommandCancel: {
		Keys:        []string{"esc"},
		HelpKeys:    "Esc",
		HintKeys:    "esc",
		Description: "Close command input",
		HintLabel:   "cancel",
	},
	shortcutTypeFilter: {
		HelpKeys:    "Type",
		HintKeys:    "type",
		Description: "Set filter text",
		HintLabel:   "text",
	},
	shortcutApplyFilter: {
		Keys:        []string{"enter"},
		HelpKeys:    "Enter",
		HintKeys:    "enter",
		Description: "Apply and close filter input",
		HintLabel:   "apply",
	},
	shortcutClearFilter: {
		Keys:        []string{"esc"},
		HelpKeys:    "Esc",
		HintKeys:    "esc",
		Description: "Clear filter",
		HintLabel:   "clear",
	},
	shortcutCloseHelp: {
		Keys:        []string{"esc", "?", "f1", "enter"},
		HelpKeys:    "Esc/?/F1/Enter",
		HintKeys:    "esc/?",
		Description: "Close help",
		HintLabel:   "close",
	},
	shortcutMoveUp: {
		Keys:        []string{"up", "k"},
		HelpKeys:    "Up/k",
		Description: "Move selection up",
	},
	shortcutMoveDown: {
		Keys:        []string{"down", "j"},
		HelpKeys:    "Down/j",
		Description: "Move selection down",
	},
	shortcutMovePageUp: {
		Keys:        []string{"pgup", "b"},
		HelpKeys:    "PgUp/b",
		Description: "Move one page up",
	},
	shortcutMovePageDown: {
		Keys:        []string{"pgdown", "f", " "},
		HelpKeys:    "PgDn/f/Space",
		Description: "Move one page down",
	},
	shortcutMoveHalfUp: {
		Keys:        []string{"ctrl+u", "u"},
		HelpKeys:    "Ctrl+U/u",
		Description: "Move half page up",
	},
	shortcutMoveHalfDown: {
		Keys:        []string{"ctrl+d", "d"},
		HelpKeys:    "Ctrl+D/d",
		Description: "Move half page down",
	},
	shortcutMoveTop: {
		Keys:        []string{"home", "g"},
		HelpKeys:    "Home/g",
		Description: "Jump to top",
	},
	shortcutMoveBottom: {
		Keys:        []string{"end", "G"},
		HelpKeys:    "End/G",
		Description: "Jump to bottom",
	},
}

type shortcutPage int

const (
	shortcutPageHelp shortcutPage = iota
	shortcutPageCommandInput
	shortcutPageFilterInput
	shortcutPageSelect
	shortcutPageDetail
	shortcutPageControls
	shortcutPageImages
	shortcutPagePlatforms
	shortcutPageLayers
)

var listHelpActions = []shortcutAction{
	shortcutOpenHelp,
	shortcutOpenCommand,
	shortcutQuit,
	shortcutOpenFilter,
	shortcutNextControl,
	shortcutPrevControl,
	shortcutClearControls,
	shortcutHistoryBack,
	shortcutHistoryForward,
	shortcutMoveUp,
	shortcutMoveDown,
	shortcutMovePageUp,
	shortcutMovePageDown,
	shortcutMoveHalfUp,
	shortcutMoveHalfDown,
	shortcutMoveTop,
	shortcutMoveBottom,
	shortcutRefresh,
}

var listHintActions = []shortcutAction{
	shortcutOpenHelp,
	shortcutOpenCommand,
	shortcutNextControl,
	shortcutOpenFilter,
	shortcutClearControls,
	shortcutQuit,
}

func isShortcut(msg tea.KeyMsg, action shortcutAction) bool {
	return slices.Contains(shortcutDefinitions[action].Keys, msg.String())
}

func (m Model) shortcutPage(includeHelpOverlay bool) shortcutPage {
	if includeHelpOverlay && m.helpActive {
		return shortcutPageHelp
	}
	if m.commandActive {
		return shortcutPageCommandInput
	}
	if m.filterActive {
		return shortcutPageFilterInput
	}
	if m.selectActive {
		return shortcutPageSelect
	}
	if m.detailActive {
		return shortcutPageDetail
	}
	if m.controlFocused() {
		return shortcutPageControls
	}
	switch m.focus {
	case FocusPlatforms:
		return shortcutPagePlatforms
	case FocusLayers:
		return shortcutPageLayers
	default:
		return shortcutPageImages
	}
}

func (m Model) shortcutPageTitle(includeHelpOverlay bool) string {
	switch m.shortcutPage(includeHelpOverlay) {
	case shortcutPageHelp:
		return "Help"
	case shortcutPageCommandInput:
		return "Command Input"
	case shortcutPageFilterInput:
		return "Filter Input"
	case shortcutPageSelect:
		return "Select Value"
	case shortcutPageDetail:
		return "Details"
	case shortcutPageControls:
		return "Filters"
	default:
		return focusLabel(m.focus)
	}
}

func (m Model) currentPageHelpEntries() []helpEntry {
	return helpEntriesForActions(m.helpActionsForPage(m.shortcutPage(false)))
}

func (m Model) shortcutHintLine() string {
	page := m.shortcutPage(true)
	return hintLineForActions(m.hintPrefixForPage(page), m.hintActionsForPage(page))
}

func (m Model) hintPrefixForPage(page shortcutPage) string {
	switch page {
	case shortcutPageHelp:
		return "Help"
	case shortcutPageCommandInput:
		return "Command"
	case shortcutPageFilterInput:
		return "Filter"
	case shortcutPageSelect:
		return "Select"
	case shortcutPageDetail:
		return "Details"
	case shortcutPageControls:
		return "Filters"
	default:
		return "Shortcuts"
	}
}

func (m Model) helpActionsForPage(page shortcutPage) []shortcutAction {
	switch page {
	case shortcutPageCommandInput:
		return []shortcutAction{
			shortcutTypeCommand,
			shortcutCommandAutocomplete,
			shortcutCommandCycleSuggestions,
			shortcutCommandRun,
			shortcutCommandCancel,
			shortcutQuit,
		}
	case shortcutPageFilterInput:
		return []shortcutAction{
			shortcutTypeFilter,
			shortcutApplyFilter,
			shortcutClearFilter,
			shortcutOpenCommand,
		}
	case shortcutPageSelect:
		return []shortcutAction{
			shortcutMoveUp,
			shortcutMoveDown,
			shortcutSelectApply,
			shortcutSelectCancel,
		}
	case shortcutPageDetail:
		return []shortcutAction{
			shortcutMoveUp,
			shortcutMoveDown,
			shortcutCloseDetail,
		}
	case shortcutPageControls:
		return []shortcutAction{
			shortcutNextControl,
			shortcutPrevControl,
			shortcutOpenSelect,
			shortcutPrevOption,
			shortcutNextOption,
			shortcutClearControls,
			shortcutHistoryBack,
			shortcutHistoryForward,
			shortcutLeaveControls,
			shortcutQuit,
		}
	case shortcutPageImages:
		actions := cloneActions(listHelpActions)
		return append(actions, shortcutOpenPlatforms, shortcutOpenDetail, shortcutCopyReference)
	case shortcutPagePlatforms:
		actions := cloneActions(listHelpActions)
		if m.renderer.IncludeLayers {
			actions = append(actions, shortcutOpenLayers)
		}
		return append(actions, shortcutOpenDetail, shortcutCopyReference, shortcutBack)
	case shortcutPageLayers:
		actions := cloneActions(listHelpActions)
		return append(actions, shortcutCopyReference, shortcutBack)
	default:
		return []shortcutAction{shortcutCloseHelp, shortcutQuit}
	}
}

func (m Model) hintActionsForPage(page shortcutPage) []shortcutAction {
	switch page {
	case shortcutPageHelp:
		return []shortcutAction{shortcutCloseHelp, shortcutQuit}
	case shortcutPageCommandInput:
		return []shortcutAction{
			shortcutCommandAutocomplete,
			shortcutCommandCycleSuggestions,
			shortcutCommandRun,
			shortcutCommandCancel,
			shortcutQuit,
		}
	case shortcutPageFilterInput:
		return []shortcutAction{
			shortcutTypeFilter,
			shortcutApplyFilter,
			shortcutClearFilter,
			shortcutOpenCommand,
		}
	case shortcutPageSelect:
		return []shortcutAction{shortcutSelectApply, shortcutSelectCancel}
	case shortcutPageDetail:
		return []shortcutAction{shortcutCloseDetail}
	case shortcutPageControls:
		return []shortcutAction{
			shortcutNextControl,
			shortcutOpenSelect,
			shortcutNextOption,
			shortcutClearControls,
			shortcutLeaveControls,
		}
	case shortcutPageImages:
		actions := cloneActions(listHintActions)
		return append(actions, shortcutOpenPlatforms, shortcutOpenDetail, shortcutCopyReference)
	case shortcutPagePlatforms:
		actions := cloneActions(listHintActions)
		if m.renderer.IncludeLayers {
			actions = append(actions, shortcutOpenLayers)
		}
		return append(actions, shortcutCopyReference, shortcutBack)
	case shortcutPageLayers:
		actions := cloneActions(listHintActions)
		return append(actions, shortcutCopyReference, shortcutBack)
	default:
		return []shortcutAction{shortcutOpenHelp, shortcutQuit}
	}
}

func helpEntriesForActions(actions []shortcutAction) []helpEntry {
	entries := make([]helpEntry, 0, len(actions))
	for _, action := range actions {
		def, ok := shortcutDefinitions[action]
		if !ok || def.HelpKeys == "" || def.Description == "" {
			continue
		}
		entries = append(entries, helpEntry{Keys: def.HelpKeys, Action: def.Description})
	}
	return entries
}

func hintLineForActions(prefix string, actions []shortcutAction) string {
	parts := make([]string, 0, len(actions))
	for _, action := range actions {
		def, ok := shortcutDefinitions[action]
		if !ok || def.HintLabel == "" {
			continue
		}
		keys := def.HintKeys
		if keys == "" {
			keys = def.HelpKeys
		}
		if keys == "" {
			continue
		}
		parts = append(parts, keys+" "+def.HintLabel)
	}
	if len(parts) == 0 {
		return prefix
	}
	if prefix == "" {
		return strings.Join(parts, "   ")
	}
	return prefix + ": " + strings.Join(parts, "   ")
}

func cloneActions(actions []shortcutAction) []shortcutAction {
	if len(actions) == 0 {
		return nil
	}
	out := make([]shortcutAction, len(actions))
	copy(out, actions)
	return out
}
