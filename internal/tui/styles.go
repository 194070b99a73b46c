package tui

import (
	"github.com/charmbracelet/lipgloss"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

var (
	colorPrimary   = lipgloss.Color("62")
	colorMuted     = lipgloss.Color("241")
	colorAccent    = lipgloss.Color("204")
	colorSelected  = lipgloss.Color("229")
	colorBorder    = lipgloss.Color("238")
	colorTitleText = lipgloss.Color("252")
	colorSurface2  = lipgloss.Color("236")
	colorWarning   = lipgloss.Color("214")
)

var (
	titleStyle            = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).MarginRight(2)
	statusStyle           = lipgloss.NewStyle().Foreground(colorTitleText)
	statusLoadingStyle    = lipgloss.NewStyle().Foreground(colorWarning)
	statusErrorStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	metaLabelStyle        = lipgloss.NewStyle().Foreground(colorMuted).MarginRight(1)
	metaValueStyle        = lipgloss.NewStyle().Foreground(colorTitleText).MarginRight(3)
	modeInputStyle        = lipgloss.NewStyle().Foreground(colorAccent)
	shortcutHintStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	topSectionStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
	mainSectionStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
	mainSectionTitleStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	mainSectionTitleLine  = lipgloss.NewStyle()
	emptyStyle            = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	logTitleStyle         = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	logBoxStyle           = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
	helpHeadingStyle      = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	helpItemStyle         = lipgloss.NewStyle().Foreground(colorTitleText)
	helpFooterStyle       = lipgloss.NewStyle().Foreground(colorMuted)

	controlLabelStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	controlValueStyle       = lipgloss.NewStyle().Foreground(colorTitleText).Background(colorSurface2).Padding(0, 1)
	controlActiveValueStyle = lipgloss.NewStyle().Foreground(colorSelected).Background(colorSurface2).Bold(true).Padding(0, 1)
	controlFocusValueStyle  = lipgloss.NewStyle().Foreground(colorSelected).Background(colorAccent).Bold(true).Padding(0, 1)
)

var (
	modalBorderColor    = lipglossv2.Color("62")
	modalMutedColor     = lipglossv2.Color("241")
	modalAccentColor    = lipglossv2.Color("204")
	modalSelectedColor  = lipglossv2.Color("229")
	modalBackdropColor  = lipglossv2.Color("239")
	modalSurfaceColor   = lipglossv2.Color("236")
	modalTitleTextColor = lipglossv2.Color("252")
)

var (
	modalBackdropStyle     = lipglossv2.NewStyle().Foreground(modalBackdropColor)
	modalPanelStyle        = lipglossv2.NewStyle().Border(lipglossv2.RoundedBorder()).BorderForeground(modalBorderColor).Padding(1, 2)
	modalTitleStyle        = lipglossv2.NewStyle().Foreground(modalBorderColor).Bold(true)
	modalLabelStyle        = lipglossv2.NewStyle().Foreground(modalTitleTextColor)
	modalDividerStyle      = lipglossv2.NewStyle().Foreground(modalMutedColor)
	modalHelpStyle         = lipglossv2.NewStyle().Foreground(modalMutedColor)
	modalOptionStyle       = lipglossv2.NewStyle().Foreground(modalTitleTextColor)
	modalOptionFocusStyle  = lipglossv2.NewStyle().Foreground(modalSelectedColor).Background(modalAccentColor).Bold(true)
	modalOptionMutedStyle  = lipglossv2.NewStyle().Foreground(modalMutedColor)
	modalButtonStyle       = lipglossv2.NewStyle().Foreground(modalTitleTextColor).Background(modalSurfaceColor).Padding(0, 2)
	modalButtonFocusStyle  = lipglossv2.NewStyle().Foreground(modalSelectedColor).Background(modalBorderColor).Bold(true).Padding(0, 2)
	modalDangerButtonStyle = lipglossv2.NewStyle().Foreground(modalAccentColor).Background(modalSurfaceColor).Padding(0, 2)
	modalDangerFocusStyle  = lipglossv2.NewStyle().Foreground(modalSelectedColor).Background(modalAccentColor).Bold(true).Padding(0, 2)
)
