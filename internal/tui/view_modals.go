package tui

import (
	"strings"

	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

const confirmModalWidth = 56

func (m Model) renderConfirmModal() string {
	message := "Close the viewer?"
	if m.isLoading() {
		message = "A feed download is still in progress."
	}

	stay, quit := modalButtonStyle, modalDangerButtonStyle
	if m.quitFocused {
		quit = modalDangerFocusStyle
	} else {
		stay = modalButtonFocusStyle
	}
	buttons := lipglossv2.JoinHorizontal(lipglossv2.Top,
		stay.MarginRight(2).Render("Cancel"),
		quit.Render("Quit"),
	)

	body := strings.Join([]string{
		modalTitleStyle.Render("Quit manifestview?"),
		modalLabelStyle.Render(message),
		"",
		buttons,
		"",
		modalHelpStyle.Render("y quit  n/esc stay  tab switch"),
	}, "\n")
	return m.renderModalCard(body, confirmModalWidth)
}

// renderModal centers modal on a canvas layer above a dimmed base view.
func (m Model) renderModal(base, modal string) string {
	width, height := m.modalViewport(base)
	backdrop := lipglossv2.Place(width, height, lipglossv2.Left, lipglossv2.Top, modalBackdropStyle.Render(base))
	x := max(0, (width-lipglossv2.Width(modal))/2)
	y := max(0, (height-lipglossv2.Height(modal))/2)

	canvas := lipglossv2.NewCanvas(lipglossv2.NewLayer(backdrop))
	canvas.AddLayers(lipglossv2.NewLayer(modal).X(x).Y(y).Z(1))
	return canvas.Render()
}

func (m Model) renderModalCard(content string, widest int) string {
	return modalPanelStyle.Width(m.modalWidth(widest)).Render(content)
}

// modalWidth leaves a margin around the card on wide terminals and uses
// nearly the full width on narrow ones, never going below 12 columns.
func (m Model) modalWidth(widest int) int {
	screen, _ := m.modalViewport("")
	if screen <= 2 {
		return screen
	}
	width := screen - 8
	if width < 24 {
		width = screen - 2
	}
	if widest > 0 {
		width = min(width, widest)
	}
	return max(width, 12)
}

func (m Model) modalViewport(base string) (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultRenderWidth
	}
	if height <= 0 {
		height = max(24, lineCount(base))
	}
	return width, height
}
