package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"kitchenkiosk/internal/keys"
)

// RenderKeyHelp produces the footer listing the hardware keys.
func RenderKeyHelp(km keys.KeyMap) string {
	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))

	return Styles.BoxCompact.Render(helpModel.ShortHelpView(km.ShortHelp()))
}
