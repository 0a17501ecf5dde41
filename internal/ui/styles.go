package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for focused targets, borders
	ColorDanger    = "196" // Red - for confirmations, errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorWarning   = "208" // Orange - for status lines
)

// Styles contains shared style definitions used across the home view and overlays.
var Styles = struct {
	Title        lipgloss.Style // Bold accent color - for overlay titles
	TitleWarning lipgloss.Style // Bold danger color - for confirm titles

	Box        lipgloss.Style // Overlay box with rounded border
	BoxDanger  lipgloss.Style // Confirm box
	BoxCompact lipgloss.Style // Footer and list boxes

	Focused lipgloss.Style // The focus navigator's current target
	Button  lipgloss.Style // Unfocused button
	Muted   lipgloss.Style
	Normal  lipgloss.Style
	Hint    lipgloss.Style // Help/hint text
	Status  lipgloss.Style // Running timers, info lines
	Section lipgloss.Style // Category headers
	Empty   lipgloss.Style // Empty state text (muted, italic)
	Details lipgloss.Style // Errors and warnings under a title
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Reverse(true).
		Padding(0, 1),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}

// renderTarget draws one focusable target.
func renderTarget(label string, focused bool) string {
	if focused {
		return Styles.Focused.Render(label)
	}
	return Styles.Button.Render(label)
}

// renderRow draws a list target with a focus marker.
func renderRow(label string, focused bool) string {
	if focused {
		return Styles.Focused.Render("› " + label)
	}
	return Styles.Normal.Render("  " + label)
}
