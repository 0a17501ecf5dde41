package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"kitchenkiosk/internal/actions"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// OverlayView is the view mounted for one overlay stack entry.
// Actions returns the hardware key handlers the view owns while it is on top.
// The handlers are bound to the live view, so they always see its current
// focus and never need re-registering.
// Init runs on every mount, including when the view is uncovered again.
type OverlayView interface {
	View
	Actions() actions.Actions
}
