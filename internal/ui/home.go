package ui

import (
	"fmt"
	"strings"

	"kitchenkiosk/internal/data"
	"kitchenkiosk/internal/keys"
	"kitchenkiosk/internal/ui/textutil"
)

const timerNameWidth = 24

// HomeView shows the running timers when no overlay is open.
type HomeView struct {
	keys   keys.KeyMap
	timers []data.Timer
	err    error
}

// NewHomeView creates an empty home view. Timers arrive via SetTimers.
func NewHomeView(km keys.KeyMap) *HomeView {
	return &HomeView{keys: km}
}

// SetTimers replaces the shown timers. A failed refresh keeps the last
// good list and shows err above it.
func (h *HomeView) SetTimers(timers []data.Timer, err error) {
	h.err = err
	if err == nil {
		h.timers = timers
	}
}

// Timers returns the timers currently shown.
func (h *HomeView) Timers() []data.Timer {
	return h.timers
}

// View renders the home screen.
func (h *HomeView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Kitchen"))
	b.WriteString("\n\n")
	if h.err != nil {
		b.WriteString(Styles.Details.Render("Timers unavailable: " + h.err.Error()))
		b.WriteString("\n\n")
	}
	if len(h.timers) == 0 {
		hint := fmt.Sprintf("No timers running. Press %s to start one.", h.keys.QuickTimer.Help().Key)
		b.WriteString(Styles.Empty.Render(hint))
		return Styles.Box.Render(b.String())
	}
	for i, t := range h.timers {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderTimer(t))
	}
	return Styles.Box.Render(b.String())
}

func renderTimer(t data.Timer) string {
	name := textutil.Fit(t.Name, timerNameWidth)
	remaining := textutil.FormatSeconds(t.RemainingSec)
	switch t.Status {
	case data.TimerRunning:
		return Styles.Normal.Render(name) + " " + Styles.Status.Render(remaining)
	case data.TimerPaused:
		return Styles.Normal.Render(name) + " " + Styles.Muted.Render(remaining+" paused")
	default:
		return Styles.Muted.Render(name + " " + remaining)
	}
}
