// Package session holds the per-run state shared by the host view and the key
// router: the overlay stack and the action registry. A Session is created once
// at startup and passed explicitly to its users.
package session

import (
	"kitchenkiosk/internal/actions"
	"kitchenkiosk/internal/overlay"
)

// Session owns the single overlay stack and action registry of a kiosk run.
type Session struct {
	Overlays *overlay.Stack
	Actions  *actions.Registry
}

// New returns a session with an empty stack and no registered overlay.
func New() *Session {
	return &Session{
		Overlays: overlay.NewStack(),
		Actions:  actions.NewRegistry(),
	}
}

// PushOverlay opens d on top of the current overlays.
func (s *Session) PushOverlay(d overlay.Descriptor) {
	s.Overlays.Push(d)
}

// PopOverlay closes the top overlay and clears its key ownership.
func (s *Session) PopOverlay() {
	s.Overlays.Pop()
	s.Actions.Unregister()
}

// ClearOverlays closes every overlay at once and clears key ownership.
func (s *Session) ClearOverlays() {
	s.Overlays.Clear()
	s.Actions.Unregister()
}

// CurrentTop returns the visible overlay, if any.
func (s *Session) CurrentTop() (overlay.Descriptor, bool) {
	return s.Overlays.Top()
}

// RegisterActions makes a the current owner of the overlay keys.
func (s *Session) RegisterActions(a actions.Actions) *actions.Lease {
	return s.Actions.Register(a)
}

// UnregisterActions returns the overlay keys to the global shortcuts.
func (s *Session) UnregisterActions() {
	s.Actions.Unregister()
}

// Close tears the session down at the end of a run.
func (s *Session) Close() {
	s.ClearOverlays()
}
