package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"kitchenkiosk/internal/actions"
	"kitchenkiosk/internal/data"
	"kitchenkiosk/internal/overlay"
	"kitchenkiosk/internal/session"
)

// overlayEnv is what an overlay view can reach of its host. Handlers run
// synchronously inside the host's Update, so they queue their commands here
// and the host returns them once the turn is over.
type overlayEnv struct {
	session *session.Session
	backend data.Backend
	opts    Options
	pending []tea.Cmd
}

// do queues cmd for the end of the current Update.
func (e *overlayEnv) do(cmd tea.Cmd) {
	if cmd != nil {
		e.pending = append(e.pending, cmd)
	}
}

// drain returns and forgets the queued commands.
func (e *overlayEnv) drain() tea.Cmd {
	cmds := e.pending
	e.pending = nil
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// overlayViews keeps one view per open stack entry so an overlay keeps its
// state while something is stacked on it. Only the top entry's view is
// mounted: it holds the registry lease and receives keys. Async results go to
// the view of the entry that asked for them, covered or not.
type overlayViews struct {
	views     map[uint64]OverlayView
	mountedID uint64
	lease     *actions.Lease
}

func newOverlayViews() overlayViews {
	return overlayViews{views: map[uint64]OverlayView{}}
}

// Mounted returns the view on top, if any.
func (o *overlayViews) Mounted() (OverlayView, bool) {
	if o.mountedID == 0 {
		return nil, false
	}
	v, ok := o.views[o.mountedID]
	return v, ok
}

// MountedID is the stack entry ID of the mounted view, 0 when none is.
func (o *overlayViews) MountedID() uint64 {
	return o.mountedID
}

// mount makes v the mounted view for entry id and registers its actions.
func (o *overlayViews) mount(id uint64, v OverlayView, s *session.Session) {
	o.views[id] = v
	o.mountedID = id
	o.lease = s.RegisterActions(v.Actions())
}

// unmount releases the mounted view's lease. The view itself stays cached
// until its entry leaves the stack.
func (o *overlayViews) unmount() {
	o.lease.Release()
	o.lease = nil
	o.mountedID = 0
}

// prune forgets views whose entries are no longer on the stack.
func (o *overlayViews) prune(s *overlay.Stack) {
	for id := range o.views {
		if !s.Contains(id) {
			delete(o.views, id)
		}
	}
}

// update passes msg to the mounted view and keeps the view it returns.
func (o *overlayViews) update(msg tea.Msg) tea.Cmd {
	if o.mountedID == 0 {
		return nil
	}
	return o.deliver(o.mountedID, msg)
}

// deliver passes msg to the cached view of entry id, if there is one.
func (o *overlayViews) deliver(id uint64, msg tea.Msg) tea.Cmd {
	v, ok := o.views[id]
	if !ok {
		return nil
	}
	next, cmd := v.Update(msg)
	if ov, ok := next.(OverlayView); ok {
		o.views[id] = ov
	}
	return cmd
}
