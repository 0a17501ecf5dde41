// Package actions holds the single slot that decides which overlay currently
// owns the directional, confirm and cancel keys.
package actions

// Actions is the capability set an overlay installs. A nil handler means the
// overlay does not respond to that key.
type Actions struct {
	OnLeft   func()
	OnRight  func()
	OnOK     func()
	OnCancel func()
}

// Registry stores the capability set of the active overlay. Writes are
// last-writer-wins and never merged.
type Registry struct {
	current *Lease
}

// NewRegistry returns an empty registry with no owner.
func NewRegistry() *Registry {
	return &Registry{}
}

// Lease identifies one registration. Releasing it clears the registry only
// while that registration is still the current one.
type Lease struct {
	registry *Registry
	actions  Actions
}

// Register replaces the current capability set unconditionally.
func (r *Registry) Register(a Actions) *Lease {
	l := &Lease{registry: r, actions: a}
	r.current = l
	return l
}

// Unregister clears the slot back to "no owner".
func (r *Registry) Unregister() {
	r.current = nil
}

// Current returns the active capability set and whether any overlay owns it.
func (r *Registry) Current() (Actions, bool) {
	if r.current == nil {
		return Actions{}, false
	}
	return r.current.actions, true
}

// Owned reports whether some overlay is registered.
func (r *Registry) Owned() bool {
	return r.current != nil
}

// Release unregisters the lease if it is still current. Safe to call more
// than once and on a nil lease.
func (l *Lease) Release() {
	if l == nil || l.registry == nil {
		return
	}
	if l.registry.current == l {
		l.registry.current = nil
	}
	l.registry = nil
}

// Active reports whether the lease still owns the registry.
func (l *Lease) Active() bool {
	return l != nil && l.registry != nil && l.registry.current == l
}
