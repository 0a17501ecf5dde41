package keys

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"kitchenkiosk/internal/actions"
)

// ErrAlreadyInstalled is returned by Install when the router is already live.
var ErrAlreadyInstalled = errors.New("keys: router already installed")

// Shortcuts are the application-level handlers for the named shortcut keys.
type Shortcuts struct {
	OnHome       func()
	OnQuickTimer func()
	OnShopping   func()
}

// Router is the single hardware key listener. It is a dispatch table, not a
// fault boundary: a panicking handler is not recovered.
type Router struct {
	keys      KeyMap
	registry  *actions.Registry
	shortcuts *Shortcuts
}

// NewRouter creates a router reading the current owner from registry.
func NewRouter(km KeyMap, registry *actions.Registry) *Router {
	return &Router{keys: km, registry: registry}
}

// KeyMap returns the router's key map.
func (r *Router) KeyMap() KeyMap {
	return r.keys
}

// Install activates the router with the given shortcuts. The returned
// function removes it again and may be called more than once.
func (r *Router) Install(s Shortcuts) (remove func(), err error) {
	if r.shortcuts != nil {
		return nil, ErrAlreadyInstalled
	}
	installed := &s
	r.shortcuts = installed
	return func() {
		if r.shortcuts == installed {
			r.shortcuts = nil
		}
	}, nil
}

// Installed reports whether the router is listening.
func (r *Router) Installed() bool {
	return r.shortcuts != nil
}

// Dispatch routes one key event. It returns true when the key was recognized,
// meaning default handling (forwarding to text inputs) must be suppressed.
func (r *Router) Dispatch(msg tea.KeyMsg) bool {
	if r.shortcuts == nil {
		return false
	}
	action := r.keys.Resolve(msg)
	if action == ActionNone {
		return false
	}
	r.dispatch(action)
	return true
}

func (r *Router) dispatch(action Action) {
	s := r.shortcuts
	// Shortcuts are global: they fire whatever overlay owns the registry.
	switch action {
	case ActionHome:
		call(s.OnHome)
		return
	case ActionQuickTimer:
		call(s.OnQuickTimer)
		return
	case ActionShopping:
		call(s.OnShopping)
		return
	}

	oa, _ := r.registry.Current()
	switch action {
	case ActionLeft:
		call(oa.OnLeft)
	case ActionRight:
		call(oa.OnRight)
	case ActionOK:
		call(oa.OnOK)
	case ActionCancel:
		if oa.OnCancel != nil {
			oa.OnCancel()
			return
		}
		call(s.OnHome)
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
