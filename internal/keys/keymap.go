// Package keys routes hardware key presses either to the overlay that owns
// the action registry or to the application's global shortcuts.
package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is the semantic meaning of a hardware key.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionOK
	ActionCancel
	ActionHome
	ActionQuickTimer
	ActionShopping
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionOK:
		return "ok"
	case ActionCancel:
		return "cancel"
	case ActionHome:
		return "home"
	case ActionQuickTimer:
		return "quick-timer"
	case ActionShopping:
		return "shopping"
	default:
		return "none"
	}
}

// IsShortcut reports whether a is one of the global application shortcuts.
func (a Action) IsShortcut() bool {
	return a == ActionHome || a == ActionQuickTimer || a == ActionShopping
}

// Bindings lists the key names (tea.KeyMsg.String() format) per action.
type Bindings struct {
	Left       []string `mapstructure:"left"`
	Right      []string `mapstructure:"right"`
	OK         []string `mapstructure:"ok"`
	Cancel     []string `mapstructure:"cancel"`
	Home       []string `mapstructure:"home"`
	QuickTimer []string `mapstructure:"quick_timer"`
	Shopping   []string `mapstructure:"shopping"`
}

// DefaultBindings returns the bindings for the stock key pad. Shortcuts sit
// on function keys so they never collide with text typed into an overlay.
func DefaultBindings() Bindings {
	return Bindings{
		Left:       []string{"left"},
		Right:      []string{"right"},
		OK:         []string{"enter"},
		Cancel:     []string{"esc"},
		Home:       []string{"f1", "home"},
		QuickTimer: []string{"f2"},
		Shopping:   []string{"f3"},
	}
}

// KeyMap resolves key messages to actions.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	OK         key.Binding
	Cancel     key.Binding
	Home       key.Binding
	QuickTimer key.Binding
	Shopping   key.Binding
}

// Ensure KeyMap can render with bubbles/help.
var _ interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
} = KeyMap{}

// NewKeyMap builds a KeyMap. Empty entries in b fall back to the defaults.
func NewKeyMap(b Bindings) KeyMap {
	d := DefaultBindings()
	pick := func(v, def []string) []string {
		if len(v) == 0 {
			return def
		}
		return v
	}
	return KeyMap{
		Left:       binding(pick(b.Left, d.Left), "prev"),
		Right:      binding(pick(b.Right, d.Right), "next"),
		OK:         binding(pick(b.OK, d.OK), "select"),
		Cancel:     binding(pick(b.Cancel, d.Cancel), "back"),
		Home:       binding(pick(b.Home, d.Home), "home"),
		QuickTimer: binding(pick(b.QuickTimer, d.QuickTimer), "timer"),
		Shopping:   binding(pick(b.Shopping, d.Shopping), "shopping"),
	}
}

// DefaultKeyMap is NewKeyMap(DefaultBindings()).
func DefaultKeyMap() KeyMap {
	return NewKeyMap(DefaultBindings())
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], desc),
	)
}

// Resolve returns the action bound to msg, or ActionNone.
// Shortcuts are checked first so a key bound twice acts as the shortcut.
func (km KeyMap) Resolve(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, km.Home):
		return ActionHome
	case key.Matches(msg, km.QuickTimer):
		return ActionQuickTimer
	case key.Matches(msg, km.Shopping):
		return ActionShopping
	case key.Matches(msg, km.Left):
		return ActionLeft
	case key.Matches(msg, km.Right):
		return ActionRight
	case key.Matches(msg, km.OK):
		return ActionOK
	case key.Matches(msg, km.Cancel):
		return ActionCancel
	}
	return ActionNone
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.OK, km.Cancel, km.Home, km.QuickTimer, km.Shopping}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.OK, km.Cancel},
		{km.Home, km.QuickTimer, km.Shopping},
	}
}

// Binding returns the key.Binding for a.
func (km KeyMap) Binding(a Action) (key.Binding, bool) {
	switch a {
	case ActionLeft:
		return km.Left, true
	case ActionRight:
		return km.Right, true
	case ActionOK:
		return km.OK, true
	case ActionCancel:
		return km.Cancel, true
	case ActionHome:
		return km.Home, true
	case ActionQuickTimer:
		return km.QuickTimer, true
	case ActionShopping:
		return km.Shopping, true
	}
	return key.Binding{}, false
}
