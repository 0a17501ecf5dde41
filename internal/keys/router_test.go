package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchenkiosk/internal/actions"
)

// keyMsg creates a tea.KeyMsg for the given key name.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	case "f2":
		return tea.KeyMsg{Type: tea.KeyF2}
	case "f3":
		return tea.KeyMsg{Type: tea.KeyF3}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

type recorder struct {
	calls []string
}

func (r *recorder) fn(name string) func() {
	return func() { r.calls = append(r.calls, name) }
}

func (r *recorder) shortcuts() Shortcuts {
	return Shortcuts{
		OnHome:       r.fn("home"),
		OnQuickTimer: r.fn("quick-timer"),
		OnShopping:   r.fn("shopping"),
	}
}

func newInstalled(t *testing.T, rec *recorder) (*Router, *actions.Registry) {
	t.Helper()
	reg := actions.NewRegistry()
	r := NewRouter(DefaultKeyMap(), reg)
	remove, err := r.Install(rec.shortcuts())
	require.NoError(t, err)
	t.Cleanup(remove)
	return r, reg
}

func TestKeyMap_Resolve(t *testing.T) {
	km := DefaultKeyMap()
	cases := map[string]Action{
		"left":  ActionLeft,
		"right": ActionRight,
		"enter": ActionOK,
		"esc":   ActionCancel,
		"f1":    ActionHome,
		"home":  ActionHome,
		"f2":    ActionQuickTimer,
		"f3":    ActionShopping,
		"x":     ActionNone,
	}
	for k, want := range cases {
		assert.Equal(t, want, km.Resolve(keyMsg(k)), "key %q", k)
	}
}

func TestKeyMap_CustomBindingsFallBackToDefaults(t *testing.T) {
	km := NewKeyMap(Bindings{Home: []string{"h"}, Shopping: []string{"s"}})
	assert.Equal(t, ActionHome, km.Resolve(keyMsg("h")))
	assert.Equal(t, ActionShopping, km.Resolve(keyMsg("s")))
	assert.Equal(t, ActionNone, km.Resolve(keyMsg("f1")))
	assert.Equal(t, ActionLeft, km.Resolve(keyMsg("left")))
}

func TestRouter_NotInstalledIgnoresKeys(t *testing.T) {
	reg := actions.NewRegistry()
	r := NewRouter(DefaultKeyMap(), reg)
	called := false
	reg.Register(actions.Actions{OnOK: func() { called = true }})
	assert.False(t, r.Dispatch(keyMsg("enter")))
	assert.False(t, called)
}

func TestRouter_InstallTwiceFails(t *testing.T) {
	rec := &recorder{}
	r, _ := newInstalled(t, rec)
	_, err := r.Install(rec.shortcuts())
	assert.ErrorIs(t, err, ErrAlreadyInstalled)
}

func TestRouter_RemoveIsIdempotent(t *testing.T) {
	r := NewRouter(DefaultKeyMap(), actions.NewRegistry())
	remove, err := r.Install(Shortcuts{})
	require.NoError(t, err)
	remove()
	assert.False(t, r.Installed())

	again, err := r.Install(Shortcuts{})
	require.NoError(t, err)
	remove()
	assert.True(t, r.Installed(), "stale remove must not uninstall a newer installation")
	again()
	assert.False(t, r.Installed())
}

func TestRouter_UnrecognizedKeyNotConsumed(t *testing.T) {
	rec := &recorder{}
	r, reg := newInstalled(t, rec)
	reg.Register(actions.Actions{OnOK: rec.fn("ok")})
	assert.False(t, r.Dispatch(keyMsg("q")))
	assert.Empty(t, rec.calls)
}

func TestRouter_DirectionalGoesToRegistry(t *testing.T) {
	rec := &recorder{}
	r, reg := newInstalled(t, rec)
	reg.Register(actions.Actions{
		OnLeft:  rec.fn("left"),
		OnRight: rec.fn("right"),
		OnOK:    rec.fn("ok"),
	})
	for _, k := range []string{"left", "right", "enter"} {
		assert.True(t, r.Dispatch(keyMsg(k)))
	}
	assert.Equal(t, []string{"left", "right", "ok"}, rec.calls)
}

func TestRouter_AbsentHandlerIsNoopButConsumed(t *testing.T) {
	rec := &recorder{}
	r, reg := newInstalled(t, rec)
	reg.Register(actions.Actions{OnCancel: rec.fn("cancel")})
	assert.True(t, r.Dispatch(keyMsg("left")))
	assert.True(t, r.Dispatch(keyMsg("enter")))
	assert.Empty(t, rec.calls)

	reg.Unregister()
	assert.True(t, r.Dispatch(keyMsg("right")))
	assert.Empty(t, rec.calls)
}

func TestRouter_OnlyLatestRegistrationReceivesKeys(t *testing.T) {
	rec := &recorder{}
	r, reg := newInstalled(t, rec)
	reg.Register(actions.Actions{OnOK: rec.fn("A"), OnCancel: rec.fn("A-cancel")})
	reg.Register(actions.Actions{OnOK: rec.fn("B"), OnCancel: rec.fn("B-cancel")})

	r.Dispatch(keyMsg("enter"))
	r.Dispatch(keyMsg("esc"))
	assert.Equal(t, []string{"B", "B-cancel"}, rec.calls)
}

func TestRouter_CancelWithoutOwnerGoesHome(t *testing.T) {
	rec := &recorder{}
	r, _ := newInstalled(t, rec)
	assert.True(t, r.Dispatch(keyMsg("esc")))
	assert.Equal(t, []string{"home"}, rec.calls)
}

func TestRouter_CancelAfterUnregisterGoesHome(t *testing.T) {
	rec := &recorder{}
	r, reg := newInstalled(t, rec)
	reg.Register(actions.Actions{OnCancel: rec.fn("overlay-cancel")})
	reg.Unregister()

	r.Dispatch(keyMsg("esc"))
	assert.Equal(t, []string{"home"}, rec.calls)
}

func TestRouter_CancelWithOwnerLackingHandlerGoesHome(t *testing.T) {
	rec := &recorder{}
	r, reg := newInstalled(t, rec)
	reg.Register(actions.Actions{OnOK: rec.fn("ok")})
	r.Dispatch(keyMsg("esc"))
	assert.Equal(t, []string{"home"}, rec.calls)
}

func TestRouter_CancelWithHandlerDoesNotAlsoGoHome(t *testing.T) {
	rec := &recorder{}
	r, reg := newInstalled(t, rec)
	reg.Register(actions.Actions{OnCancel: rec.fn("cancel")})
	r.Dispatch(keyMsg("esc"))
	assert.Equal(t, []string{"cancel"}, rec.calls)
}

// Shortcuts fire even while an overlay owns the registry. This precedence is
// deliberate but questionable: it lets the shopping key open a second overlay
// over an active one. The test pins the current behavior.
func TestRouter_ShortcutsAreGlobal(t *testing.T) {
	rec := &recorder{}
	r, reg := newInstalled(t, rec)
	reg.Register(actions.Actions{
		OnLeft:   rec.fn("overlay-left"),
		OnCancel: rec.fn("overlay-cancel"),
	})

	assert.True(t, r.Dispatch(keyMsg("f3")))
	assert.True(t, r.Dispatch(keyMsg("f2")))
	assert.True(t, r.Dispatch(keyMsg("f1")))
	assert.Equal(t, []string{"shopping", "quick-timer", "home"}, rec.calls)
}

func TestRouter_HandlerPanicPropagates(t *testing.T) {
	rec := &recorder{}
	r, reg := newInstalled(t, rec)
	reg.Register(actions.Actions{OnOK: func() { panic("boom") }})
	assert.PanicsWithValue(t, "boom", func() { r.Dispatch(keyMsg("enter")) })
}

func TestRouter_NilShortcutIsNoop(t *testing.T) {
	reg := actions.NewRegistry()
	r := NewRouter(DefaultKeyMap(), reg)
	remove, err := r.Install(Shortcuts{})
	require.NoError(t, err)
	defer remove()
	assert.True(t, r.Dispatch(keyMsg("esc")))
	assert.True(t, r.Dispatch(keyMsg("f2")))
}
