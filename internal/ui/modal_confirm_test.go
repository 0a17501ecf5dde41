package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"kitchenkiosk/internal/overlay"
	"kitchenkiosk/internal/session"
)

func newTestEnv() *overlayEnv {
	return &overlayEnv{session: session.New(), opts: Options{}.withDefaults()}
}

func TestConfirmModal_ConfirmRunsOnceAndPopsOneLevel(t *testing.T) {
	env := newTestEnv()
	calls := 0
	d := overlay.Confirm{
		Message: "Remove Milk?",
		OnConfirm: func() tea.Cmd {
			calls++
			return nil
		},
	}
	env.session.PushOverlay(overlay.ShoppingList{})
	env.session.PushOverlay(d)
	m := NewConfirmModal(env, d)

	a := m.Actions()
	a.OnOK()
	a.OnOK()
	a.OnCancel()

	assert.Equal(t, 1, calls)
	assert.Equal(t, []overlay.Kind{overlay.KindShoppingList}, env.session.Overlays.Kinds())
	assert.NotNil(t, env.drain(), "confirm queues its continuation")
}

func TestConfirmModal_NoAndCancelSkipOnConfirm(t *testing.T) {
	for _, tt := range []struct {
		name  string
		press func(m *ConfirmModal)
	}{
		{"no", func(m *ConfirmModal) { m.Actions().OnRight(); m.Actions().OnOK() }},
		{"cancel", func(m *ConfirmModal) { m.Actions().OnCancel() }},
		{"no via left wrap", func(m *ConfirmModal) { m.Actions().OnLeft(); m.Actions().OnOK() }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			called := false
			d := overlay.Confirm{Message: "Delete?", OnConfirm: func() tea.Cmd { called = true; return nil }}
			env.session.PushOverlay(overlay.Products{})
			env.session.PushOverlay(d)
			m := NewConfirmModal(env, d)

			tt.press(m)
			m.Actions().OnCancel()

			assert.False(t, called)
			assert.Equal(t, []overlay.Kind{overlay.KindProducts}, env.session.Overlays.Kinds())
			assert.Nil(t, env.drain())
		})
	}
}

func TestConfirmModal_NilOnConfirm(t *testing.T) {
	env := newTestEnv()
	d := overlay.Confirm{Message: "Sure?"}
	env.session.PushOverlay(d)
	m := NewConfirmModal(env, d)
	m.Actions().OnOK()
	assert.Equal(t, 0, env.session.Overlays.Len())
}

func TestConfirmModal_ViewUsesDefaultTitle(t *testing.T) {
	m := NewConfirmModal(newTestEnv(), overlay.Confirm{Message: "Delete product Salt?"})
	view := m.View()
	assert.Contains(t, view, overlay.DefaultConfirmTitle)
	assert.Contains(t, view, "Delete product Salt?")
	assert.Contains(t, view, "Yes")
	assert.Contains(t, view, "No")
}

func TestStepLabel(t *testing.T) {
	tests := map[int]string{
		-300:       "-5m",
		-60:        "-1m",
		30:         "+30s",
		90:         "+90s",
		300:        "+5m",
		timerStart: "Start",
	}
	for step, want := range tests {
		assert.Equal(t, want, stepLabel(step), "step %d", step)
	}
}
