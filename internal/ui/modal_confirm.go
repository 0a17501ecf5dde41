package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"kitchenkiosk/internal/actions"
	"kitchenkiosk/internal/focus"
	"kitchenkiosk/internal/overlay"
)

type confirmChoice int

const (
	choiceYes confirmChoice = iota
	choiceNo
)

func (c confirmChoice) String() string {
	if c == choiceYes {
		return "Yes"
	}
	return "No"
}

// ConfirmModal asks a yes/no question. Yes runs the descriptor's OnConfirm
// and closes one level; No or cancel just closes one level. Either way it
// answers at most once.
type ConfirmModal struct {
	env      *overlayEnv
	desc     overlay.Confirm
	nav      *focus.Navigator[confirmChoice]
	answered bool
}

// Ensure ConfirmModal implements OverlayView.
var _ OverlayView = (*ConfirmModal)(nil)

// NewConfirmModal creates the view for a Confirm descriptor.
func NewConfirmModal(env *overlayEnv, d overlay.Confirm) *ConfirmModal {
	return &ConfirmModal{
		env:  env,
		desc: d,
		nav:  focus.MustNew(choiceYes, choiceNo),
	}
}

// Actions implements OverlayView.
func (m *ConfirmModal) Actions() actions.Actions {
	return actions.Actions{
		OnLeft:   m.nav.Prev,
		OnRight:  m.nav.Next,
		OnOK:     m.choose,
		OnCancel: m.cancel,
	}
}

func (m *ConfirmModal) choose() {
	if m.nav.Current() == choiceYes {
		m.confirm()
		return
	}
	m.cancel()
}

func (m *ConfirmModal) confirm() {
	if m.answered {
		return
	}
	m.answered = true
	var cmd tea.Cmd
	if m.desc.OnConfirm != nil {
		cmd = m.desc.OnConfirm()
	}
	m.env.session.PopOverlay()
	m.env.do(confirmedCmd(cmd))
}

func (m *ConfirmModal) cancel() {
	if m.answered {
		return
	}
	m.answered = true
	m.env.session.PopOverlay()
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(tea.Msg) (View, tea.Cmd) {
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.TitleWarning.Render(m.desc.DisplayTitle()))
	b.WriteString("\n\n")
	b.WriteString(Styles.Normal.Render(m.desc.Message))
	b.WriteString("\n\n")
	for i, c := range m.nav.Items() {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(renderTarget(c.String(), i == m.nav.Index()))
	}
	return Styles.BoxDanger.Render(b.String())
}
