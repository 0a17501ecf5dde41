package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"kitchenkiosk/internal/actions"
	"kitchenkiosk/internal/focus"
	"kitchenkiosk/internal/ui/textutil"
)

// timerStart marks the start button among the step targets.
const timerStart = 0

// TimerModal is the quick timer overlay: one target per step adjustment plus
// a start button as the last target.
type TimerModal struct {
	env      *overlayEnv
	mount    uint64
	nav      *focus.Navigator[int]
	seconds  int
	name     textinput.Model
	starting bool
	started  string
	err      error
}

// Ensure TimerModal implements OverlayView.
var _ OverlayView = (*TimerModal)(nil)

// NewTimerModal creates the quick timer for stack entry mount.
func NewTimerModal(env *overlayEnv, mount uint64) *TimerModal {
	targets := append(append([]int(nil), env.opts.TimerSteps...), timerStart)
	ti := textinput.New()
	ti.Placeholder = env.opts.TimerDefaultName
	ti.CharLimit = 40
	ti.Prompt = "Name: "
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	return &TimerModal{
		env:     env,
		mount:   mount,
		nav:     focus.MustNew(targets...),
		seconds: env.opts.TimerDefaultSeconds,
		name:    ti,
	}
}

// Seconds is the duration the timer would start with.
func (m *TimerModal) Seconds() int { return m.seconds }

// FocusIndex is the focused target.
func (m *TimerModal) FocusIndex() int { return m.nav.Index() }

// Starting reports whether a start request is in flight.
func (m *TimerModal) Starting() bool { return m.starting }

// Err is the last start failure, if any.
func (m *TimerModal) Err() error { return m.err }

// Actions implements OverlayView.
func (m *TimerModal) Actions() actions.Actions {
	return actions.Actions{
		OnLeft:   m.nav.Prev,
		OnRight:  m.nav.Next,
		OnOK:     m.activate,
		OnCancel: m.env.session.PopOverlay,
	}
}

func (m *TimerModal) activate() {
	step := m.nav.Current()
	if step != timerStart {
		m.seconds = max(0, m.seconds+step)
		return
	}
	m.start()
}

func (m *TimerModal) start() {
	if m.seconds <= 0 || m.starting {
		return
	}
	name := strings.TrimSpace(m.name.Value())
	if name == "" {
		name = m.env.opts.TimerDefaultName
	}
	m.starting = true
	m.started = ""
	m.err = nil
	m.env.do(createTimerCmd(m.env.backend, m.mount, m.seconds, name))
}

// Init implements View.
func (m *TimerModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *TimerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case timerCreatedMsg:
		m.starting = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		if top, ok := m.env.session.Overlays.TopEntry(); ok && top.ID == m.mount {
			m.env.session.ClearOverlays()
			return m, dataChanged
		}
		// Something was opened on top meanwhile; leave it in place.
		m.started = msg.Timer.Name
		m.name.SetValue("")
		return m, dataChanged
	case tea.KeyMsg:
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements View.
func (m *TimerModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Quick timer"))
	b.WriteString("\n\n")
	b.WriteString(Styles.Status.Render(textutil.FormatSeconds(m.seconds)))
	b.WriteString("\n\n")
	for i, step := range m.nav.Items() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(renderTarget(stepLabel(step), i == m.nav.Index()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.name.View())
	if m.starting {
		b.WriteString("\n\n" + Styles.Hint.Render("Starting…"))
	}
	if m.started != "" {
		b.WriteString("\n\n" + Styles.Status.Render("Started "+m.started))
	}
	if m.err != nil {
		b.WriteString("\n\n" + Styles.Details.Render(m.err.Error()))
	}
	return Styles.Box.Render(b.String())
}

// stepLabel renders a step as "-5m", "+30s" or "Start".
func stepLabel(step int) string {
	if step == timerStart {
		return "Start"
	}
	sign := "+"
	if step < 0 {
		sign = "-"
		step = -step
	}
	if step%60 == 0 {
		return fmt.Sprintf("%s%dm", sign, step/60)
	}
	return fmt.Sprintf("%s%ds", sign, step)
}
