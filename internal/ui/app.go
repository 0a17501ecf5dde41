package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kitchenkiosk/internal/data"
	"kitchenkiosk/internal/keys"
	"kitchenkiosk/internal/overlay"
	"kitchenkiosk/internal/session"
)

// Options configure the host. Zero fields take the defaults below.
type Options struct {
	Backend             data.Backend
	KeyMap              keys.KeyMap
	RefreshInterval     time.Duration
	TimerDefaultSeconds int
	TimerDefaultName    string
	TimerSteps          []int
	AutocompleteDelay   time.Duration
}

const (
	defaultRefreshInterval   = time.Second
	defaultTimerSeconds      = 300
	defaultTimerName         = "Timer"
	defaultAutocompleteDelay = 200 * time.Millisecond
)

var defaultTimerSteps = []int{-300, -60, 30, 60, 300}

func (o Options) withDefaults() Options {
	if len(o.KeyMap.OK.Keys()) == 0 {
		o.KeyMap = keys.DefaultKeyMap()
	}
	if o.RefreshInterval <= 0 {
		o.RefreshInterval = defaultRefreshInterval
	}
	if o.TimerDefaultSeconds <= 0 {
		o.TimerDefaultSeconds = defaultTimerSeconds
	}
	if o.TimerDefaultName == "" {
		o.TimerDefaultName = defaultTimerName
	}
	if len(o.TimerSteps) == 0 {
		o.TimerSteps = defaultTimerSteps
	}
	if o.AutocompleteDelay <= 0 {
		o.AutocompleteDelay = defaultAutocompleteDelay
	}
	return o
}

// AppModel is the kiosk's host view. It owns the session, installs the key
// router and mounts a view for whichever overlay is on top of the stack.
type AppModel struct {
	Session *session.Session
	Router  *keys.Router
	Home    *HomeView

	env           *overlayEnv
	overlays      overlayViews
	uninstall     func()
	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the host and installs the router's shortcuts.
func NewAppModel(opts Options) (*AppModel, error) {
	if opts.Backend == nil {
		return nil, errors.New("ui: a data backend is required")
	}
	opts = opts.withDefaults()

	s := session.New()
	a := &AppModel{
		Session:  s,
		Router:   keys.NewRouter(opts.KeyMap, s.Actions),
		Home:     NewHomeView(opts.KeyMap),
		env:      &overlayEnv{session: s, backend: opts.Backend, opts: opts},
		overlays: newOverlayViews(),
	}
	remove, err := a.Router.Install(keys.Shortcuts{
		OnHome:       a.goHome,
		OnQuickTimer: a.openQuickTimer,
		OnShopping:   a.openShopping,
	})
	if err != nil {
		return nil, fmt.Errorf("ui: install router: %w", err)
	}
	a.uninstall = remove
	return a, nil
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

func (a *AppModel) goHome() {
	a.Session.ClearOverlays()
}

func (a *AppModel) openQuickTimer() {
	a.Session.PushOverlay(overlay.QuickTimer{})
}

func (a *AppModel) openShopping() {
	a.Session.PushOverlay(overlay.ShoppingList{})
}

// Close tears the host down: the router stops listening, the mounted
// overlay gives up its actions and the stack is emptied.
func (a *AppModel) Close() {
	if a.uninstall != nil {
		a.uninstall()
	}
	a.overlays.unmount()
	a.Session.Close()
	a.overlays.prune(a.Session.Overlays)
}

// MountedOverlay returns the view of the top overlay, if any.
func (a *AppModel) MountedOverlay() (OverlayView, bool) {
	return a.overlays.Mounted()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(loadTimersCmd(a.env.backend), refreshTick(a.env.opts.RefreshInterval))
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		a.Close()
		return a, tea.Quit
	}
	a.update(msg)
	a.reconcile()
	return a, a.env.drain()
}

func (a *AppModel) update(msg tea.Msg) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case tea.KeyMsg:
		// Keys the router does not recognize are typing.
		if !a.Router.Dispatch(msg) {
			a.env.do(a.overlays.update(msg))
		}
	case refreshTickMsg:
		a.env.do(loadTimersCmd(a.env.backend))
		a.env.do(refreshTick(a.env.opts.RefreshInterval))
	case timersLoadedMsg:
		if msg.Err != nil {
			log.Printf("ui: %v", msg.Err)
		}
		a.Home.SetTimers(msg.Timers, msg.Err)
	case confirmedMsg:
		if msg.Result != nil {
			a.update(msg.Result)
		}
		// The result may have closed overlays; the broadcast goes to whatever
		// is on top afterwards.
		a.reconcile()
		a.update(DataChangedMsg{})
	case DataChangedMsg:
		a.env.do(loadTimersCmd(a.env.backend))
		a.env.do(a.overlays.update(msg))
	case tea.BatchMsg:
		for _, c := range msg {
			a.env.do(c)
		}
	case overlayMsg:
		id := msg.MountID()
		if !a.Session.Overlays.Contains(id) {
			log.Printf("ui: dropping %T for closed overlay %d", msg, id)
			return
		}
		a.env.do(a.overlays.deliver(id, msg))
	default:
		a.env.do(a.overlays.update(msg))
	}
}

// reconcile mounts a view for the stack's top entry after any mutation.
// The old view's lease is released first, so no overlay stays registered
// once it is no longer on top.
func (a *AppModel) reconcile() {
	top, ok := a.Session.Overlays.TopEntry()
	if ok && top.ID == a.overlays.MountedID() {
		return
	}
	a.overlays.unmount()
	a.overlays.prune(a.Session.Overlays)
	if !ok {
		return
	}
	v, cached := a.overlays.views[top.ID]
	if !cached {
		v = a.newOverlayView(top)
	}
	a.overlays.mount(top.ID, v, a.Session)
	a.env.do(v.Init())
}

func (a *AppModel) newOverlayView(e overlay.Entry) OverlayView {
	switch d := e.Descriptor.(type) {
	case overlay.QuickTimer:
		return NewTimerModal(a.env, e.ID)
	case overlay.ShoppingList:
		return NewShoppingModal(a.env, e.ID)
	case overlay.Products:
		return NewProductsModal(a.env, e.ID)
	case overlay.Confirm:
		return NewConfirmModal(a.env, d)
	}
	panic(fmt.Sprintf("ui: no view for overlay %s", e.Descriptor.Kind()))
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	body := a.Home.View()
	if v, ok := a.overlays.Mounted(); ok {
		body = v.View()
	}
	footer := RenderKeyHelp(a.Router.KeyMap())
	if a.width > 0 && a.height > 0 {
		h := a.height - lipgloss.Height(footer)
		if h < 1 {
			h = 1
		}
		body = lipgloss.Place(a.width, h, lipgloss.Center, lipgloss.Center, body)
	}
	return body + "\n" + footer
}
