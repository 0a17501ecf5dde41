package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"kitchenkiosk/internal/actions"
	"kitchenkiosk/internal/data"
	"kitchenkiosk/internal/focus"
	"kitchenkiosk/internal/overlay"
)

// minQueryLen is the shortest query sent to autocomplete.
const minQueryLen = 2

const uncategorized = "Other"

type shoppingTargetKind int

const (
	targetSuggestion shoppingTargetKind = iota
	targetAddNew
	targetItem
	targetManage
)

// shoppingTarget is one focusable row of the shopping overlay.
type shoppingTarget struct {
	kind    shoppingTargetKind
	product data.Product
	item    data.ShoppingItem
	// group is the category header printed above the first item of a group.
	group string
}

func (t shoppingTarget) label(query string) string {
	switch t.kind {
	case targetSuggestion:
		if t.product.CategoryName != "" {
			return fmt.Sprintf("%s (%s)", t.product.Name, t.product.CategoryName)
		}
		return t.product.Name
	case targetAddNew:
		return fmt.Sprintf("Add new %q", strings.TrimSpace(query))
	case targetItem:
		if t.item.Quantity != "" && t.item.Quantity != "1" {
			return fmt.Sprintf("%s ×%s", t.item.Name, t.item.Quantity)
		}
		return t.item.Name
	default:
		return "Manage products"
	}
}

// shoppingMode is what the overlay's keys currently act on.
type shoppingMode int

const (
	modeBrowse   shoppingMode = iota
	modePick                  // choosing a category for a new product
	modeCategory              // typing a new category's name
	modeEdit                  // changing or removing one list item
)

// pickTarget is one row of the category picker. The zero value is
// "no category".
type pickTarget struct {
	category string
	custom   bool
}

func (p pickTarget) label() string {
	switch {
	case p.custom:
		return "New category…"
	case p.category == "":
		return "No category"
	}
	return p.category
}

type itemAction int

const (
	itemLess itemAction = iota
	itemMore
	itemRemove
)

func (a itemAction) String() string {
	switch a {
	case itemLess:
		return "−"
	case itemMore:
		return "+"
	}
	return "Remove"
}

// ShoppingModal is the shopping list overlay. Targets are the autocomplete
// suggestions, an "add new" row, the list items grouped by category and a
// link to the products overlay. Adding a new product first asks for its
// category, which may be a new one. Selecting an item offers its quantity
// and removal. Cancel in any of these modes returns to the list.
type ShoppingModal struct {
	env   *overlayEnv
	mount uint64
	mode  shoppingMode

	query       textinput.Model
	seq         int
	suggestions []data.Product
	items       []data.ShoppingItem
	categories  []data.Category
	nav         *focus.Navigator[shoppingTarget]

	pendingName string
	pickNav     *focus.Navigator[pickTarget]
	newCategory textinput.Model

	editItem data.ShoppingItem
	editNav  *focus.Navigator[itemAction]

	loading bool
	spinner spinner.Model
	status  string
	err     error
}

// Ensure ShoppingModal implements OverlayView.
var _ OverlayView = (*ShoppingModal)(nil)

// NewShoppingModal creates the shopping overlay for stack entry mount.
func NewShoppingModal(env *overlayEnv, mount uint64) *ShoppingModal {
	ti := textinput.New()
	ti.Placeholder = "Add an item…"
	ti.CharLimit = 60
	ti.Prompt = "› "
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	cat := textinput.New()
	cat.Placeholder = "Category name"
	cat.CharLimit = 40
	cat.Prompt = "› "
	cat.Cursor.SetMode(cursor.CursorStatic)
	cat.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Styles.Status

	m := &ShoppingModal{
		env:         env,
		mount:       mount,
		query:       ti,
		newCategory: cat,
		editNav:     focus.MustNew(itemLess, itemMore, itemRemove),
		spinner:     sp,
	}
	m.retarget()
	return m
}

// Picking reports whether the overlay is asking for a new product's category.
func (m *ShoppingModal) Picking() bool { return m.mode == modePick }

// NamingCategory reports whether the overlay is asking for a new category name.
func (m *ShoppingModal) NamingCategory() bool { return m.mode == modeCategory }

// Editing returns the list item being edited, if any.
func (m *ShoppingModal) Editing() (data.ShoppingItem, bool) {
	return m.editItem, m.mode == modeEdit
}

// Status is the last informational message.
func (m *ShoppingModal) Status() string { return m.status }

// Items returns the loaded shopping list.
func (m *ShoppingModal) Items() []data.ShoppingItem { return m.items }

// Actions implements OverlayView.
func (m *ShoppingModal) Actions() actions.Actions {
	return actions.Actions{
		OnLeft:   m.prev,
		OnRight:  m.next,
		OnOK:     m.activate,
		OnCancel: m.cancel,
	}
}

func (m *ShoppingModal) prev() {
	switch m.mode {
	case modeBrowse:
		m.nav.Prev()
	case modePick:
		m.pickNav.Prev()
	case modeEdit:
		m.editNav.Prev()
	}
}

func (m *ShoppingModal) next() {
	switch m.mode {
	case modeBrowse:
		m.nav.Next()
	case modePick:
		m.pickNav.Next()
	case modeEdit:
		m.editNav.Next()
	}
}

func (m *ShoppingModal) cancel() {
	switch m.mode {
	case modeBrowse:
		m.env.session.PopOverlay()
	case modeCategory:
		m.mode = modePick
		m.status = ""
	default:
		m.mode = modeBrowse
		m.pendingName = ""
	}
}

func (m *ShoppingModal) activate() {
	switch m.mode {
	case modePick:
		m.pick(m.pickNav.Current())
	case modeCategory:
		m.createCategory()
	case modeEdit:
		m.editAction(m.editNav.Current())
	default:
		m.browseAction(m.nav.Current())
	}
}

func (m *ShoppingModal) browseAction(t shoppingTarget) {
	switch t.kind {
	case targetSuggestion:
		m.add(t.product.Name, t.product.CategoryName)
	case targetAddNew:
		m.startPicking(strings.TrimSpace(m.query.Value()))
	case targetItem:
		m.editItem = t.item
		m.editNav.SetIndex(0)
		m.mode = modeEdit
	case targetManage:
		m.env.session.PushOverlay(overlay.Products{})
	}
}

func (m *ShoppingModal) editAction(a itemAction) {
	item := m.editItem
	switch a {
	case itemLess, itemMore:
		delta := 1
		if a == itemLess {
			delta = -1
		}
		q, ok := data.StepQuantity(item.Quantity, delta)
		if !ok {
			return
		}
		m.editItem.Quantity = q
		m.setQuantity(item.ID, q)
		m.env.do(updateQuantityCmd(m.env.backend, m.mount, item, q))
	case itemRemove:
		m.mode = modeBrowse
		m.env.session.PushOverlay(overlay.Confirm{
			Title:   "Remove item",
			Message: fmt.Sprintf("Remove %s from the list?", item.Name),
			OnConfirm: func() tea.Cmd {
				return deleteItemCmd(m.env.backend, m.mount, item)
			},
		})
	}
}

// setQuantity shows q for the item at once; the list reloads if the
// backend refuses it.
func (m *ShoppingModal) setQuantity(id, q string) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Quantity = q
		}
	}
	m.retarget()
}

func (m *ShoppingModal) startPicking(name string) {
	names := make([]string, 0, len(m.categories))
	for _, c := range m.categories {
		names = append(names, c.Name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	targets := make([]pickTarget, 0, len(names)+2)
	for _, n := range names {
		targets = append(targets, pickTarget{category: n})
	}
	targets = append(targets, pickTarget{}, pickTarget{custom: true})
	m.pendingName = name
	m.pickNav = focus.MustNew(targets...)
	m.mode = modePick
}

func (m *ShoppingModal) pick(p pickTarget) {
	if p.custom {
		m.newCategory.SetValue("")
		m.mode = modeCategory
		return
	}
	m.mode = modeBrowse
	m.add(m.pendingName, p.category)
}

// createCategory adds the pending product under a category that does not
// exist yet. The backend creates the category along with the item.
func (m *ShoppingModal) createCategory() {
	name := strings.TrimSpace(m.newCategory.Value())
	if name == "" {
		return
	}
	if c, ok := data.FindCategory(m.categories, name); ok {
		m.status = fmt.Sprintf("Category %s already exists", c.Name)
		return
	}
	m.mode = modeBrowse
	m.add(m.pendingName, name)
}

func (m *ShoppingModal) add(name, category string) {
	if data.ContainsItem(m.items, name, category) {
		m.status = fmt.Sprintf("%s is already on the list", name)
		return
	}
	m.status = ""
	m.err = nil
	m.env.do(addItemCmd(m.env.backend, m.mount, name, category))
}

func (m *ShoppingModal) reload() tea.Cmd {
	m.loading = true
	return tea.Batch(loadListCmd(m.env.backend, m.mount), m.spinner.Tick)
}

// Init implements View.
func (m *ShoppingModal) Init() tea.Cmd {
	return m.reload()
}

// Update implements View.
func (m *ShoppingModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.items = msg.Items
			m.categories = msg.Categories
			m.refreshEdit()
		}
		m.retarget()
	case quantityUpdatedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, m.reload()
		}
		m.setQuantity(msg.ItemID, msg.Quantity)
	case itemAddedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.status = fmt.Sprintf("Added %s", msg.Item.Name)
		m.query.SetValue("")
		m.seq++
		m.suggestions = nil
		m.retarget()
		return m, m.reload()
	case deletedMsg:
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.status = fmt.Sprintf("Removed %s", msg.What)
		}
	case debounceMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		return m, autocompleteCmd(m.env.backend, m.mount, m.seq, strings.TrimSpace(m.query.Value()))
	case suggestionsMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.suggestions = msg.Products
		m.retarget()
	case DataChangedMsg:
		return m, m.reload()
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch m.mode {
		case modeBrowse:
			return m, m.typed(msg)
		case modeCategory:
			var cmd tea.Cmd
			m.newCategory, cmd = m.newCategory.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// refreshEdit follows the edited item across a reload and leaves edit mode
// if it is gone.
func (m *ShoppingModal) refreshEdit() {
	if m.mode != modeEdit {
		return
	}
	for _, it := range m.items {
		if it.ID == m.editItem.ID {
			m.editItem = it
			return
		}
	}
	m.mode = modeBrowse
}

// typed feeds a key to the query and schedules autocomplete once it changes.
func (m *ShoppingModal) typed(msg tea.KeyMsg) tea.Cmd {
	before := m.query.Value()
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	if m.query.Value() == before {
		return cmd
	}
	m.seq++
	m.status = ""
	if len([]rune(strings.TrimSpace(m.query.Value()))) < minQueryLen {
		m.suggestions = nil
		m.retarget()
		return cmd
	}
	m.retarget()
	return tea.Batch(cmd, debounceCmd(m.env.opts.AutocompleteDelay, m.mount, m.seq))
}

// retarget rebuilds the focus targets after the list, query or suggestions
// changed, keeping the focused position where possible.
func (m *ShoppingModal) retarget() {
	q := strings.TrimSpace(m.query.Value())
	var targets []shoppingTarget
	exact := false
	for _, p := range m.suggestions {
		targets = append(targets, shoppingTarget{kind: targetSuggestion, product: p})
		if strings.EqualFold(p.Name, q) {
			exact = true
		}
	}
	if q != "" && !exact {
		targets = append(targets, shoppingTarget{kind: targetAddNew})
	}

	items := append([]data.ShoppingItem(nil), m.items...)
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	groups := data.GroupByCategory(items, func(it data.ShoppingItem) string { return it.Category }, uncategorized)
	for _, g := range groups {
		for i, it := range g.Items {
			t := shoppingTarget{kind: targetItem, item: it}
			if i == 0 {
				t.group = g.Category
			}
			targets = append(targets, t)
		}
	}
	targets = append(targets, shoppingTarget{kind: targetManage})

	idx := 0
	if m.nav != nil {
		idx = min(m.nav.Index(), len(targets)-1)
	}
	m.nav = focus.MustNew(targets...)
	m.nav.SetIndex(idx)
}

// View implements View.
func (m *ShoppingModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Shopping list"))
	if m.loading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")

	switch m.mode {
	case modePick:
		b.WriteString(Styles.Normal.Render(fmt.Sprintf("Category for %s:", m.pendingName)))
		b.WriteString("\n")
		for i, p := range m.pickNav.Items() {
			b.WriteString(renderRow(p.label(), i == m.pickNav.Index()) + "\n")
		}
		return Styles.Box.Render(strings.TrimRight(b.String(), "\n"))
	case modeCategory:
		b.WriteString(Styles.Normal.Render(fmt.Sprintf("New category for %s:", m.pendingName)))
		b.WriteString("\n" + m.newCategory.View() + "\n")
		if m.status != "" {
			b.WriteString(Styles.Details.Render(m.status) + "\n")
		}
		return Styles.Box.Render(strings.TrimRight(b.String(), "\n"))
	case modeEdit:
		b.WriteString(Styles.Normal.Render(m.editItem.Name))
		b.WriteString("\n")
		b.WriteString(Styles.Status.Render("Quantity: " + m.editItem.Quantity))
		b.WriteString("\n\n")
		for i, a := range m.editNav.Items() {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(renderTarget(a.String(), i == m.editNav.Index()))
		}
		if m.err != nil {
			b.WriteString("\n\n" + Styles.Details.Render(m.err.Error()))
		}
		return Styles.Box.Render(b.String())
	}

	b.WriteString(m.query.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(Styles.Status.Render(m.status) + "\n")
	}
	if m.err != nil {
		b.WriteString(Styles.Details.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n")

	q := m.query.Value()
	emptyList := len(m.items) == 0
	for i, t := range m.nav.Items() {
		focused := i == m.nav.Index()
		switch {
		case t.kind == targetItem && t.group != "":
			b.WriteString(Styles.Section.Render(t.group) + "\n")
		case t.kind == targetManage:
			if emptyList && !m.loading {
				b.WriteString(Styles.Empty.Render("The list is empty.") + "\n")
			}
			b.WriteString("\n")
		}
		b.WriteString(renderRow(t.label(q), focused) + "\n")
	}
	return Styles.Box.Render(strings.TrimRight(b.String(), "\n"))
}
