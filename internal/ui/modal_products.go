package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"kitchenkiosk/internal/actions"
	"kitchenkiosk/internal/data"
	"kitchenkiosk/internal/focus"
	"kitchenkiosk/internal/overlay"
)

// productRow is one product target with its group header, if it starts one.
type productRow struct {
	product data.Product
	group   string
}

// ProductsModal lists the product catalog by category. Selecting a product
// asks to delete it.
type ProductsModal struct {
	env   *overlayEnv
	mount uint64

	nav *focus.Navigator[productRow] // nil while the catalog is empty

	loading bool
	spinner spinner.Model
	status  string
	err     error
}

// Ensure ProductsModal implements OverlayView.
var _ OverlayView = (*ProductsModal)(nil)

// NewProductsModal creates the products overlay for stack entry mount.
func NewProductsModal(env *overlayEnv, mount uint64) *ProductsModal {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Styles.Status
	return &ProductsModal{env: env, mount: mount, spinner: sp}
}

// Products returns the loaded catalog in display order.
func (m *ProductsModal) Products() []data.Product {
	if m.nav == nil {
		return nil
	}
	rows := m.nav.Items()
	out := make([]data.Product, len(rows))
	for i, r := range rows {
		out[i] = r.product
	}
	return out
}

// Actions implements OverlayView.
func (m *ProductsModal) Actions() actions.Actions {
	return actions.Actions{
		OnLeft:   m.prev,
		OnRight:  m.next,
		OnOK:     m.activate,
		OnCancel: m.env.session.PopOverlay,
	}
}

func (m *ProductsModal) prev() {
	if m.nav != nil {
		m.nav.Prev()
	}
}

func (m *ProductsModal) next() {
	if m.nav != nil {
		m.nav.Next()
	}
}

func (m *ProductsModal) activate() {
	if m.nav == nil {
		return
	}
	p := m.nav.Current().product
	m.env.session.PushOverlay(overlay.Confirm{
		Title:   "Delete product",
		Message: fmt.Sprintf("Delete product %s?", p.Name),
		OnConfirm: func() tea.Cmd {
			return deleteProductCmd(m.env.backend, m.mount, p)
		},
	})
}

func (m *ProductsModal) reload() tea.Cmd {
	m.loading = true
	return tea.Batch(loadProductsCmd(m.env.backend, m.mount), m.spinner.Tick)
}

// Init implements View.
func (m *ProductsModal) Init() tea.Cmd {
	return m.reload()
}

// Update implements View.
func (m *ProductsModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.setProducts(msg.Products)
		}
	case deletedMsg:
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.status = fmt.Sprintf("Deleted %s", msg.What)
		}
	case DataChangedMsg:
		return m, m.reload()
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ProductsModal) setProducts(products []data.Product) {
	sorted := append([]data.Product(nil), products...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})
	var rows []productRow
	for _, g := range data.GroupByCategory(sorted, func(p data.Product) string { return p.CategoryName }, uncategorized) {
		for i, p := range g.Items {
			r := productRow{product: p}
			if i == 0 {
				r.group = g.Category
			}
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		m.nav = nil
		return
	}
	idx := 0
	if m.nav != nil {
		idx = min(m.nav.Index(), len(rows)-1)
	}
	m.nav = focus.MustNew(rows...)
	m.nav.SetIndex(idx)
}

// View implements View.
func (m *ProductsModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Products"))
	if m.loading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(Styles.Status.Render(m.status) + "\n")
	}
	if m.err != nil {
		b.WriteString(Styles.Details.Render(m.err.Error()) + "\n")
	}
	if m.nav == nil {
		if !m.loading {
			b.WriteString(Styles.Empty.Render("No products yet. Items added to the list appear here."))
		}
		return Styles.Box.Render(strings.TrimRight(b.String(), "\n"))
	}
	for i, r := range m.nav.Items() {
		if r.group != "" {
			b.WriteString(Styles.Section.Render(r.group) + "\n")
		}
		b.WriteString(renderRow(r.product.Name, i == m.nav.Index()) + "\n")
	}
	return Styles.Box.Render(strings.TrimRight(b.String(), "\n"))
}
