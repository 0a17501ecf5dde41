// Package overlay defines the modal overlays the kiosk can open and the stack
// that orders them. Only the top of the stack is visible and interactive.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Kind identifies an overlay variant.
type Kind int

const (
	KindQuickTimer Kind = iota
	KindShoppingList
	KindProducts
	KindConfirm
)

func (k Kind) String() string {
	switch k {
	case KindQuickTimer:
		return "QuickTimer"
	case KindShoppingList:
		return "ShoppingList"
	case KindProducts:
		return "Products"
	case KindConfirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}

// Descriptor is an immutable description of one open overlay.
// The set of implementations is closed to this package.
type Descriptor interface {
	Kind() Kind
	descriptor()
}

// QuickTimer opens the timer creation overlay.
type QuickTimer struct{}

// ShoppingList opens the shopping list overlay.
type ShoppingList struct{}

// Products opens the product catalog overlay.
type Products struct{}

// Confirm asks a yes/no question. OnConfirm runs the caller's side effect and
// may return a command for work that completes asynchronously.
type Confirm struct {
	Title     string
	Message   string
	OnConfirm func() tea.Cmd
}

func (QuickTimer) Kind() Kind   { return KindQuickTimer }
func (ShoppingList) Kind() Kind { return KindShoppingList }
func (Products) Kind() Kind     { return KindProducts }
func (Confirm) Kind() Kind      { return KindConfirm }

func (QuickTimer) descriptor()   {}
func (ShoppingList) descriptor() {}
func (Products) descriptor()     {}
func (Confirm) descriptor()      {}

// DefaultConfirmTitle is shown when a Confirm has no title.
const DefaultConfirmTitle = "Confirmation"

// DisplayTitle returns Title, or DefaultConfirmTitle when empty.
func (c Confirm) DisplayTitle() string {
	if c.Title == "" {
		return DefaultConfirmTitle
	}
	return c.Title
}
