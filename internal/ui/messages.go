package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"kitchenkiosk/internal/data"
)

// DataChangedMsg is broadcast after a confirmed side effect so visible data reloads.
type DataChangedMsg struct{}

// refreshTickMsg drives the home view's timer refresh.
type refreshTickMsg time.Time

// timersLoadedMsg carries a home view refresh.
type timersLoadedMsg struct {
	Timers []data.Timer
	Err    error
}

// confirmedMsg carries the result of a confirmed side effect back to the host,
// which delivers it and then broadcasts DataChangedMsg.
type confirmedMsg struct {
	Result tea.Msg
}

// overlayMsg is an async result addressed to the overlay that issued it.
// The host drops it once that overlay's entry has left the stack.
type overlayMsg interface {
	MountID() uint64
}

// mountRef is embedded in overlay result messages.
type mountRef uint64

// MountID implements overlayMsg.
func (m mountRef) MountID() uint64 { return uint64(m) }

// timerCreatedMsg is the quick timer's start result.
type timerCreatedMsg struct {
	mountRef
	Timer data.Timer
	Err   error
}

// listLoadedMsg is the shopping overlay's list and categories.
type listLoadedMsg struct {
	mountRef
	Items      []data.ShoppingItem
	Categories []data.Category
	Err        error
}

// debounceMsg fires once the query has been still for the autocomplete delay.
type debounceMsg struct {
	mountRef
	Seq int
}

// suggestionsMsg carries autocomplete results for query generation Seq.
type suggestionsMsg struct {
	mountRef
	Seq      int
	Products []data.Product
	Err      error
}

// itemAddedMsg is the result of adding to the shopping list.
type itemAddedMsg struct {
	mountRef
	Item data.ShoppingItem
	Err  error
}

// productsLoadedMsg is the products overlay's catalog.
type productsLoadedMsg struct {
	mountRef
	Products []data.Product
	Err      error
}

// deletedMsg is the result of a confirmed delete.
type deletedMsg struct {
	mountRef
	What string
	Err  error
}

// quantityUpdatedMsg is the result of changing a list item's quantity.
type quantityUpdatedMsg struct {
	mountRef
	ItemID   string
	Quantity string
	Err      error
}
