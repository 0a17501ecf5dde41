package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"kitchenkiosk/internal/data"
)

// loadTimersCmd fetches the timers shown on the home view.
func loadTimersCmd(s data.TimerService) tea.Cmd {
	return func() tea.Msg {
		timers, err := s.ListTimers(context.Background())
		if err != nil {
			return timersLoadedMsg{Err: fmt.Errorf("list timers: %w", err)}
		}
		return timersLoadedMsg{Timers: data.ActiveTimers(timers)}
	}
}

// refreshTick schedules the next home view refresh.
func refreshTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return refreshTickMsg(t) })
}

func dataChanged() tea.Msg { return DataChangedMsg{} }

// confirmedCmd runs a confirmed side effect and reports its result to the host.
func confirmedCmd(cmd tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		var result tea.Msg
		if cmd != nil {
			result = cmd()
		}
		return confirmedMsg{Result: result}
	}
}

func createTimerCmd(s data.TimerService, mount uint64, seconds int, name string) tea.Cmd {
	return func() tea.Msg {
		t, err := s.CreateTimer(context.Background(), seconds, name)
		if err != nil {
			err = fmt.Errorf("create timer: %w", err)
		}
		return timerCreatedMsg{mountRef: mountRef(mount), Timer: t, Err: err}
	}
}

// loadListCmd fetches the shopping list and the categories offered when
// adding a new product.
func loadListCmd(b data.Backend, mount uint64) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		items, err := b.ListItems(ctx)
		if err != nil {
			return listLoadedMsg{mountRef: mountRef(mount), Err: fmt.Errorf("list items: %w", err)}
		}
		cats, err := b.ListCategories(ctx)
		if err != nil {
			return listLoadedMsg{mountRef: mountRef(mount), Err: fmt.Errorf("list categories: %w", err)}
		}
		return listLoadedMsg{mountRef: mountRef(mount), Items: items, Categories: cats}
	}
}

func debounceCmd(d time.Duration, mount uint64, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return debounceMsg{mountRef: mountRef(mount), Seq: seq}
	})
}

func autocompleteCmd(s data.ProductService, mount uint64, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		products, err := s.Autocomplete(context.Background(), query)
		if err != nil {
			err = fmt.Errorf("autocomplete %q: %w", query, err)
		}
		return suggestionsMsg{mountRef: mountRef(mount), Seq: seq, Products: products, Err: err}
	}
}

func addItemCmd(s data.ShoppingService, mount uint64, name, category string) tea.Cmd {
	return func() tea.Msg {
		item, err := s.AddItem(context.Background(), name, category)
		if err != nil {
			err = fmt.Errorf("add %q: %w", name, err)
		}
		return itemAddedMsg{mountRef: mountRef(mount), Item: item, Err: err}
	}
}

func updateQuantityCmd(s data.ShoppingService, mount uint64, item data.ShoppingItem, quantity string) tea.Cmd {
	return func() tea.Msg {
		err := s.UpdateQuantity(context.Background(), item.ID, quantity)
		if err != nil {
			err = fmt.Errorf("quantity of %q: %w", item.Name, err)
		}
		return quantityUpdatedMsg{mountRef: mountRef(mount), ItemID: item.ID, Quantity: quantity, Err: err}
	}
}

func deleteItemCmd(s data.ShoppingService, mount uint64, item data.ShoppingItem) tea.Cmd {
	return func() tea.Msg {
		err := s.DeleteItem(context.Background(), item.ID)
		if err != nil {
			err = fmt.Errorf("remove %q: %w", item.Name, err)
		}
		return deletedMsg{mountRef: mountRef(mount), What: item.Name, Err: err}
	}
}

func loadProductsCmd(s data.ProductService, mount uint64) tea.Cmd {
	return func() tea.Msg {
		products, err := s.ListProducts(context.Background())
		if err != nil {
			err = fmt.Errorf("list products: %w", err)
		}
		return productsLoadedMsg{mountRef: mountRef(mount), Products: products, Err: err}
	}
}

func deleteProductCmd(s data.ProductService, mount uint64, p data.Product) tea.Cmd {
	return func() tea.Msg {
		err := s.DeleteProduct(context.Background(), p.ID)
		if err != nil {
			err = fmt.Errorf("delete product %q: %w", p.Name, err)
		}
		return deletedMsg{mountRef: mountRef(mount), What: p.Name, Err: err}
	}
}
