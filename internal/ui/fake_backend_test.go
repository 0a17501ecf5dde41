package ui

import (
	"context"
	"fmt"
	"strings"

	"kitchenkiosk/internal/data"
)

type createCall struct {
	Seconds int
	Name    string
}

type quantityCall struct {
	ID       string
	Quantity string
}

type addCall struct {
	Name     string
	Category string
}

// fakeBackend is an in-memory data.Backend that records mutations.
type fakeBackend struct {
	timers     []data.Timer
	items      []data.ShoppingItem
	categories []data.Category
	products   []data.Product

	createErr error

	created         []createCall
	added           []addCall
	quantities      []quantityCall
	deletedItems    []string
	deletedProducts []string
	queries         []string
	listItemsCalls  int
	nextID          int
}

var _ data.Backend = (*fakeBackend)(nil)

func (f *fakeBackend) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeBackend) ListTimers(context.Context) ([]data.Timer, error) {
	return append([]data.Timer(nil), f.timers...), nil
}

func (f *fakeBackend) CreateTimer(_ context.Context, seconds int, name string) (data.Timer, error) {
	if f.createErr != nil {
		return data.Timer{}, f.createErr
	}
	f.created = append(f.created, createCall{Seconds: seconds, Name: name})
	t := data.Timer{ID: f.id("timer"), Name: name, DurationSec: seconds, RemainingSec: seconds, Status: data.TimerRunning}
	f.timers = append(f.timers, t)
	return t, nil
}

func (f *fakeBackend) StartTimer(context.Context, string) (data.Timer, error) {
	return data.Timer{}, data.ErrNotFound
}

func (f *fakeBackend) PauseTimer(context.Context, string) (data.Timer, error) {
	return data.Timer{}, data.ErrNotFound
}

func (f *fakeBackend) DeleteTimer(context.Context, string) error { return data.ErrNotFound }

func (f *fakeBackend) ListItems(context.Context) ([]data.ShoppingItem, error) {
	f.listItemsCalls++
	return append([]data.ShoppingItem(nil), f.items...), nil
}

func (f *fakeBackend) AddItem(_ context.Context, name, category string) (data.ShoppingItem, error) {
	f.added = append(f.added, addCall{Name: name, Category: category})
	it := data.ShoppingItem{ID: f.id("item"), Name: name, Category: category, Quantity: "1"}
	f.items = append(f.items, it)
	return it, nil
}

func (f *fakeBackend) UpdateQuantity(_ context.Context, id, quantity string) error {
	f.quantities = append(f.quantities, quantityCall{ID: id, Quantity: quantity})
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Quantity = quantity
			return nil
		}
	}
	return data.ErrNotFound
}

func (f *fakeBackend) DeleteItem(_ context.Context, id string) error {
	f.deletedItems = append(f.deletedItems, id)
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return data.ErrNotFound
}

func (f *fakeBackend) ListProducts(context.Context) ([]data.Product, error) {
	return append([]data.Product(nil), f.products...), nil
}

func (f *fakeBackend) Autocomplete(_ context.Context, q string) ([]data.Product, error) {
	f.queries = append(f.queries, q)
	var out []data.Product
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeBackend) ProductsByCategory(context.Context, string) ([]data.Product, error) {
	return nil, nil
}

func (f *fakeBackend) UpdateProduct(context.Context, string, string, string) (data.Product, error) {
	return data.Product{}, data.ErrNotFound
}

func (f *fakeBackend) DeleteProduct(_ context.Context, id string) error {
	f.deletedProducts = append(f.deletedProducts, id)
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return data.ErrNotFound
}

func (f *fakeBackend) ListCategories(context.Context) ([]data.Category, error) {
	return append([]data.Category(nil), f.categories...), nil
}

func (f *fakeBackend) CreateCategory(context.Context, string) (data.Category, error) {
	return data.Category{}, data.ErrInvalid
}

func (f *fakeBackend) UpdateCategory(context.Context, string, string) (data.Category, error) {
	return data.Category{}, data.ErrNotFound
}

func (f *fakeBackend) DeleteCategory(context.Context, string) error { return data.ErrNotFound }
