// Package data defines the records and service contracts of the kiosk backend
// (timers, shopping list, product catalog, categories). The UI only cares
// whether a call succeeded; status handling belongs to the implementations.
package data

import (
	"context"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrNotFound is returned when the addressed record does not exist.
	ErrNotFound = errors.New("data: not found")
	// ErrInvalid is returned when the request was rejected as malformed.
	ErrInvalid = errors.New("data: invalid request")
)

// TimerStatus is the lifecycle state of a timer.
type TimerStatus string

const (
	TimerIdle     TimerStatus = "idle"
	TimerRunning  TimerStatus = "running"
	TimerPaused   TimerStatus = "paused"
	TimerFinished TimerStatus = "finished"
)

// Timer is a countdown kept by the backend.
type Timer struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	DurationSec  int         `json:"duration_sec"`
	RemainingSec int         `json:"remaining_sec"`
	Status       TimerStatus `json:"status"`
	StartedAt    *int64      `json:"started_at,omitempty"`
}

// Category groups products.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is a catalog entry that shopping items refer to.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CategoryID   string `json:"category_id,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
}

// ShoppingItem is one line of the active shopping list.
type ShoppingItem struct {
	ID        string `json:"id"`
	ListID    string `json:"list_id"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Quantity  string `json:"quantity"`
	CreatedAt int64  `json:"created_at_ts"`
}

// TimerService manages countdown timers.
type TimerService interface {
	ListTimers(ctx context.Context) ([]Timer, error)
	CreateTimer(ctx context.Context, durationSec int, name string) (Timer, error)
	StartTimer(ctx context.Context, id string) (Timer, error)
	PauseTimer(ctx context.Context, id string) (Timer, error)
	DeleteTimer(ctx context.Context, id string) error
}

// ShoppingService manages the active shopping list.
type ShoppingService interface {
	ListItems(ctx context.Context) ([]ShoppingItem, error)
	AddItem(ctx context.Context, name, category string) (ShoppingItem, error)
	UpdateQuantity(ctx context.Context, id, quantity string) error
	DeleteItem(ctx context.Context, id string) error
}

// ProductService manages the product catalog.
type ProductService interface {
	ListProducts(ctx context.Context) ([]Product, error)
	Autocomplete(ctx context.Context, query string) ([]Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]Product, error)
	UpdateProduct(ctx context.Context, id, name, category string) (Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// CategoryService manages product categories.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, name string) (Category, error)
	UpdateCategory(ctx context.Context, id, name string) (Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// Backend is everything the kiosk consumes.
type Backend interface {
	TimerService
	ShoppingService
	ProductService
	CategoryService
}

// statusRank orders timers for display: running first, finished last.
var statusRank = map[TimerStatus]int{
	TimerRunning:  0,
	TimerPaused:   1,
	TimerIdle:     2,
	TimerFinished: 3,
}

// ActiveTimers drops finished timers and orders the rest running, paused,
// idle. Timers of equal status keep their input order.
func ActiveTimers(timers []Timer) []Timer {
	out := make([]Timer, 0, len(timers))
	for _, t := range timers {
		if t.Status != TimerFinished {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return statusRank[out[i].Status] < statusRank[out[j].Status]
	})
	return out
}

// Group is a named run of records sharing a category.
type Group[T any] struct {
	Category string
	Items    []T
}

// GroupByCategory buckets records by category name. Groups are sorted by name
// case-insensitively and the uncategorized group, labelled uncategorized,
// always comes last. Records keep their input order within a group.
func GroupByCategory[T any](records []T, category func(T) string, uncategorized string) []Group[T] {
	index := map[string]int{}
	var groups []Group[T]
	var rest []T
	for _, r := range records {
		c := strings.TrimSpace(category(r))
		if c == "" {
			rest = append(rest, r)
			continue
		}
		i, ok := index[c]
		if !ok {
			i = len(groups)
			index[c] = i
			groups = append(groups, Group[T]{Category: c})
		}
		groups[i].Items = append(groups[i].Items, r)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return strings.ToLower(groups[i].Category) < strings.ToLower(groups[j].Category)
	})
	if len(rest) > 0 {
		groups = append(groups, Group[T]{Category: uncategorized, Items: rest})
	}
	return groups
}

// ContainsItem reports whether the list already holds name in category,
// comparing case-insensitively.
func ContainsItem(items []ShoppingItem, name, category string) bool {
	for _, it := range items {
		if strings.EqualFold(strings.TrimSpace(it.Name), strings.TrimSpace(name)) &&
			strings.EqualFold(strings.TrimSpace(it.Category), strings.TrimSpace(category)) {
			return true
		}
	}
	return false
}

// FindCategory returns the category called name, comparing case-insensitively
// and ignoring surrounding space.
func FindCategory(categories []Category, name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range categories {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			return c, true
		}
	}
	return Category{}, false
}

// StepQuantity adds delta to the number a quantity starts with and keeps its
// unit, so "2" becomes "3" and "0.5kg" becomes "1.5kg". An empty quantity
// counts as 1. It reports false, leaving q alone, when q has no leading
// number or the result would not be positive.
func StepQuantity(q string, delta int) (string, bool) {
	q = strings.TrimSpace(q)
	if q == "" {
		q = "1"
	}
	i := strings.IndexFunc(q, func(r rune) bool { return (r < '0' || r > '9') && r != '.' })
	if i < 0 {
		i = len(q)
	}
	if i == 0 {
		return q, false
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(q[:i], "."), 64)
	if err != nil {
		return q, false
	}
	n = math.Round((n+float64(delta))*1000) / 1000
	if n <= 0 {
		return q, false
	}
	return strconv.FormatFloat(n, 'f', -1, 64) + q[i:], true
}
