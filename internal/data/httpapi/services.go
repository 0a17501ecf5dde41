package httpapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"kitchenkiosk/internal/data"
)

// ListTimers implements data.TimerService.
func (c *Client) ListTimers(ctx context.Context) ([]data.Timer, error) {
	return list[data.Timer](ctx, c, "/timers", nil)
}

// CreateTimer implements data.TimerService. A blank name lets the backend
// pick its default.
func (c *Client) CreateTimer(ctx context.Context, durationSec int, name string) (data.Timer, error) {
	req := struct {
		DurationSec int    `json:"duration_sec"`
		Name        string `json:"name,omitempty"`
	}{DurationSec: durationSec, Name: strings.TrimSpace(name)}
	var t data.Timer
	err := c.do(ctx, http.MethodPost, "/timers", nil, req, &t)
	return t, err
}

// StartTimer implements data.TimerService.
func (c *Client) StartTimer(ctx context.Context, id string) (data.Timer, error) {
	var t data.Timer
	err := c.do(ctx, http.MethodPost, "/timers"+escape(id)+"/start", nil, nil, &t)
	return t, err
}

// PauseTimer implements data.TimerService.
func (c *Client) PauseTimer(ctx context.Context, id string) (data.Timer, error) {
	var t data.Timer
	err := c.do(ctx, http.MethodPost, "/timers"+escape(id)+"/pause", nil, nil, &t)
	return t, err
}

// DeleteTimer implements data.TimerService.
func (c *Client) DeleteTimer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/timers"+escape(id), nil, nil, nil)
}

// ListItems implements data.ShoppingService.
func (c *Client) ListItems(ctx context.Context) ([]data.ShoppingItem, error) {
	return list[data.ShoppingItem](ctx, c, "/shopping/items", nil)
}

// AddItem implements data.ShoppingService.
func (c *Client) AddItem(ctx context.Context, name, category string) (data.ShoppingItem, error) {
	req := struct {
		Name     string  `json:"name"`
		Category *string `json:"category"`
	}{Name: name}
	if category = strings.TrimSpace(category); category != "" {
		req.Category = &category
	}
	var it data.ShoppingItem
	err := c.do(ctx, http.MethodPost, "/shopping/items", nil, req, &it)
	return it, err
}

// UpdateQuantity implements data.ShoppingService.
func (c *Client) UpdateQuantity(ctx context.Context, id, quantity string) error {
	req := map[string]string{"quantity": quantity}
	return c.do(ctx, http.MethodPatch, "/shopping/items"+escape(id), nil, req, nil)
}

// DeleteItem implements data.ShoppingService.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/shopping/items"+escape(id), nil, nil, nil)
}

// ListProducts implements data.ProductService.
func (c *Client) ListProducts(ctx context.Context) ([]data.Product, error) {
	return list[data.Product](ctx, c, "/products", nil)
}

// Autocomplete implements data.ProductService.
func (c *Client) Autocomplete(ctx context.Context, query string) ([]data.Product, error) {
	return list[data.Product](ctx, c, "/products/autocomplete", url.Values{"q": {query}})
}

// ProductsByCategory implements data.ProductService.
func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]data.Product, error) {
	return list[data.Product](ctx, c, "/products/category"+escape(category), nil)
}

// UpdateProduct implements data.ProductService.
func (c *Client) UpdateProduct(ctx context.Context, id, name, category string) (data.Product, error) {
	req := struct {
		Name         string  `json:"name,omitempty"`
		CategoryName *string `json:"category_name"`
	}{Name: strings.TrimSpace(name)}
	if category = strings.TrimSpace(category); category != "" {
		req.CategoryName = &category
	}
	var p data.Product
	err := c.do(ctx, http.MethodPut, "/products"+escape(id), nil, req, &p)
	return p, err
}

// DeleteProduct implements data.ProductService.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products"+escape(id), nil, nil, nil)
}

// ListCategories implements data.CategoryService.
func (c *Client) ListCategories(ctx context.Context) ([]data.Category, error) {
	return list[data.Category](ctx, c, "/categories", nil)
}

// CreateCategory implements data.CategoryService.
func (c *Client) CreateCategory(ctx context.Context, name string) (data.Category, error) {
	var cat data.Category
	err := c.do(ctx, http.MethodPost, "/categories", nil, map[string]string{"name": name}, &cat)
	return cat, err
}

// UpdateCategory implements data.CategoryService.
func (c *Client) UpdateCategory(ctx context.Context, id, name string) (data.Category, error) {
	var cat data.Category
	err := c.do(ctx, http.MethodPut, "/categories"+escape(id), nil, map[string]string{"name": name}, &cat)
	return cat, err
}

// DeleteCategory implements data.CategoryService.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories"+escape(id), nil, nil, nil)
}
