package localstore

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"kitchenkiosk/internal/data"
)

// ListItems implements data.ShoppingService, oldest first.
func (s *Store) ListItems(ctx context.Context) ([]data.ShoppingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := all[data.ShoppingItem](ctx, s, kindItem)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt < items[j].CreatedAt })
	if items == nil {
		items = []data.ShoppingItem{}
	}
	return items, nil
}

// AddItem implements data.ShoppingService. The product and category are
// created on first use.
func (s *Store) AddItem(ctx context.Context, name, category string) (data.ShoppingItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return data.ShoppingItem{}, fmt.Errorf("name is required: %w", data.ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.productGetOrCreate(ctx, name, category)
	if err != nil {
		return data.ShoppingItem{}, err
	}
	it := data.ShoppingItem{
		ID:        newID(),
		ListID:    "active",
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.CategoryName,
		Quantity:  "1",
		CreatedAt: s.now().UnixNano(),
	}
	if err := write(s, kindItem, it.ID, it); err != nil {
		return data.ShoppingItem{}, err
	}
	return it, nil
}

// UpdateQuantity implements data.ShoppingService.
func (s *Store) UpdateQuantity(ctx context.Context, id, quantity string) error {
	quantity = strings.TrimSpace(quantity)
	if quantity == "" {
		return fmt.Errorf("quantity cannot be empty: %w", data.ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := read[data.ShoppingItem](s, kindItem, id)
	if err != nil {
		return err
	}
	it.Quantity = quantity
	return write(s, kindItem, id, it)
}

// DeleteItem implements data.ShoppingService.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return erase(s, kindItem, id)
}

// ListProducts implements data.ProductService, sorted by name.
func (s *Store) ListProducts(ctx context.Context) ([]data.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products(ctx, func(data.Product) bool { return true }, 0)
}

// Autocomplete implements data.ProductService: case-insensitive substring
// match on the product name.
func (s *Store) Autocomplete(ctx context.Context, query string) ([]data.Product, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []data.Product{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products(ctx, func(p data.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q)
	}, autocompleteLimit)
}

// ProductsByCategory implements data.ProductService.
func (s *Store) ProductsByCategory(ctx context.Context, category string) ([]data.Product, error) {
	category = strings.TrimSpace(category)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products(ctx, func(p data.Product) bool {
		return strings.EqualFold(p.CategoryName, category)
	}, byCategoryLimit)
}

// UpdateProduct implements data.ProductService. An empty name keeps the
// current one; an empty category removes the product from its category.
func (s *Store) UpdateProduct(ctx context.Context, id, name, category string) (data.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := read[productRecord](s, kindProduct, id)
	if err != nil {
		return data.Product{}, err
	}
	if name = strings.TrimSpace(name); name != "" {
		r.Name = name
	}
	r.CategoryID = ""
	if strings.TrimSpace(category) != "" {
		c, err := s.categoryGetOrCreate(ctx, category)
		if err != nil {
			return data.Product{}, err
		}
		r.CategoryID = c.ID
	}
	if err := write(s, kindProduct, id, r); err != nil {
		return data.Product{}, err
	}
	return s.resolve(r), nil
}

// DeleteProduct implements data.ProductService.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return erase(s, kindProduct, id)
}

// ListCategories implements data.CategoryService, sorted by name.
func (s *Store) ListCategories(ctx context.Context) ([]data.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats, err := all[data.Category](ctx, s, kindCategory)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(cats, func(i, j int) bool {
		return strings.ToLower(cats[i].Name) < strings.ToLower(cats[j].Name)
	})
	if cats == nil {
		cats = []data.Category{}
	}
	return cats, nil
}

// CreateCategory implements data.CategoryService. Names are unique,
// ignoring case.
func (s *Store) CreateCategory(ctx context.Context, name string) (data.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return data.Category{}, fmt.Errorf("category name is required: %w", data.ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok, err := s.categoryByName(ctx, name); err != nil {
		return data.Category{}, err
	} else if ok {
		return data.Category{}, fmt.Errorf("category %q already exists: %w", name, data.ErrInvalid)
	}
	c := data.Category{ID: newID(), Name: name}
	return c, write(s, kindCategory, c.ID, c)
}

// UpdateCategory implements data.CategoryService.
func (s *Store) UpdateCategory(ctx context.Context, id, name string) (data.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return data.Category{}, fmt.Errorf("category name is required: %w", data.ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := read[data.Category](s, kindCategory, id)
	if err != nil {
		return data.Category{}, err
	}
	if other, ok, err := s.categoryByName(ctx, name); err != nil {
		return data.Category{}, err
	} else if ok && other.ID != id {
		return data.Category{}, fmt.Errorf("category %q already exists: %w", name, data.ErrInvalid)
	}
	c.Name = name
	return c, write(s, kindCategory, id, c)
}

// DeleteCategory implements data.CategoryService. Products in the category
// become uncategorized.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := erase(s, kindCategory, id); err != nil {
		return err
	}
	recs, err := all[productRecord](ctx, s, kindProduct)
	if err != nil {
		return err
	}
	for _, r := range recs {
		if r.CategoryID != id {
			continue
		}
		r.CategoryID = ""
		if err := write(s, kindProduct, r.ID, r); err != nil {
			return err
		}
	}
	return nil
}

// products returns resolved products matching keep, sorted by name.
// limit <= 0 means no limit. Callers hold s.mu.
func (s *Store) products(ctx context.Context, keep func(data.Product) bool, limit int) ([]data.Product, error) {
	recs, err := all[productRecord](ctx, s, kindProduct)
	if err != nil {
		return nil, err
	}
	out := []data.Product{}
	for _, r := range recs {
		if p := s.resolve(r); keep(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// resolve fills in the category name. Callers hold s.mu.
func (s *Store) resolve(r productRecord) data.Product {
	p := data.Product{ID: r.ID, Name: r.Name, CategoryID: r.CategoryID}
	if r.CategoryID != "" {
		if c, err := read[data.Category](s, kindCategory, r.CategoryID); err == nil {
			p.CategoryName = c.Name
		} else {
			p.CategoryID = ""
		}
	}
	return p
}

// productGetOrCreate finds a product by name ignoring case, creating it in
// category when missing. Callers hold s.mu.
func (s *Store) productGetOrCreate(ctx context.Context, name, category string) (data.Product, error) {
	recs, err := all[productRecord](ctx, s, kindProduct)
	if err != nil {
		return data.Product{}, err
	}
	for _, r := range recs {
		if strings.EqualFold(r.Name, name) {
			return s.resolve(r), nil
		}
	}
	r := productRecord{ID: newID(), Name: name}
	if strings.TrimSpace(category) != "" {
		c, err := s.categoryGetOrCreate(ctx, category)
		if err != nil {
			return data.Product{}, err
		}
		r.CategoryID = c.ID
	}
	if err := write(s, kindProduct, r.ID, r); err != nil {
		return data.Product{}, err
	}
	return s.resolve(r), nil
}

// categoryGetOrCreate callers hold s.mu.
func (s *Store) categoryGetOrCreate(ctx context.Context, name string) (data.Category, error) {
	name = strings.TrimSpace(name)
	c, ok, err := s.categoryByName(ctx, name)
	if err != nil || ok {
		return c, err
	}
	c = data.Category{ID: newID(), Name: name}
	return c, write(s, kindCategory, c.ID, c)
}

// categoryByName callers hold s.mu.
func (s *Store) categoryByName(ctx context.Context, name string) (data.Category, bool, error) {
	cats, err := all[data.Category](ctx, s, kindCategory)
	if err != nil {
		return data.Category{}, false, err
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, name) {
			return c, true, nil
		}
	}
	return data.Category{}, false, nil
}
