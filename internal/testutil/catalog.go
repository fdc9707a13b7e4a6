// Package testutil provides an in-memory catalog for tests.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Veraticus/catalog-tui/internal/common"
	"github.com/Veraticus/catalog-tui/internal/model"
	"github.com/Veraticus/catalog-tui/internal/service"
)

// Operation names recorded by Catalog and used to inject failures.
const (
	OpListCategories = "ListCategories"
	OpListProducts   = "ListProducts"
	OpCreateCategory = "CreateCategory"
	OpCreateProduct  = "CreateProduct"
	OpUpdateProduct  = "UpdateProduct"
	OpDeleteProduct  = "DeleteProduct"
)

var (
	// ErrInjected is returned by operations configured to fail.
	ErrInjected = fmt.Errorf("%w: injected failure", common.ErrRemote)
	// ErrNotFound reports a missing entity.
	ErrNotFound = errors.New("not found")
)

var _ service.Catalog = (*Catalog)(nil)

// Call records one invocation against the Catalog.
type Call struct {
	Op         string
	ID         string
	Name       string
	CategoryID string
	Page       int
	Size       int
}

// Catalog is a thread-safe in-memory catalog with failure injection.
type Catalog struct {
	failures   map[string]error
	categories []model.Category
	products   []model.Product
	calls      []Call
	nextID     int
	mu         sync.Mutex
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{failures: make(map[string]error)}
}

// SeedCategory adds a category directly and returns it.
func (c *Catalog) SeedCategory(id, name string) model.Category {
	c.mu.Lock()
	defer c.mu.Unlock()

	category := model.Category{ID: id, Name: name}
	c.categories = append(c.categories, category)
	return category
}

// SeedProducts adds count products named "<prefix> N" in category.
func (c *Catalog) SeedProducts(prefix string, count int, category model.Category) []model.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	seeded := make([]model.Product, 0, count)
	for i := 1; i <= count; i++ {
		product := model.Product{
			ID:       c.newID("p"),
			Name:     fmt.Sprintf("%s %d", prefix, i),
			Category: category,
		}
		c.products = append(c.products, product)
		seeded = append(seeded, product)
	}
	return seeded
}

// Fail makes every subsequent call to op return err until Recover is called.
func (c *Catalog) Fail(op string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err == nil {
		err = ErrInjected
	}
	c.failures[op] = err
}

// Recover clears an injected failure.
func (c *Catalog) Recover(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.failures, op)
}

// Calls returns a copy of the recorded calls.
func (c *Catalog) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Call(nil), c.calls...)
}

// CallCount returns how many times op was invoked.
func (c *Catalog) CallCount(op string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, call := range c.calls {
		if call.Op == op {
			count++
		}
	}
	return count
}

// Products returns a copy of every stored product.
func (c *Catalog) Products() []model.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]model.Product(nil), c.products...)
}

// ListCategories implements service.Catalog.
func (c *Catalog) ListCategories(_ context.Context) ([]model.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.record(Call{Op: OpListCategories}); err != nil {
		return nil, err
	}
	return append([]model.Category(nil), c.categories...), nil
}

// ListProducts implements service.Catalog.
func (c *Catalog) ListProducts(_ context.Context, page, size int) (model.ProductPage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.record(Call{Op: OpListProducts, Page: page, Size: size}); err != nil {
		return model.ProductPage{}, err
	}

	if size < 1 {
		size = 10
	}
	if page < 1 {
		page = 1
	}

	totalPages := (len(c.products) + size - 1) / size
	start := (page - 1) * size
	end := min(start+size, len(c.products))

	var products []model.Product
	if start < len(c.products) {
		products = append(products, c.products[start:end]...)
	}

	return model.ProductPage{Products: products, TotalPages: totalPages}.Normalize(), nil
}

// CreateCategory implements service.Catalog.
func (c *Catalog) CreateCategory(_ context.Context, name string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.record(Call{Op: OpCreateCategory, Name: name}); err != nil {
		return "", err
	}

	c.categories = append(c.categories, model.Category{ID: c.newID("c"), Name: name})
	return "Category created successfully", nil
}

// CreateProduct implements service.Catalog.
func (c *Catalog) CreateProduct(_ context.Context, name, categoryID string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.record(Call{Op: OpCreateProduct, Name: name, CategoryID: categoryID}); err != nil {
		return "", err
	}

	category, err := c.category(categoryID)
	if err != nil {
		return "", err
	}

	c.products = append(c.products, model.Product{ID: c.newID("p"), Name: name, Category: category})
	return "Product created successfully", nil
}

// UpdateProduct implements service.Catalog.
func (c *Catalog) UpdateProduct(_ context.Context, id, name, categoryID string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.record(Call{Op: OpUpdateProduct, ID: id, Name: name, CategoryID: categoryID}); err != nil {
		return "", err
	}

	category, err := c.category(categoryID)
	if err != nil {
		return "", err
	}

	for i := range c.products {
		if c.products[i].ID == id {
			c.products[i].Name = name
			c.products[i].Category = category
			return "Product updated successfully", nil
		}
	}
	return "", fmt.Errorf("%w: product %s not found", common.ErrRemote, id)
}

// DeleteProduct implements service.Catalog.
func (c *Catalog) DeleteProduct(_ context.Context, id string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.record(Call{Op: OpDeleteProduct, ID: id}); err != nil {
		return "", err
	}

	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return "Product deleted successfully", nil
		}
	}
	return "", fmt.Errorf("%w: product %s not found", common.ErrRemote, id)
}

// record must be called with mu held.
func (c *Catalog) record(call Call) error {
	c.calls = append(c.calls, call)
	return c.failures[call.Op]
}

// category must be called with mu held.
func (c *Catalog) category(id string) (model.Category, error) {
	for _, category := range c.categories {
		if category.ID == id {
			return category, nil
		}
	}
	return model.Category{}, fmt.Errorf("%w: category %s: %w", common.ErrRemote, id, ErrNotFound)
}

// newID must be called with mu held.
func (c *Catalog) newID(prefix string) string {
	c.nextID++
	return fmt.Sprintf("%s%04d", prefix, c.nextID)
}
