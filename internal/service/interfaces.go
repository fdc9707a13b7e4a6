// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/catalog-tui/internal/model"
)

// Catalog is the remote catalog collection. Each call is one request/response
// pair with no retry or caching; any failure is returned as a single error.
// Mutating calls return the server-provided message.
type Catalog interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListProducts(ctx context.Context, page, size int) (model.ProductPage, error)
	CreateCategory(ctx context.Context, name string) (string, error)
	CreateProduct(ctx context.Context, name, categoryID string) (string, error)
	UpdateProduct(ctx context.Context, id, name, categoryID string) (string, error)
	DeleteProduct(ctx context.Context, id string) (string, error)
}
