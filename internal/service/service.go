package service

import (
	"context"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"
)

// ProductService defines catalogue query operations.
type ProductService interface {
	// GetAll retrieves the full catalogue.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetBySlug retrieves a single product by its unique slug.
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)

	// GetByCategory retrieves all products in a category; unknown
	// categories yield an empty result, not an error.
	GetByCategory(ctx context.Context, category string) ([]model.Product, error)
}

// OrderService defines checkout operations.
type OrderService interface {
	// Submit validates the checkout form and, on success, persists an
	// immutable order combining the form, a snapshot of the cart items,
	// and the supplied totals. Validation failures are returned as
	// *model.ValidationError and persist nothing.
	Submit(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// GetByID retrieves a stored order.
	GetByID(ctx context.Context, id int64) (*model.Order, error)
}
