package repository

import (
	"context"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"
)

// ProductRepository defines the interface for catalogue lookups. The
// catalogue is read-only after seeding; implementations return (nil, nil)
// when a product does not exist.
type ProductRepository interface {
	// GetAll retrieves the full catalogue.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its numeric ID.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// GetBySlug retrieves a single product by its unique slug.
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)

	// GetByCategory retrieves all products in a category. Unknown
	// categories yield an empty slice, not an error.
	GetByCategory(ctx context.Context, category string) ([]model.Product, error)
}

// OrderRepository defines the interface for order persistence. Orders are
// immutable once created.
type OrderRepository interface {
	// Create persists a new order, assigning the next monotonically
	// increasing id. The assignment is atomic per store instance: two
	// concurrent creates never receive the same id. The stored record is
	// a snapshot independent of the caller's item slice.
	Create(ctx context.Context, order *model.Order) error

	// GetByID retrieves an order by its ID, or (nil, nil) when absent.
	GetByID(ctx context.Context, id int64) (*model.Order, error)
}

// UserRepository defines the interface for the latent user records
// carried over from the original data model.
type UserRepository interface {
	// GetByID retrieves a user by ID, or (nil, nil) when absent.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// GetByUsername retrieves a user by unique username, or (nil, nil).
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// Create persists a new user, assigning its id.
	Create(ctx context.Context, user *model.User) error
}
