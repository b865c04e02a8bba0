package repository

import (
	"context"
	"sync"
	"time"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"
	"github.com/rs/zerolog"
)

// memoryProductStore implements ProductRepository over a seeded in-memory
// catalogue. The catalogue is immutable after construction, so reads need
// no locking.
type memoryProductStore struct {
	products []model.Product
	byID     map[int]int
	bySlug   map[string]int
	logger   zerolog.Logger
}

// NewMemoryProductStore creates a product store seeded with the given
// catalogue.
func NewMemoryProductStore(products []model.Product, logger zerolog.Logger) ProductRepository {
	s := &memoryProductStore{
		products: products,
		byID:     make(map[int]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
		logger:   logger.With().Str("repository", "product-memory").Logger(),
	}
	for i, p := range products {
		s.byID[p.ID] = i
		s.bySlug[p.Slug] = i
	}
	s.logger.Info().Int("count", len(products)).Msg("catalogue seeded")
	return s
}

// GetAll retrieves the full catalogue.
func (s *memoryProductStore) GetAll(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// GetByID retrieves a single product by its numeric ID.
func (s *memoryProductStore) GetByID(_ context.Context, id int) (*model.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, nil
	}
	p := s.products[i]
	return &p, nil
}

// GetBySlug retrieves a single product by its unique slug.
func (s *memoryProductStore) GetBySlug(_ context.Context, slug string) (*model.Product, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		s.logger.Debug().Str("slug", slug).Msg("product not found")
		return nil, nil
	}
	p := s.products[i]
	return &p, nil
}

// GetByCategory retrieves all products in a category, preserving seed order.
func (s *memoryProductStore) GetByCategory(_ context.Context, category string) ([]model.Product, error) {
	out := []model.Product{}
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// memoryOrderStore implements OrderRepository over an in-process map with
// a mutex-guarded id counter.
type memoryOrderStore struct {
	mu     sync.Mutex
	orders map[int64]model.Order
	nextID int64
	logger zerolog.Logger
}

// NewMemoryOrderStore creates an empty in-memory order store.
func NewMemoryOrderStore(logger zerolog.Logger) OrderRepository {
	return &memoryOrderStore{
		orders: make(map[int64]model.Order),
		nextID: 1,
		logger: logger.With().Str("repository", "order-memory").Logger(),
	}
}

// Create persists a new order, assigning the next id. Id assignment and
// insertion happen under one lock so concurrent creates never collide.
func (s *memoryOrderStore) Create(_ context.Context, order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.nextID
	s.nextID++
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	stored := *order
	stored.Items = append([]model.OrderItem(nil), order.Items...)
	s.orders[stored.ID] = stored

	s.logger.Debug().Int64("order_id", stored.ID).Msg("order stored")
	return nil
}

// GetByID retrieves an order by its ID.
func (s *memoryOrderStore) GetByID(_ context.Context, id int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.orders[id]
	if !ok {
		s.logger.Debug().Int64("order_id", id).Msg("order not found")
		return nil, nil
	}

	out := stored
	out.Items = append([]model.OrderItem(nil), stored.Items...)
	return &out, nil
}

// memoryUserStore implements UserRepository over an in-process map.
type memoryUserStore struct {
	mu         sync.Mutex
	users      map[int64]model.User
	byUsername map[string]int64
	nextID     int64
}

// NewMemoryUserStore creates an empty in-memory user store.
func NewMemoryUserStore() UserRepository {
	return &memoryUserStore{
		users:      make(map[int64]model.User),
		byUsername: make(map[string]int64),
		nextID:     1,
	}
}

// GetByID retrieves a user by ID.
func (s *memoryUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByUsername retrieves a user by unique username.
func (s *memoryUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byUsername[username]
	if !ok {
		return nil, nil
	}
	u := s.users[id]
	return &u, nil
}

// Create persists a new user, assigning its id.
func (s *memoryUserStore) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	s.byUsername[user.Username] = user.ID
	return nil
}
