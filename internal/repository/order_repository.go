package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
// Order ids come from a BIGSERIAL column, so assignment is atomic in the
// database regardless of how many API instances share it.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) *orderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create persists a new order and fills in its generated id.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	query := `
		INSERT INTO orders (name, email, phone, address, zip, city, country,
			payment_method, items, subtotal, shipping, vat, grand_total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	err = r.pool.QueryRow(ctx, query,
		order.Name, order.Email, order.Phone, order.Address, order.Zip,
		order.City, order.Country, order.PaymentMethod, items,
		order.Subtotal, order.Shipping, order.VAT, order.GrandTotal,
		order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().Int64("order_id", order.ID).Msg("order created")
	return nil
}

// GetByID retrieves an order by its ID.
func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `
		SELECT id, name, email, phone, address, zip, city, country,
			payment_method, items, subtotal, shipping, vat, grand_total, created_at
		FROM orders
		WHERE id = $1
	`

	var (
		order    model.Order
		itemsRaw []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.Name, &order.Email, &order.Phone, &order.Address,
		&order.Zip, &order.City, &order.Country, &order.PaymentMethod,
		&itemsRaw, &order.Subtotal, &order.Shipping, &order.VAT,
		&order.GrandTotal, &order.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("order_id", id).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("order_id", id).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	if err := json.Unmarshal(itemsRaw, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}

	return &order, nil
}
