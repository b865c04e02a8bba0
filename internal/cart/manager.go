package cart

import (
	"context"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"

	"github.com/rs/zerolog"
)

// Manager holds the mutable line items of one session's cart, keyed by
// product id with insertion order preserved for display. It persists every
// mutation through its storage slot on a best-effort basis: storage
// failures are logged and swallowed, the in-memory state stays the source
// of truth for the session. A Manager serves a single session and is not
// safe for concurrent use.
type Manager struct {
	items   []model.CartLineItem
	storage Storage
	logger  zerolog.Logger
}

// NewManager creates a cart manager over the given slot, restoring any
// previously persisted items. A failed or corrupt load degrades to an
// empty cart.
func NewManager(ctx context.Context, storage Storage, logger zerolog.Logger) *Manager {
	m := &Manager{
		storage: storage,
		logger:  logger.With().Str("component", "cart").Logger(),
	}

	items, err := storage.Load(ctx)
	if err != nil {
		m.logger.Warn().Err(err).Msg("failed to load persisted cart, starting empty")
		items = nil
	}
	m.items = items

	return m
}

// Add merges a line item into the cart: an existing entry with the same
// product id has its quantity incremented, otherwise the item is appended.
// A quantity below 1 is treated as 1.
func (m *Manager) Add(ctx context.Context, item model.CartLineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	for i := range m.items {
		if m.items[i].ID == item.ID {
			m.items[i].Quantity += item.Quantity
			m.persist(ctx)
			return
		}
	}

	m.items = append(m.items, item)
	m.persist(ctx)
}

// UpdateQuantity sets a line item's quantity to exactly quantity. A value
// of zero or below removes the item. Unknown ids are no-ops.
func (m *Manager) UpdateQuantity(ctx context.Context, id, quantity int) {
	if quantity <= 0 {
		m.Remove(ctx, id)
		return
	}

	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Quantity = quantity
			m.persist(ctx)
			return
		}
	}
}

// Remove deletes the line item with the given product id, if present.
func (m *Manager) Remove(ctx context.Context, id int) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.persist(ctx)
			return
		}
	}
}

// Clear empties the cart and purges the persisted slot.
func (m *Manager) Clear(ctx context.Context) {
	m.items = nil
	if err := m.storage.Clear(ctx); err != nil {
		m.logger.Warn().Err(err).Msg("failed to clear persisted cart")
	}
}

// Items returns a copy of the current line items in display order.
func (m *Manager) Items() []model.CartLineItem {
	out := make([]model.CartLineItem, len(m.items))
	copy(out, m.items)
	return out
}

// ItemCount is the total quantity across all line items.
func (m *Manager) ItemCount() int {
	return ItemCount(m.items)
}

// Totals computes the pricing breakdown for the current items.
func (m *Manager) Totals() model.CartTotals {
	return ComputeTotals(m.items)
}

// View assembles the full cart payload.
func (m *Manager) View() model.CartView {
	return model.CartView{
		Items:     m.Items(),
		ItemCount: m.ItemCount(),
		Totals:    m.Totals(),
	}
}

func (m *Manager) persist(ctx context.Context) {
	if err := m.storage.Save(ctx, m.items); err != nil {
		m.logger.Warn().Err(err).Msg("failed to persist cart")
	}
}
