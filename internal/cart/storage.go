package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"

	"github.com/rs/zerolog"
)

// Storage is the persistence port for a single cart slot. Implementations
// report failures; the Manager decides how to degrade (it swallows them,
// since the slot is a session convenience, not a durability guarantee).
type Storage interface {
	// Load reads the persisted line items, or an empty slice when the
	// slot has never been written.
	Load(ctx context.Context) ([]model.CartLineItem, error)

	// Save replaces the slot with the full line-item sequence.
	Save(ctx context.Context, items []model.CartLineItem) error

	// Clear removes the slot. Clearing an absent slot is not an error.
	Clear(ctx context.Context) error
}

// fileStorage keeps one JSON file per cart slot under a base directory.
type fileStorage struct {
	path   string
	logger zerolog.Logger
}

// NewFileStorage creates a file-backed cart slot named by key under dir.
func NewFileStorage(dir, key string, logger zerolog.Logger) Storage {
	return &fileStorage{
		path:   filepath.Join(dir, key+".json"),
		logger: logger.With().Str("component", "cart-file-storage").Logger(),
	}
}

// Load reads and decodes the slot file.
func (s *fileStorage) Load(_ context.Context) ([]model.CartLineItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.CartLineItem{}, nil
		}
		return nil, fmt.Errorf("failed to read cart slot %s: %w", s.path, err)
	}

	var items []model.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart slot %s: %w", s.path, err)
	}
	return items, nil
}

// Save encodes and writes the full line-item sequence.
func (s *fileStorage) Save(_ context.Context, items []model.CartLineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart slot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create cart directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart slot %s: %w", s.path, err)
	}

	s.logger.Debug().Str("path", s.path).Int("items", len(items)).Msg("cart slot saved")
	return nil
}

// Clear removes the slot file.
func (s *fileStorage) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cart slot %s: %w", s.path, err)
	}
	return nil
}
