package cart

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StorageFactory builds the persisted slot for a session id.
type StorageFactory func(sessionID string) Storage

// Registry hands out one Manager per cart session. Sessions are created
// lazily on first use; the map is guarded because sessions arrive from
// concurrent requests, while each Manager itself stays single-session.
type Registry struct {
	mu         sync.Mutex
	sessions   map[string]*Manager
	newStorage StorageFactory
	logger     zerolog.Logger
}

// NewRegistry creates a session registry over the given storage factory.
func NewRegistry(newStorage StorageFactory, logger zerolog.Logger) *Registry {
	return &Registry{
		sessions:   make(map[string]*Manager),
		newStorage: newStorage,
		logger:     logger.With().Str("component", "cart-registry").Logger(),
	}
}

// NewSessionID generates a fresh cart session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// ValidSessionID reports whether a client-supplied session id is one this
// registry could have minted. Session ids name storage slots (file names,
// S3 keys), so anything that is not a uuid is refused.
func ValidSessionID(sessionID string) bool {
	_, err := uuid.Parse(sessionID)
	return err == nil
}

// Session returns the Manager for the given session id, creating it (and
// restoring its persisted slot) on first use. The restore can be a slow
// storage round trip, so it runs outside the lock; when two first requests
// for one session race, the loser's manager is discarded.
func (r *Registry) Session(ctx context.Context, sessionID string) *Manager {
	r.mu.Lock()
	if m, ok := r.sessions[sessionID]; ok {
		r.mu.Unlock()
		return m
	}
	r.mu.Unlock()

	m := NewManager(ctx, r.newStorage(sessionID), r.logger)

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.sessions[sessionID]; ok {
		return existing
	}
	r.sessions[sessionID] = m
	r.logger.Debug().Str("session_id", sessionID).Msg("cart session created")
	return m
}
