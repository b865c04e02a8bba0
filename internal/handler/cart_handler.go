package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/cart"
	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"

	"github.com/rs/zerolog"
)

// SessionHeader identifies the caller's cart slot. A request without it
// gets a fresh session; the id is echoed back on every cart response so
// the client can persist it.
const SessionHeader = "X-Cart-Session"

// CartHandler handles cart HTTP requests. Each request resolves its
// session's Manager through the registry.
type CartHandler struct {
	registry *cart.Registry
	logger   zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(registry *cart.Registry, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		registry: registry,
		logger:   logger.With().Str("handler", "cart").Logger(),
	}
}

// session resolves the request's cart manager. The header value names a
// storage slot, so anything that is not a uuid the registry could have
// minted is replaced with a fresh session rather than passed to storage.
func (h *CartHandler) session(w http.ResponseWriter, r *http.Request) *cart.Manager {
	sessionID := r.Header.Get(SessionHeader)
	if !cart.ValidSessionID(sessionID) {
		if sessionID != "" {
			h.logger.Warn().Str("session_id", sessionID).Msg("rejected malformed cart session id")
		}
		sessionID = cart.NewSessionID()
	}
	w.Header().Set(SessionHeader, sessionID)
	return h.registry.Session(r.Context(), sessionID)
}

// Cart handles GET and DELETE /cart requests: the full cart view, or a
// cleared cart.
func (h *CartHandler) Cart(w http.ResponseWriter, r *http.Request) {
	m := h.session(w, r)

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, m.View())
	case http.MethodDelete:
		m.Clear(r.Context())
		writeJSON(w, http.StatusOK, m.View())
	default:
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
	}
}

// AddItem handles POST /cart/items requests, merging the posted line item
// into the session's cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var item model.CartLineItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if item.ID < 1 {
		writeError(w, http.StatusBadRequest, model.ErrCodeInternalError, "item id is required", h.logger)
		return
	}

	m := h.session(w, r)
	m.Add(r.Context(), item)
	writeJSON(w, http.StatusOK, m.View())
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Item handles PUT and DELETE /cart/items/{id} requests: an absolute
// quantity update, or removal of the line item.
func (h *CartHandler) Item(w http.ResponseWriter, r *http.Request) {
	rawID := strings.TrimPrefix(r.URL.Path, "/cart/items/")
	id, err := strconv.Atoi(rawID)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, model.ErrCodeInternalError, "invalid item id", h.logger)
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req updateQuantityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
			return
		}
		m := h.session(w, r)
		m.UpdateQuantity(r.Context(), id, req.Quantity)
		writeJSON(w, http.StatusOK, m.View())
	case http.MethodDelete:
		m := h.session(w, r)
		m.Remove(r.Context(), id)
		writeJSON(w, http.StatusOK, m.View())
	default:
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
	}
}
