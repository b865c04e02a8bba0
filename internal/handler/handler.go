package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with a stable code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeValidationError writes a 400 response carrying the per-field
// messages of a rejected checkout form.
func writeValidationError(w http.ResponseWriter, verr *model.ValidationError, logger zerolog.Logger) {
	logger.Warn().Int("fields", len(verr.Fields)).Msg("order form rejected")
	writeJSON(w, http.StatusBadRequest, model.ValidationErrorResponse{
		Error:   model.ErrCodeValidationFailed,
		Message: "Order form validation failed",
		Fields:  verr.Fields,
	})
}
