package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// WriteJSONError writes a JSON error response with the given message and status code.
// It sets the Content-Type header to application/json and automatically formats
// the response as {"error": "message"}.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// writeJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainError maps domain error types to HTTP statuses: validation
// errors become 400 with their message, not-found 404, unauthorized 401, and
// anything else the given fallback message with 500.
func writeDomainError(w http.ResponseWriter, log logger.Logger, err error, fallback string) {
	switch {
	case domain.IsValidationError(err):
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case domain.IsNotFound(err):
		WriteJSONError(w, err.Error(), http.StatusNotFound)
	default:
		var unauthorized *domain.UnauthorizedError
		if errors.As(err, &unauthorized) {
			WriteJSONError(w, unauthorized.Message, http.StatusUnauthorized)
			return
		}
		log.WithField("error", err.Error()).Error(fallback)
		WriteJSONError(w, fallback, http.StatusInternalServerError)
	}
}
