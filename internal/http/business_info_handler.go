package http

import (
	"encoding/json"
	"net/http"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// BusinessInfoHandler exposes the singleton business info row: a public read
// and an admin upsert
type BusinessInfoHandler struct {
	repo   domain.BusinessInfoRepository
	logger logger.Logger
}

// NewBusinessInfoHandler creates a new business info handler
func NewBusinessInfoHandler(repo domain.BusinessInfoRepository, logger logger.Logger) *BusinessInfoHandler {
	return &BusinessInfoHandler{
		repo:   repo,
		logger: logger,
	}
}

// RegisterRoutes registers the RPC-style business info endpoints
func (h *BusinessInfoHandler) RegisterRoutes(mux *http.ServeMux, requireAdmin func(http.Handler) http.Handler) {
	mux.Handle("/api/businessInfo.get", http.HandlerFunc(h.HandleGet))
	mux.Handle("/api/businessInfo.update", requireAdmin(http.HandlerFunc(h.HandleUpdate)))
}

// HandleGet handles the public read (GET)
func (h *BusinessInfoHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	info, err := h.repo.Get(r.Context())
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to get business info")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"business_info": info,
	})
}

// HandleUpdate handles the admin upsert (POST). An update with no existing
// row inserts one with the supplied values.
func (h *BusinessInfoHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var info domain.BusinessInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := info.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update business info")
		return
	}

	if err := h.repo.Upsert(r.Context(), &info); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update business info")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"business_info": info,
	})
}
