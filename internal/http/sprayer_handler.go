package http

import (
	"encoding/json"
	"net/http"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// SprayerHandler exposes the public sprayer profiles and the admin CRUD
type SprayerHandler struct {
	repo   domain.SprayerRepository
	logger logger.Logger
}

// NewSprayerHandler creates a new sprayer handler
func NewSprayerHandler(repo domain.SprayerRepository, logger logger.Logger) *SprayerHandler {
	return &SprayerHandler{
		repo:   repo,
		logger: logger,
	}
}

// RegisterRoutes registers the RPC-style sprayer endpoints
func (h *SprayerHandler) RegisterRoutes(mux *http.ServeMux, requireAdmin func(http.Handler) http.Handler) {
	mux.Handle("/api/sprayers.list", http.HandlerFunc(h.HandleList))
	mux.Handle("/api/sprayers.listAll", requireAdmin(http.HandlerFunc(h.HandleListAll)))
	mux.Handle("/api/sprayers.create", requireAdmin(http.HandlerFunc(h.HandleCreate)))
	mux.Handle("/api/sprayers.update", requireAdmin(http.HandlerFunc(h.HandleUpdate)))
	mux.Handle("/api/sprayers.delete", requireAdmin(http.HandlerFunc(h.HandleDelete)))
}

// HandleList handles the public list request (GET); only active sprayers
func (h *SprayerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sprayers, err := h.repo.List(r.Context(), true)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list sprayers")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sprayers": sprayers,
	})
}

// HandleListAll handles the admin list request (GET)
func (h *SprayerHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sprayers, err := h.repo.List(r.Context(), false)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list sprayers")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sprayers": sprayers,
	})
}

// HandleCreate handles the admin create request (POST)
func (h *SprayerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var sprayer domain.Sprayer
	if err := json.NewDecoder(r.Body).Decode(&sprayer); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := sprayer.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create sprayer")
		return
	}

	if err := h.repo.Create(r.Context(), &sprayer); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create sprayer")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"sprayer": sprayer,
	})
}

// HandleUpdate handles the admin update request (POST)
func (h *SprayerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var sprayer domain.Sprayer
	if err := json.NewDecoder(r.Body).Decode(&sprayer); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if sprayer.ID <= 0 {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}
	if err := sprayer.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update sprayer")
		return
	}

	if err := h.repo.Update(r.Context(), &sprayer); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update sprayer")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sprayer": sprayer,
	})
}

// HandleDelete handles the admin delete request (POST). Gallery items
// attributed to the sprayer keep existing with a nulled reference.
func (h *SprayerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID <= 0 {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(r.Context(), req.ID); err != nil {
		writeDomainError(w, h.logger, err, "Failed to delete sprayer")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
