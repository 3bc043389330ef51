package http

import (
	"encoding/json"
	"net/http"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// GalleryHandler exposes the public before/after gallery and the admin CRUD
type GalleryHandler struct {
	service domain.GalleryService
	logger  logger.Logger
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(galleryService domain.GalleryService, logger logger.Logger) *GalleryHandler {
	return &GalleryHandler{
		service: galleryService,
		logger:  logger,
	}
}

// RegisterRoutes registers the RPC-style gallery endpoints
func (h *GalleryHandler) RegisterRoutes(mux *http.ServeMux, requireAdmin func(http.Handler) http.Handler) {
	mux.Handle("/api/gallery.list", http.HandlerFunc(h.HandleList))
	mux.Handle("/api/gallery.listAll", requireAdmin(http.HandlerFunc(h.HandleListAll)))
	mux.Handle("/api/gallery.create", requireAdmin(http.HandlerFunc(h.HandleCreate)))
	mux.Handle("/api/gallery.update", requireAdmin(http.HandlerFunc(h.HandleUpdate)))
	mux.Handle("/api/gallery.delete", requireAdmin(http.HandlerFunc(h.HandleDelete)))
	mux.Handle("/api/gallery.toggleActive", requireAdmin(http.HandlerFunc(h.HandleToggleActive)))
}

// HandleList handles the public list request (GET); only active items
func (h *GalleryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items, err := h.service.List(r.Context(), true)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list gallery items")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

// HandleListAll handles the admin list request including hidden items (GET)
func (h *GalleryHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items, err := h.service.List(r.Context(), false)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list gallery items")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

// HandleCreate handles the admin create request (POST)
func (h *GalleryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var item domain.GalleryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), &item)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to create gallery item")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"item": created,
	})
}

// HandleUpdate handles the admin update request (POST)
func (h *GalleryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var item domain.GalleryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if item.ID <= 0 {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), &item)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to update gallery item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"item": updated,
	})
}

// HandleDelete handles the admin delete request (POST)
func (h *GalleryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.Delete(r.Context(), req.ID); err != nil {
		writeDomainError(w, h.logger, err, "Failed to delete gallery item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// HandleToggleActive handles the admin visibility flip (POST)
func (h *GalleryHandler) HandleToggleActive(w http.ResponseWriter, r *http.Request) {
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

	item, err := h.service.ToggleActive(r.Context(), req.ID)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to toggle gallery item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"item": item,
	})
}
