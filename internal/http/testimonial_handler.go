package http

import (
	"encoding/json"
	"net/http"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// TestimonialHandler exposes the public testimonial list and the admin CRUD
type TestimonialHandler struct {
	repo   domain.TestimonialRepository
	logger logger.Logger
}

// NewTestimonialHandler creates a new testimonial handler
func NewTestimonialHandler(repo domain.TestimonialRepository, logger logger.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		repo:   repo,
		logger: logger,
	}
}

// RegisterRoutes registers the RPC-style testimonial endpoints
func (h *TestimonialHandler) RegisterRoutes(mux *http.ServeMux, requireAdmin func(http.Handler) http.Handler) {
	mux.Handle("/api/testimonials.list", http.HandlerFunc(h.HandleList))
	mux.Handle("/api/testimonials.listAll", requireAdmin(http.HandlerFunc(h.HandleListAll)))
	mux.Handle("/api/testimonials.create", requireAdmin(http.HandlerFunc(h.HandleCreate)))
	mux.Handle("/api/testimonials.update", requireAdmin(http.HandlerFunc(h.HandleUpdate)))
	mux.Handle("/api/testimonials.delete", requireAdmin(http.HandlerFunc(h.HandleDelete)))
	mux.Handle("/api/testimonials.approve", requireAdmin(http.HandlerFunc(h.HandleApprove)))
}

// HandleList handles the public list request (GET); only approved entries
func (h *TestimonialHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	testimonials, err := h.repo.List(r.Context(), true)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list testimonials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"testimonials": testimonials,
	})
}

// HandleListAll handles the admin list request including unapproved entries (GET)
func (h *TestimonialHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	testimonials, err := h.repo.List(r.Context(), false)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list testimonials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"testimonials": testimonials,
	})
}

// HandleCreate handles the admin create request (POST)
func (h *TestimonialHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var testimonial domain.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := testimonial.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create testimonial")
		return
	}

	if err := h.repo.Create(r.Context(), &testimonial); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create testimonial")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"testimonial": testimonial,
	})
}

// HandleUpdate handles the admin update request (POST)
func (h *TestimonialHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var testimonial domain.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if testimonial.ID <= 0 {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}
	if err := testimonial.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update testimonial")
		return
	}

	if err := h.repo.Update(r.Context(), &testimonial); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update testimonial")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"testimonial": testimonial,
	})
}

// HandleApprove handles the admin approval request (POST). Approval is what
// makes a testimonial visible on the public list.
func (h *TestimonialHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
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

	testimonial, err := h.repo.Get(r.Context(), req.ID)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to approve testimonial")
		return
	}

	testimonial.IsApproved = true
	if err := h.repo.Update(r.Context(), testimonial); err != nil {
		writeDomainError(w, h.logger, err, "Failed to approve testimonial")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"testimonial": testimonial,
	})
}

// HandleDelete handles the admin delete request (POST)
func (h *TestimonialHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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
		writeDomainError(w, h.logger, err, "Failed to delete testimonial")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
