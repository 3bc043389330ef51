package http

import (
	"encoding/json"
	"net/http"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// ServiceHandler exposes the offered-services list and the admin CRUD
type ServiceHandler struct {
	repo   domain.ServiceRepository
	logger logger.Logger
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(repo domain.ServiceRepository, logger logger.Logger) *ServiceHandler {
	return &ServiceHandler{
		repo:   repo,
		logger: logger,
	}
}

// RegisterRoutes registers the RPC-style service endpoints
func (h *ServiceHandler) RegisterRoutes(mux *http.ServeMux, requireAdmin func(http.Handler) http.Handler) {
	mux.Handle("/api/services.list", http.HandlerFunc(h.HandleList))
	mux.Handle("/api/services.listAll", requireAdmin(http.HandlerFunc(h.HandleListAll)))
	mux.Handle("/api/services.create", requireAdmin(http.HandlerFunc(h.HandleCreate)))
	mux.Handle("/api/services.update", requireAdmin(http.HandlerFunc(h.HandleUpdate)))
	mux.Handle("/api/services.delete", requireAdmin(http.HandlerFunc(h.HandleDelete)))
}

// HandleList handles the public list request (GET); only active services
func (h *ServiceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	services, err := h.repo.List(r.Context(), true)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list services")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"services": services,
	})
}

// HandleListAll handles the admin list request including inactive services (GET)
func (h *ServiceHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	services, err := h.repo.List(r.Context(), false)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list services")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"services": services,
	})
}

// HandleCreate handles the admin create request (POST)
func (h *ServiceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var svc domain.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := svc.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create service")
		return
	}

	if err := h.repo.Create(r.Context(), &svc); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create service")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"service": svc,
	})
}

// HandleUpdate handles the admin update request (POST)
func (h *ServiceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var svc domain.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if svc.ID <= 0 {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}
	if err := svc.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update service")
		return
	}

	if err := h.repo.Update(r.Context(), &svc); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update service")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service": svc,
	})
}

// HandleDelete handles the admin delete request (POST)
func (h *ServiceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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
		writeDomainError(w, h.logger, err, "Failed to delete service")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
