package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// TeamHandler exposes the public team/portfolio reads and the admin CRUD
type TeamHandler struct {
	repo   domain.TeamRepository
	logger logger.Logger
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(repo domain.TeamRepository, logger logger.Logger) *TeamHandler {
	return &TeamHandler{
		repo:   repo,
		logger: logger,
	}
}

// RegisterRoutes registers the RPC-style team and portfolio endpoints
func (h *TeamHandler) RegisterRoutes(mux *http.ServeMux, requireAdmin func(http.Handler) http.Handler) {
	mux.Handle("/api/team.list", http.HandlerFunc(h.HandleListMembers))
	mux.Handle("/api/team.listAll", requireAdmin(http.HandlerFunc(h.HandleListAllMembers)))
	mux.Handle("/api/team.create", requireAdmin(http.HandlerFunc(h.HandleCreateMember)))
	mux.Handle("/api/team.update", requireAdmin(http.HandlerFunc(h.HandleUpdateMember)))
	mux.Handle("/api/team.delete", requireAdmin(http.HandlerFunc(h.HandleDeleteMember)))

	mux.Handle("/api/portfolioItems.list", http.HandlerFunc(h.HandleListPortfolioItems))
	mux.Handle("/api/portfolioItems.create", requireAdmin(http.HandlerFunc(h.HandleCreatePortfolioItem)))
	mux.Handle("/api/portfolioItems.update", requireAdmin(http.HandlerFunc(h.HandleUpdatePortfolioItem)))
	mux.Handle("/api/portfolioItems.delete", requireAdmin(http.HandlerFunc(h.HandleDeletePortfolioItem)))
}

// HandleListMembers handles the public team list (GET); only active members
func (h *TeamHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	members, err := h.repo.ListMembers(r.Context(), true)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list team members")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"members": members,
	})
}

// HandleListAllMembers handles the admin team list (GET)
func (h *TeamHandler) HandleListAllMembers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	members, err := h.repo.ListMembers(r.Context(), false)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list team members")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"members": members,
	})
}

// HandleCreateMember handles the admin member create request (POST)
func (h *TeamHandler) HandleCreateMember(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var member domain.TeamMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := member.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create team member")
		return
	}

	if err := h.repo.CreateMember(r.Context(), &member); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create team member")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"member": member,
	})
}

// HandleUpdateMember handles the admin member update request (POST)
func (h *TeamHandler) HandleUpdateMember(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var member domain.TeamMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if member.ID <= 0 {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}
	if err := member.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update team member")
		return
	}

	if err := h.repo.UpdateMember(r.Context(), &member); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update team member")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"member": member,
	})
}

// HandleDeleteMember handles the admin member delete request (POST);
// portfolio items cascade
func (h *TeamHandler) HandleDeleteMember(w http.ResponseWriter, r *http.Request) {
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

	if err := h.repo.DeleteMember(r.Context(), req.ID); err != nil {
		writeDomainError(w, h.logger, err, "Failed to delete team member")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// HandleListPortfolioItems handles the public portfolio list for one member (GET)
func (h *TeamHandler) HandleListPortfolioItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	teamMemberID, err := strconv.ParseInt(r.URL.Query().Get("team_member_id"), 10, 64)
	if err != nil || teamMemberID <= 0 {
		WriteJSONError(w, "team_member_id is required", http.StatusBadRequest)
		return
	}

	items, err := h.repo.ListPortfolioItems(r.Context(), teamMemberID)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list portfolio items")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

// HandleCreatePortfolioItem handles the admin portfolio create request (POST)
func (h *TeamHandler) HandleCreatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var item domain.PortfolioItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := item.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create portfolio item")
		return
	}

	if err := h.repo.CreatePortfolioItem(r.Context(), &item); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create portfolio item")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"item": item,
	})
}

// HandleUpdatePortfolioItem handles the admin portfolio update request (POST)
func (h *TeamHandler) HandleUpdatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var item domain.PortfolioItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if item.ID <= 0 {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}
	if err := item.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update portfolio item")
		return
	}

	if err := h.repo.UpdatePortfolioItem(r.Context(), &item); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update portfolio item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"item": item,
	})
}

// HandleDeletePortfolioItem handles the admin portfolio delete request (POST)
func (h *TeamHandler) HandleDeletePortfolioItem(w http.ResponseWriter, r *http.Request) {
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

	if err := h.repo.DeletePortfolioItem(r.Context(), req.ID); err != nil {
		writeDomainError(w, h.logger, err, "Failed to delete portfolio item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
