package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// BlogHandler exposes the public blog reads and the admin CRUD
type BlogHandler struct {
	repo   domain.BlogRepository
	logger logger.Logger
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(repo domain.BlogRepository, logger logger.Logger) *BlogHandler {
	return &BlogHandler{
		repo:   repo,
		logger: logger,
	}
}

// RegisterRoutes registers the RPC-style blog endpoints
func (h *BlogHandler) RegisterRoutes(mux *http.ServeMux, requireAdmin func(http.Handler) http.Handler) {
	mux.Handle("/api/blogPosts.list", http.HandlerFunc(h.HandleList))
	mux.Handle("/api/blogPosts.get", http.HandlerFunc(h.HandleGet))
	mux.Handle("/api/blogPosts.listAll", requireAdmin(http.HandlerFunc(h.HandleListAll)))
	mux.Handle("/api/blogPosts.create", requireAdmin(http.HandlerFunc(h.HandleCreate)))
	mux.Handle("/api/blogPosts.update", requireAdmin(http.HandlerFunc(h.HandleUpdate)))
	mux.Handle("/api/blogPosts.delete", requireAdmin(http.HandlerFunc(h.HandleDelete)))
	mux.Handle("/api/blogPosts.publish", requireAdmin(http.HandlerFunc(h.HandlePublish)))
	mux.Handle("/api/blogPosts.unpublish", requireAdmin(http.HandlerFunc(h.HandleUnpublish)))
}

// HandleList handles the public list request (GET); only published posts
func (h *BlogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	posts, err := h.repo.List(r.Context(), true)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list blog posts")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
	})
}

// HandleListAll handles the admin list request including drafts (GET)
func (h *BlogHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	posts, err := h.repo.List(r.Context(), false)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list blog posts")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
	})
}

// HandleGet handles the public post read by id or slug (GET). Drafts are not
// visible here; they 404 like a missing post.
func (h *BlogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idParam := r.URL.Query().Get("id")
	slug := r.URL.Query().Get("slug")
	if idParam == "" && slug == "" {
		WriteJSONError(w, "either id or slug is required", http.StatusBadRequest)
		return
	}

	var post *domain.BlogPost
	var err error
	if idParam != "" {
		id, parseErr := strconv.ParseInt(idParam, 10, 64)
		if parseErr != nil {
			WriteJSONError(w, "invalid id", http.StatusBadRequest)
			return
		}
		post, err = h.repo.Get(r.Context(), id)
	} else {
		post, err = h.repo.GetBySlug(r.Context(), slug)
	}
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to get blog post")
		return
	}

	if !post.IsPublished() {
		WriteJSONError(w, "blog post not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"post": post,
	})
}

// HandleCreate handles the admin create request (POST)
func (h *BlogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var post domain.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := post.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create blog post")
		return
	}

	if err := h.repo.Create(r.Context(), &post); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create blog post")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"post": post,
	})
}

// HandleUpdate handles the admin update request (POST)
func (h *BlogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var post domain.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if post.ID <= 0 {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}
	if err := post.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update blog post")
		return
	}

	if err := h.repo.Update(r.Context(), &post); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update blog post")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"post": post,
	})
}

// HandlePublish stamps a post's published_at, making it publicly visible
// (POST). Republishing an already-published post keeps its original date.
func (h *BlogHandler) HandlePublish(w http.ResponseWriter, r *http.Request) {
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

	post, err := h.repo.Get(r.Context(), req.ID)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to publish blog post")
		return
	}

	if post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
		if err := h.repo.Update(r.Context(), post); err != nil {
			writeDomainError(w, h.logger, err, "Failed to publish blog post")
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"post": post,
	})
}

// HandleUnpublish clears a post's published_at, returning it to draft (POST)
func (h *BlogHandler) HandleUnpublish(w http.ResponseWriter, r *http.Request) {
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

	post, err := h.repo.Get(r.Context(), req.ID)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to unpublish blog post")
		return
	}

	if post.PublishedAt != nil {
		post.PublishedAt = nil
		if err := h.repo.Update(r.Context(), post); err != nil {
			writeDomainError(w, h.logger, err, "Failed to unpublish blog post")
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"post": post,
	})
}

// HandleDelete handles the admin delete request (POST)
func (h *BlogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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
		writeDomainError(w, h.logger, err, "Failed to delete blog post")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
