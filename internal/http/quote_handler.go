package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// QuoteHandler exposes the public quote intake and the admin quote workflow
type QuoteHandler struct {
	service domain.QuoteService
	logger  logger.Logger
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService domain.QuoteService, logger logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		service: quoteService,
		logger:  logger,
	}
}

// RegisterRoutes registers the RPC-style quote endpoints. Submit is public;
// everything else is admin-gated.
func (h *QuoteHandler) RegisterRoutes(mux *http.ServeMux, requireAdmin func(http.Handler) http.Handler) {
	mux.Handle("/api/quotes.submit", http.HandlerFunc(h.HandleSubmit))
	mux.Handle("/api/quotes.list", requireAdmin(http.HandlerFunc(h.HandleList)))
	mux.Handle("/api/quotes.get", requireAdmin(http.HandlerFunc(h.HandleGet)))
	mux.Handle("/api/quotes.updateStatus", requireAdmin(http.HandlerFunc(h.HandleUpdateStatus)))
}

// HandleSubmit handles the public quote submission (POST)
func (h *QuoteHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.SubmitQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	quote, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to submit quote")
		return
	}

	// the confirmation page only needs the reference id
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"quoteId": quote.ID,
	})
}

// HandleList handles the admin quote list request (GET)
func (h *QuoteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := domain.QuoteListFilter{}
	if status := r.URL.Query().Get("status"); status != "" {
		qs := domain.QuoteStatus(status)
		filter.Status = &qs
	}
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	filter.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	quotes, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list quotes")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"quotes": quotes,
	})
}

// HandleGet handles the admin quote detail request (GET)
func (h *QuoteHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}

	quote, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to get quote")
		return
	}

	writeJSON(w, http.StatusOK, quote)
}

// HandleUpdateStatus handles the admin status change request (POST)
func (h *QuoteHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateQuoteStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	quote, err := h.service.UpdateStatus(r.Context(), &req)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to update quote status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"quote": quote,
	})
}
