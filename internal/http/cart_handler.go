package http

import (
	"encoding/json"
	"net/http"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// CartHandler exposes the public cart endpoints. Carts are keyed to a user id
// or an anonymous session id supplied by the storefront; no admin gate.
type CartHandler struct {
	service domain.CartService
	logger  logger.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService domain.CartService, logger logger.Logger) *CartHandler {
	return &CartHandler{
		service: cartService,
		logger:  logger,
	}
}

// RegisterRoutes registers the RPC-style cart endpoints
func (h *CartHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/cart.add", http.HandlerFunc(h.HandleAdd))
	mux.Handle("/api/cart.update", http.HandlerFunc(h.HandleUpdate))
	mux.Handle("/api/cart.list", http.HandlerFunc(h.HandleList))
	mux.Handle("/api/cart.clear", http.HandlerFunc(h.HandleClear))
}

// HandleAdd handles the add-to-cart request (POST)
func (h *CartHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.service.Add(r.Context(), &req)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to add cart item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"item": item,
	})
}

// HandleUpdate handles the quantity update request (POST). A quantity of zero
// or less deletes the row.
func (h *CartHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.service.Update(r.Context(), &req)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to update cart item")
		return
	}

	if item == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"deleted": true,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"item": item,
	})
}

// HandleList handles the cart listing request (GET)
func (h *CartHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	input := domain.CartOwnerInput{
		UserID:    r.URL.Query().Get("user_id"),
		SessionID: r.URL.Query().Get("session_id"),
	}

	items, err := h.service.List(r.Context(), input)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list cart items")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

// HandleClear handles the clear-cart request (POST)
func (h *CartHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Owner domain.CartOwnerInput `json:"owner"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Clear(r.Context(), req.Owner); err != nil {
		writeDomainError(w, h.logger, err, "Failed to clear cart")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
