package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// OrderHandler exposes checkout (public) and fulfillment (admin) endpoints
type OrderHandler struct {
	service domain.OrderService
	logger  logger.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService domain.OrderService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: orderService,
		logger:  logger,
	}
}

// RegisterRoutes registers the RPC-style order endpoints
func (h *OrderHandler) RegisterRoutes(mux *http.ServeMux, requireAdmin func(http.Handler) http.Handler) {
	mux.Handle("/api/orders.create", http.HandlerFunc(h.HandleCreate))
	mux.Handle("/api/orders.list", requireAdmin(http.HandlerFunc(h.HandleList)))
	mux.Handle("/api/orders.get", requireAdmin(http.HandlerFunc(h.HandleGet)))
	mux.Handle("/api/orders.update", requireAdmin(http.HandlerFunc(h.HandleUpdate)))
}

// HandleCreate handles the checkout request (POST)
func (h *OrderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to create order")
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// HandleList handles the admin order list request (GET)
func (h *OrderHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := domain.OrderListFilter{}
	if status := r.URL.Query().Get("status"); status != "" {
		os := domain.OrderStatus(status)
		filter.Status = &os
	}
	if payment := r.URL.Query().Get("payment_status"); payment != "" {
		ps := domain.PaymentStatus(payment)
		filter.PaymentStatus = &ps
	}
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	filter.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	orders, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list orders")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
	})
}

// HandleGet handles the admin order detail request (GET)
func (h *OrderHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}

	order, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to get order")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// HandleUpdate handles the admin fulfillment update request (POST)
func (h *OrderHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.service.Update(r.Context(), &req)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to update order")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"order": order,
	})
}
