package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// ProductHandler exposes the public catalog reads and the admin catalog CRUD.
// The CRUD is thin enough that the handler talks to the repository directly.
type ProductHandler struct {
	repo   domain.ProductRepository
	logger logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(repo domain.ProductRepository, logger logger.Logger) *ProductHandler {
	return &ProductHandler{
		repo:   repo,
		logger: logger,
	}
}

// RegisterRoutes registers the RPC-style product and variant endpoints
func (h *ProductHandler) RegisterRoutes(mux *http.ServeMux, requireAdmin func(http.Handler) http.Handler) {
	mux.Handle("/api/products.list", http.HandlerFunc(h.HandleList))
	mux.Handle("/api/products.get", http.HandlerFunc(h.HandleGet))
	mux.Handle("/api/products.listAll", requireAdmin(http.HandlerFunc(h.HandleListAll)))
	mux.Handle("/api/products.getById", requireAdmin(http.HandlerFunc(h.HandleGetByID)))
	mux.Handle("/api/products.create", requireAdmin(http.HandlerFunc(h.HandleCreate)))
	mux.Handle("/api/products.update", requireAdmin(http.HandlerFunc(h.HandleUpdate)))
	mux.Handle("/api/products.delete", requireAdmin(http.HandlerFunc(h.HandleDelete)))

	mux.Handle("/api/productVariants.create", requireAdmin(http.HandlerFunc(h.HandleCreateVariant)))
	mux.Handle("/api/productVariants.update", requireAdmin(http.HandlerFunc(h.HandleUpdateVariant)))
	mux.Handle("/api/productVariants.delete", requireAdmin(http.HandlerFunc(h.HandleDeleteVariant)))
}

// HandleList handles the public catalog list (GET); only active products and
// variants are returned
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products, err := h.repo.ListProducts(r.Context(), true)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list products")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
	})
}

// HandleListAll handles the admin catalog list including inactive entries (GET)
func (h *ProductHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products, err := h.repo.ListProducts(r.Context(), false)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list products")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
	})
}

// HandleGet handles the public product detail by slug (GET). Inactive
// products are indistinguishable from missing ones.
func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := r.URL.Query().Get("slug")
	if slug == "" {
		WriteJSONError(w, "slug is required", http.StatusBadRequest)
		return
	}

	product, err := h.repo.GetProductBySlug(r.Context(), slug)
	if err == nil && !product.IsActive {
		err = domain.NewNotFoundError("product", slug)
	}
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to get product")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"product": product,
	})
}

// HandleGetByID handles the admin product detail by id (GET); inactive
// products and variants are included
func (h *ProductHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}

	product, err := h.repo.GetProduct(r.Context(), id)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to get product")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"product": product,
	})
}

// HandleCreate handles the admin product create request (POST)
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := product.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create product")
		return
	}

	if err := h.repo.CreateProduct(r.Context(), &product); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create product")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"product": product,
	})
}

// HandleUpdate handles the admin product update request (POST)
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if product.ID <= 0 {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}
	if err := product.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update product")
		return
	}

	if err := h.repo.UpdateProduct(r.Context(), &product); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update product")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"product": product,
	})
}

// HandleDelete handles the admin product delete request (POST); variants
// cascade at the DDL level
func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.repo.DeleteProduct(r.Context(), req.ID); err != nil {
		writeDomainError(w, h.logger, err, "Failed to delete product")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// HandleCreateVariant handles the admin variant create request (POST)
func (h *ProductHandler) HandleCreateVariant(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var variant domain.ProductVariant
	if err := json.NewDecoder(r.Body).Decode(&variant); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := variant.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create variant")
		return
	}

	if err := h.repo.CreateVariant(r.Context(), &variant); err != nil {
		writeDomainError(w, h.logger, err, "Failed to create variant")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"variant": variant,
	})
}

// HandleUpdateVariant handles the admin variant update request (POST)
func (h *ProductHandler) HandleUpdateVariant(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var variant domain.ProductVariant
	if err := json.NewDecoder(r.Body).Decode(&variant); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if variant.ID <= 0 {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}
	if err := variant.Validate(); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update variant")
		return
	}

	if err := h.repo.UpdateVariant(r.Context(), &variant); err != nil {
		writeDomainError(w, h.logger, err, "Failed to update variant")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"variant": variant,
	})
}

// HandleDeleteVariant handles the admin variant delete request (POST)
func (h *ProductHandler) HandleDeleteVariant(w http.ResponseWriter, r *http.Request) {
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

	if err := h.repo.DeleteVariant(r.Context(), req.ID); err != nil {
		writeDomainError(w, h.logger, err, "Failed to delete variant")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
