package http

import (
	"encoding/json"
	"net/http"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// GiftCertificateHandler exposes the gift certificate endpoints. Issuance
// and management are admin-gated; redemption is open so the checkout flow
// can apply a certificate without a session.
type GiftCertificateHandler struct {
	service domain.GiftCertificateService
	logger  logger.Logger
}

// NewGiftCertificateHandler creates a new gift certificate handler
func NewGiftCertificateHandler(certService domain.GiftCertificateService, logger logger.Logger) *GiftCertificateHandler {
	return &GiftCertificateHandler{
		service: certService,
		logger:  logger,
	}
}

// RegisterRoutes registers the RPC-style gift certificate endpoints
func (h *GiftCertificateHandler) RegisterRoutes(mux *http.ServeMux, requireAdmin func(http.Handler) http.Handler) {
	mux.Handle("/api/giftCertificates.create", requireAdmin(http.HandlerFunc(h.HandleCreate)))
	mux.Handle("/api/giftCertificates.list", requireAdmin(http.HandlerFunc(h.HandleList)))
	mux.Handle("/api/giftCertificates.update", requireAdmin(http.HandlerFunc(h.HandleUpdate)))
	mux.Handle("/api/giftCertificates.redeem", http.HandlerFunc(h.HandleRedeem))
}

// HandleCreate handles the issuance request (POST)
func (h *GiftCertificateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateGiftCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cert, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to create gift certificate")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"gift_certificate": cert,
	})
}

// HandleList handles the list request (GET)
func (h *GiftCertificateHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	certs, err := h.service.List(r.Context())
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to list gift certificates")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"gift_certificates": certs,
	})
}

// HandleUpdate handles the manual balance/status override request (POST)
func (h *GiftCertificateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateGiftCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cert, err := h.service.Update(r.Context(), &req)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to update gift certificate")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"gift_certificate": cert,
	})
}

// HandleRedeem handles the redemption request (POST)
func (h *GiftCertificateHandler) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.RedeemGiftCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cert, err := h.service.Redeem(r.Context(), &req)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to redeem gift certificate")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"gift_certificate": cert,
	})
}
