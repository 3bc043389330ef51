package http

import "net/http"

// RootHandler serves the health/version endpoint
type RootHandler struct {
	version string
}

// NewRootHandler creates a new root handler
func NewRootHandler(version string) *RootHandler {
	return &RootHandler{version: version}
}

// RegisterRoutes registers the health endpoint
func (h *RootHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/health", http.HandlerFunc(h.HandleHealth))
}

// HandleHealth reports liveness and the running version (GET)
func (h *RootHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}
