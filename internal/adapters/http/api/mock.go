// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// MockHandler serves the static development company list.
type MockHandler struct {
	deps Dependencies
}

// NewMockHandler creates a new mock-data handler.
func NewMockHandler(deps Dependencies) *MockHandler {
	return &MockHandler{deps: deps}
}

// HandleMockCompanies handles GET /api/mock/companies requests.
func (h *MockHandler) HandleMockCompanies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.MockCompanies(r.Context()))
}
