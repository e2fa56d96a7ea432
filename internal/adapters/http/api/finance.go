// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// FinanceHandler handles financial profile and symbol-search requests.
type FinanceHandler struct {
	deps Dependencies
}

// NewFinanceHandler creates a new finance handler.
func NewFinanceHandler(deps Dependencies) *FinanceHandler {
	return &FinanceHandler{deps: deps}
}

// HandleGetProfile handles GET /api/finance/profile/{ticker} requests.
func (h *FinanceHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ticker := strings.TrimPrefix(r.URL.Path, "/api/finance/profile/")
	if ticker == "" || strings.Contains(ticker, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	profile, err := h.deps.FinancialProfile(r.Context(), ticker)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleSearch handles GET /api/finance/search?query= requests.
func (h *FinanceHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	results, err := h.deps.SearchSymbols(r.Context(), query)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
