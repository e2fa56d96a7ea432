// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// TrialsHandler handles clinical-trials requests.
type TrialsHandler struct {
	deps Dependencies
}

// NewTrialsHandler creates a new trials handler.
func NewTrialsHandler(deps Dependencies) *TrialsHandler {
	return &TrialsHandler{deps: deps}
}

// HandleGetTrials handles GET /api/clinical-trials/{company_name} requests.
func (h *TrialsHandler) HandleGetTrials(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	companyName := strings.TrimPrefix(r.URL.Path, "/api/clinical-trials/")
	if companyName == "" || strings.Contains(companyName, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	trials, err := h.deps.ClinicalTrials(r.Context(), companyName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trials)
}
