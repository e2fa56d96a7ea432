// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// RootHandler serves the service metadata document.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot handles GET / requests. The mux routes every unmatched path
// here, so anything but the bare root is a 404.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Atlas Company Analyzer API",
		"version": Version,
		"health":  "/health",
		"metrics": "/metrics",
		"features": []string{
			"Financial Data (FMP API)",
			"Clinical Trials (ClinicalTrials.gov)",
			"Molecule Data (ChEMBL)",
			"AI Company Ranking",
			"Company Management",
		},
	})
}
