// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// MoleculesHandler handles molecule lookup requests.
type MoleculesHandler struct {
	deps Dependencies
}

// NewMoleculesHandler creates a new molecules handler.
func NewMoleculesHandler(deps Dependencies) *MoleculesHandler {
	return &MoleculesHandler{deps: deps}
}

// HandleGetMolecule handles GET /api/molecules/{compound_id} requests.
func (h *MoleculesHandler) HandleGetMolecule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	compoundID := strings.TrimPrefix(r.URL.Path, "/api/molecules/")
	if compoundID == "" || strings.Contains(compoundID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	data, err := h.deps.Molecule(r.Context(), compoundID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}
