// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// RankingHandler handles company-ranking requests.
type RankingHandler struct {
	deps Dependencies
}

// NewRankingHandler creates a new ranking handler.
func NewRankingHandler(deps Dependencies) *RankingHandler {
	return &RankingHandler{deps: deps}
}

// rankingRequest mirrors the payload for POST /api/ranking/company.
type rankingRequest struct {
	CompanyName  string                 `json:"company_name"`
	Ticker       string                 `json:"ticker"`
	UserCriteria map[string]interface{} `json:"user_criteria"`
	UserWeights  map[string]float64     `json:"user_weights"`
}

func (r rankingRequest) validate() error {
	switch {
	case strings.TrimSpace(r.CompanyName) == "":
		return errors.New("missing company_name")
	case strings.TrimSpace(r.Ticker) == "":
		return errors.New("missing ticker")
	}
	return nil
}

// HandleRankCompany handles POST /api/ranking/company requests.
func (h *RankingHandler) HandleRankCompany(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req rankingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	result, err := h.deps.RankCompany(r.Context(), toRankingInput(req))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
