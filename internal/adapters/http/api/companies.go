// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/atlasbio/atlas/internal/domain/types"
)

// Input length limits, matching the validation contract of the API.
const (
	maxNameLen        = 200
	maxTickerLen      = 10
	maxDescriptionLen = 1000
	maxCompanyTypeLen = 50
)

// CompaniesHandler handles CRUD requests over the in-memory store.
type CompaniesHandler struct {
	deps Dependencies
}

// NewCompaniesHandler creates a new companies handler.
func NewCompaniesHandler(deps Dependencies) *CompaniesHandler {
	return &CompaniesHandler{deps: deps}
}

// HandleCollection handles /api/companies requests:
// GET lists, POST creates, DELETE clears.
func (h *CompaniesHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.ListCompanies(r.Context()))
	case http.MethodPost:
		h.handleCreate(w, r)
	case http.MethodDelete:
		n := h.deps.ClearCompanies(r.Context())
		writeJSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("Cleared %d companies", n),
		})
	default:
		http.NotFound(w, r)
	}
}

// HandleItem handles /api/companies/{id} requests:
// GET reads, PUT updates, DELETE removes.
func (h *CompaniesHandler) HandleItem(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/companies/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		company, err := h.deps.GetCompany(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, company)
	case http.MethodPut:
		h.handleUpdate(w, r, id)
	case http.MethodDelete:
		company, err := h.deps.DeleteCompany(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Company deleted successfully",
			"company": company,
		})
	default:
		http.NotFound(w, r)
	}
}

func (h *CompaniesHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in types.CompanyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := validateInput(in); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	company, err := h.deps.CreateCompany(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, company)
}

func (h *CompaniesHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id string) {
	var upd types.CompanyUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := validateUpdate(upd); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	company, err := h.deps.UpdateCompany(r.Context(), id, upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func validateInput(in types.CompanyInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return errors.New("missing name")
	case len(in.Name) > maxNameLen:
		return fmt.Errorf("name exceeds %d characters", maxNameLen)
	case strings.TrimSpace(in.Ticker) == "":
		return errors.New("missing ticker")
	case len(in.Ticker) > maxTickerLen:
		return fmt.Errorf("ticker exceeds %d characters", maxTickerLen)
	case len(in.Description) > maxDescriptionLen:
		return fmt.Errorf("description exceeds %d characters", maxDescriptionLen)
	case len(in.CompanyType) > maxCompanyTypeLen:
		return fmt.Errorf("company_type exceeds %d characters", maxCompanyTypeLen)
	}
	return nil
}

func validateUpdate(upd types.CompanyUpdate) error {
	switch {
	case upd.Name != nil && strings.TrimSpace(*upd.Name) == "":
		return errors.New("name must not be empty")
	case upd.Name != nil && len(*upd.Name) > maxNameLen:
		return fmt.Errorf("name exceeds %d characters", maxNameLen)
	case upd.Ticker != nil && len(*upd.Ticker) > maxTickerLen:
		return fmt.Errorf("ticker exceeds %d characters", maxTickerLen)
	case upd.Description != nil && len(*upd.Description) > maxDescriptionLen:
		return fmt.Errorf("description exceeds %d characters", maxDescriptionLen)
	case upd.CompanyType != nil && len(*upd.CompanyType) > maxCompanyTypeLen:
		return fmt.Errorf("company_type exceeds %d characters", maxCompanyTypeLen)
	}
	return nil
}
