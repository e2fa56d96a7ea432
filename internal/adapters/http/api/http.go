// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/atlasbio/atlas/internal/adapters/repository"
	"github.com/atlasbio/atlas/internal/adapters/upstream/fmp"
	service "github.com/atlasbio/atlas/internal/app"
	"github.com/atlasbio/atlas/internal/domain/finance"
	"github.com/atlasbio/atlas/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Upstream aggregation operations.
	FinancialProfile(ctx context.Context, ticker string) (finance.Profile, error)
	SearchSymbols(ctx context.Context, query string) ([]types.SearchResult, error)
	ClinicalTrials(ctx context.Context, companyName string) ([]types.ClinicalTrial, error)
	Molecule(ctx context.Context, compoundID string) (types.MoleculeData, error)
	RankCompany(ctx context.Context, in types.RankingInput) (types.RankingResult, error)

	// Company store operations.
	ListCompanies(ctx context.Context) []types.Company
	GetCompany(ctx context.Context, id string) (types.Company, error)
	CreateCompany(ctx context.Context, in types.CompanyInput) (types.Company, error)
	UpdateCompany(ctx context.Context, id string, upd types.CompanyUpdate) (types.Company, error)
	DeleteCompany(ctx context.Context, id string) (types.Company, error)
	ClearCompanies(ctx context.Context) int

	// Development helpers.
	MockCompanies(ctx context.Context) []types.MockCompany
	Uptime() time.Duration
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	rootHandler      *RootHandler
	financeHandler   *FinanceHandler
	trialsHandler    *TrialsHandler
	moleculesHandler *MoleculesHandler
	rankingHandler   *RankingHandler
	companiesHandler *CompaniesHandler
	mockHandler      *MockHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(deps),
		rootHandler:      NewRootHandler(),
		financeHandler:   NewFinanceHandler(deps),
		trialsHandler:    NewTrialsHandler(deps),
		moleculesHandler: NewMoleculesHandler(deps),
		rankingHandler:   NewRankingHandler(deps),
		companiesHandler: NewCompaniesHandler(deps),
		mockHandler:      NewMockHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/health", MetricsMiddleware(s.healthHandler.HandleHealth, "health"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/api/finance/profile/", MetricsMiddleware(s.financeHandler.HandleGetProfile, "finance_profile"))
	mux.HandleFunc("/api/finance/search", MetricsMiddleware(s.financeHandler.HandleSearch, "finance_search"))
	mux.HandleFunc("/api/clinical-trials/", MetricsMiddleware(s.trialsHandler.HandleGetTrials, "clinical_trials"))
	mux.HandleFunc("/api/molecules/", MetricsMiddleware(s.moleculesHandler.HandleGetMolecule, "molecules"))
	mux.HandleFunc("/api/ranking/company", MetricsMiddleware(s.rankingHandler.HandleRankCompany, "ranking"))
	mux.HandleFunc("/api/companies", MetricsMiddleware(s.companiesHandler.HandleCollection, "companies"))
	mux.HandleFunc("/api/companies/", MetricsMiddleware(s.companiesHandler.HandleItem, "companies_item"))
	mux.HandleFunc("/api/mock/companies", MetricsMiddleware(s.mockHandler.HandleMockCompanies, "mock_companies"))
	mux.HandleFunc("/", MetricsMiddleware(s.rootHandler.HandleRoot, "root"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type rateLimitResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates service-layer sentinels into the error
// taxonomy: not-found, conflict, configuration, upstream.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, fmp.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, repository.ErrDuplicateTicker):
		writeError(w, http.StatusBadRequest, "conflict", err)
	case errors.Is(err, fmp.ErrNoAPIKey):
		writeError(w, http.StatusInternalServerError, "config_error", err)
	case errors.Is(err, service.ErrTrialsUnavailable), errors.Is(err, service.ErrMoleculeUnavailable):
		writeError(w, http.StatusInternalServerError, "upstream_error", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
