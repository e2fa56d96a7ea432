// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/atlasbio/atlas/internal/adapters/repository"
	"github.com/atlasbio/atlas/internal/adapters/upstream/chembl"
	"github.com/atlasbio/atlas/internal/adapters/upstream/ctgov"
	"github.com/atlasbio/atlas/internal/adapters/upstream/fmp"
	"github.com/atlasbio/atlas/internal/domain/finance"
	"github.com/atlasbio/atlas/internal/domain/mockdata"
	"github.com/atlasbio/atlas/internal/domain/ranking"
	"github.com/atlasbio/atlas/internal/domain/types"
	"github.com/atlasbio/atlas/pkg/logger"
	"github.com/atlasbio/atlas/pkg/metrics"
)

// FinancialProvider is the upstream surface for profiles, statements
// and symbol search.
type FinancialProvider interface {
	Configured() bool
	Profile(ctx context.Context, ticker string) (fmp.ProfileDocument, error)
	Statements(ctx context.Context, ticker string) ([]fmp.IncomeStatement, []fmp.BalanceSheet, error)
	Search(ctx context.Context, query string) ([]types.SearchResult, error)
}

// TrialsProvider is the upstream surface for clinical-trial search.
type TrialsProvider interface {
	StudiesBySponsor(ctx context.Context, companyName string) ([]types.ClinicalTrial, error)
}

// MoleculeProvider is the upstream surface for compound lookups.
type MoleculeProvider interface {
	Molecule(ctx context.Context, compoundID string) (types.MoleculeData, error)
}

// Service aggregates the upstream providers, the mock data, the company
// store and the ranking stub behind the HTTP API's dependency surface.
//
// The fallback policy is deliberately asymmetric: the financial and
// symbol-search paths degrade to mock data on upstream faults, while the
// clinical-trials and molecule paths surface a service error instead.
type Service struct {
	financial FinancialProvider
	trials    TrialsProvider
	molecules MoleculeProvider
	store     repository.Store
	scorer    *ranking.Scorer

	mockMode  bool
	startedAt time.Time

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMockMode forces synthetic responses for trials and molecules.
func WithMockMode(enabled bool) Option {
	return func(s *Service) {
		s.mockMode = enabled
	}
}

// WithFinancialProvider overrides the financial-data client.
func WithFinancialProvider(p FinancialProvider) Option {
	return func(s *Service) {
		if p != nil {
			s.financial = p
		}
	}
}

// WithTrialsProvider overrides the clinical-trials client.
func WithTrialsProvider(p TrialsProvider) Option {
	return func(s *Service) {
		if p != nil {
			s.trials = p
		}
	}
}

// WithMoleculeProvider overrides the molecule client.
func WithMoleculeProvider(p MoleculeProvider) Option {
	return func(s *Service) {
		if p != nil {
			s.molecules = p
		}
	}
}

// WithStore overrides the company store.
func WithStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// New constructs a Service. fmpAPIKey may be empty, which disables the
// live financial and symbol-search paths.
func New(fmpAPIKey string, opts ...Option) *Service {
	s := &Service{
		financial: fmp.NewClient(fmpAPIKey),
		trials:    ctgov.NewClient(),
		molecules: chembl.NewClient(),
		store:     repository.NewMemStore(),
		mockMode:  true,
		startedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	s.scorer = ranking.NewScorer(s.mockMode)
	return s
}

// FinancialProfile returns the normalized profile for ticker. A missing
// API key or an empty profile result surfaces as an error; any other
// upstream fault degrades to the deterministic mock record.
func (s *Service) FinancialProfile(ctx context.Context, ticker string) (finance.Profile, error) {
	if !s.financial.Configured() {
		return finance.Profile{}, fmp.ErrNoAPIKey
	}

	doc, err := s.financial.Profile(ctx, ticker)
	if err != nil {
		if errors.Is(err, fmp.ErrNotFound) {
			return finance.Profile{}, err
		}
		s.logger.Error(ctx, "profile fetch failed; falling back to mock data",
			logger.String("ticker", ticker), logger.Error(err))
		metrics.RecordMockFallback("fmp")
		return mockdata.Profile(ticker), nil
	}

	income, balance, err := s.financial.Statements(ctx, ticker)
	if err != nil {
		s.logger.Error(ctx, "statement fetch failed; falling back to mock data",
			logger.String("ticker", ticker), logger.Error(err))
		metrics.RecordMockFallback("fmp")
		return mockdata.Profile(ticker), nil
	}

	return normalize(doc, income, balance), nil
}

// normalize maps the raw provider documents into the internal schema and
// computes the derived fields.
func normalize(doc fmp.ProfileDocument, income []fmp.IncomeStatement, balance []fmp.BalanceSheet) finance.Profile {
	var inc fmp.IncomeStatement
	if len(income) > 0 {
		inc = income[0]
	}
	var bal fmp.BalanceSheet
	if len(balance) > 0 {
		bal = balance[0]
	}

	p := finance.Profile{
		CompanyName:   doc.CompanyName,
		Sector:        doc.Sector,
		Industry:      doc.Industry,
		Employees:     doc.Employees(),
		Price:         doc.Price,
		MarketCap:     doc.MarketCap,
		Beta:          doc.Beta,
		Volume:        doc.Volume,
		AverageVolume: doc.AverageVolume,

		Revenue:    inc.Revenue,
		NetIncome:  inc.NetIncome,
		EPS:        inc.EPS,
		EPSDiluted: inc.EPSDiluted,
		PERatio:    finance.PERatio(doc.Price, inc.EPS),

		TotalDebt:       bal.TotalDebt,
		Cash:            bal.Cash,
		EnterpriseValue: finance.EnterpriseValue(doc.MarketCap, bal.TotalDebt, bal.Cash),

		RDExpense:       inc.RDExpense,
		GrossProfit:     inc.GrossProfit,
		OperatingIncome: inc.OperatingIncome,
		EBITDA:          inc.EBITDA,
		EBIT:            inc.EBIT,
	}

	// "Previous" is the second-most-recent statement; without one the
	// growth fields stay nil. CAGR is never computed on the live path.
	if len(income) > 1 {
		p.RevenueGrowth = finance.Growth(inc.Revenue, income[1].Revenue)
		p.NetIncomeGrowth = finance.Growth(inc.NetIncome, income[1].NetIncome)
	}
	return p
}

// SearchSymbols searches the provider; any upstream fault yields the
// fixed placeholder entry rather than an error or an empty list.
func (s *Service) SearchSymbols(ctx context.Context, query string) ([]types.SearchResult, error) {
	if !s.financial.Configured() {
		return nil, fmp.ErrNoAPIKey
	}

	results, err := s.financial.Search(ctx, query)
	if err != nil {
		s.logger.Error(ctx, "symbol search failed; returning placeholder result",
			logger.String("query", query), logger.Error(err))
		metrics.RecordMockFallback("fmp")
		return mockdata.SearchResults(), nil
	}
	return results, nil
}

// ClinicalTrials returns studies sponsored by companyName. Outside mock
// mode an upstream fault is surfaced; there is no mock substitution on
// this path.
func (s *Service) ClinicalTrials(ctx context.Context, companyName string) ([]types.ClinicalTrial, error) {
	if s.mockMode {
		return []types.ClinicalTrial{mockdata.Trial(companyName)}, nil
	}

	trials, err := s.trials.StudiesBySponsor(ctx, companyName)
	if err != nil {
		s.logger.Error(ctx, "clinical trials fetch failed",
			logger.String("company", companyName), logger.Error(err))
		return nil, ErrTrialsUnavailable
	}
	return trials, nil
}

// Molecule returns the compound record. Outside mock mode an upstream
// fault is surfaced, mirroring the clinical-trials behavior.
func (s *Service) Molecule(ctx context.Context, compoundID string) (types.MoleculeData, error) {
	if s.mockMode {
		return mockdata.Molecule(compoundID), nil
	}

	data, err := s.molecules.Molecule(ctx, compoundID)
	if err != nil {
		s.logger.Error(ctx, "molecule fetch failed",
			logger.String("compound", compoundID), logger.Error(err))
		return types.MoleculeData{}, ErrMoleculeUnavailable
	}
	return data, nil
}

// RankCompany returns the placeholder ranking scores.
func (s *Service) RankCompany(ctx context.Context, in types.RankingInput) (types.RankingResult, error) {
	return s.scorer.Score(ctx, in)
}

// ListCompanies returns every stored company.
func (s *Service) ListCompanies(ctx context.Context) []types.Company {
	return s.store.List(ctx)
}

// GetCompany returns one stored company by id.
func (s *Service) GetCompany(ctx context.Context, id string) (types.Company, error) {
	return s.store.Get(ctx, id)
}

// CreateCompany stores a new company. When no description is supplied
// and the live financial path is available, the provider's company
// description is fetched best-effort before falling back to the default.
func (s *Service) CreateCompany(ctx context.Context, in types.CompanyInput) (types.Company, error) {
	if in.Description == "" && s.financial.Configured() && !s.mockMode {
		if doc, err := s.financial.Profile(ctx, in.Ticker); err == nil && doc.Description != "" {
			in.Description = doc.Description
		} else if err != nil {
			s.logger.Warn(ctx, "description fetch failed; using default",
				logger.String("ticker", in.Ticker), logger.Error(err))
		}
	}

	company, err := s.store.Create(ctx, in)
	if err != nil {
		return types.Company{}, err
	}
	s.logger.Info(ctx, "created company",
		logger.String("name", company.Name), logger.String("ticker", company.Ticker))
	metrics.UpdateCompanyCount(s.store.Count(ctx))
	return company, nil
}

// UpdateCompany applies a partial update to a stored company.
func (s *Service) UpdateCompany(ctx context.Context, id string, upd types.CompanyUpdate) (types.Company, error) {
	company, err := s.store.Update(ctx, id, upd)
	if err != nil {
		return types.Company{}, err
	}
	s.logger.Info(ctx, "updated company", logger.String("name", company.Name))
	return company, nil
}

// DeleteCompany removes a stored company and returns it.
func (s *Service) DeleteCompany(ctx context.Context, id string) (types.Company, error) {
	company, err := s.store.Delete(ctx, id)
	if err != nil {
		return types.Company{}, err
	}
	s.logger.Info(ctx, "deleted company", logger.String("name", company.Name))
	metrics.UpdateCompanyCount(s.store.Count(ctx))
	return company, nil
}

// ClearCompanies removes every stored company and returns the count removed.
func (s *Service) ClearCompanies(ctx context.Context) int {
	n := s.store.Clear(ctx)
	s.logger.Info(ctx, "cleared companies", logger.Int("count", n))
	metrics.UpdateCompanyCount(0)
	return n
}

// MockCompanies returns the static development company list.
func (s *Service) MockCompanies(ctx context.Context) []types.MockCompany {
	return mockdata.Companies()
}

// Uptime reports how long the service has been running.
func (s *Service) Uptime() time.Duration {
	return time.Since(s.startedAt)
}

// GetStats returns service statistics for the metrics updater.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"companyCount":  s.store.Count(context.Background()),
		"mockMode":      s.mockMode,
		"uptimeSeconds": s.Uptime().Seconds(),
	}
}
