// Package types contains common types used across the application
package types

import "time"

// Company is a record held by the in-memory company store.
type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Ticker      string    `json:"ticker"`
	Description string    `json:"description"`
	CompanyType string    `json:"company_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompanyInput carries the fields accepted when creating a company.
type CompanyInput struct {
	Name        string `json:"name"`
	Ticker      string `json:"ticker"`
	Description string `json:"description"`
	CompanyType string `json:"company_type"`
}

// CompanyUpdate carries a partial update; nil fields are left untouched.
type CompanyUpdate struct {
	Name        *string `json:"name"`
	Ticker      *string `json:"ticker"`
	Description *string `json:"description"`
	CompanyType *string `json:"company_type"`
}

// ClinicalTrial mirrors one study returned by the clinical-trials registry.
type ClinicalTrial struct {
	Phase         string   `json:"phase"`
	Title         string   `json:"title"`
	Interventions []string `json:"interventions"`
	Enrollment    int      `json:"enrollment"`
	Status        string   `json:"status"`
	Sponsor       string   `json:"sponsor"`
}

// MoleculeData summarizes a compound lookup.
type MoleculeData struct {
	DistinctTargets    int            `json:"distinct_targets"`
	MaxPhaseByMolecule map[string]int `json:"max_phase_by_molecule"`
}

// RankingInput is the payload accepted by the ranking endpoint.
type RankingInput struct {
	CompanyName  string                 `json:"company_name"`
	Ticker       string                 `json:"ticker"`
	UserCriteria map[string]interface{} `json:"user_criteria,omitempty"`
	UserWeights  map[string]float64     `json:"user_weights,omitempty"`
}

// RankingResult holds the two bounded scores plus a rationale.
// X is maturity, Y is differentiation; both live in [0,1].
type RankingResult struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Rationale string  `json:"rationale"`
}

// SearchResult is one entry from the symbol-search provider.
type SearchResult struct {
	Symbol            string `json:"symbol"`
	Name              string `json:"name"`
	Exchange          string `json:"exchange"`
	ExchangeShortName string `json:"exchangeShortName"`
	Type              string `json:"type"`
}

// MockCompany is the development-only company shape served by
// /api/mock/companies. It is distinct from the store's Company entity.
type MockCompany struct {
	Name       string   `json:"name"`
	Ticker     string   `json:"ticker"`
	DomainTags []string `json:"domainTags"`
	MarketCap  float64  `json:"marketCap"`
	Employees  int      `json:"employees"`
	RDExpense  float64  `json:"rdExpense"`
	CAGR       float64  `json:"cagr"`
}
