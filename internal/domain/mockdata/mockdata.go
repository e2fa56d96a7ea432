// Package mockdata supplies the deterministic synthetic records served
// when no provider key is configured, when mock mode is active, or as an
// error-path substitute for the financial and search integrations.
package mockdata

import (
	"fmt"
	"strings"

	"github.com/atlasbio/atlas/internal/domain/finance"
	"github.com/atlasbio/atlas/internal/domain/types"
)

// profiles holds the fully-populated example records keyed by ticker.
var profiles = map[string]finance.Profile{
	"PFE": {
		CompanyName:     "Pfizer Inc.",
		Sector:          "Healthcare",
		Industry:        "Drug Manufacturers - General",
		Employees:       81000,
		Price:           24.54,
		MarketCap:       139523397000,
		Beta:            0.44,
		Volume:          40849330,
		AverageVolume:   40776300,
		Revenue:         63627000000,
		NetIncome:       8020000000,
		EPS:             1.42,
		EPSDiluted:      1.41,
		PERatio:         17.31,
		TotalDebt:       63649000000,
		Cash:            1043000000,
		EnterpriseValue: 202129397000,
		RDExpense:       10738000000,
		GrossProfit:     41846000000,
		OperatingIncome: 16483000000,
		EBITDA:          18127000000,
		EBIT:            11114000000,
		CAGR:            finance.Float(0.12),
	},
	"LLY": {
		CompanyName:     "Eli Lilly and Company",
		Sector:          "Healthcare",
		Industry:        "Drug Manufacturers - General",
		Employees:       39000,
		Price:           580.25,
		MarketCap:       550000000000,
		Beta:            0.35,
		Volume:          2500000,
		AverageVolume:   2800000,
		Revenue:         28100000000,
		NetIncome:       5240000000,
		EPS:             5.48,
		EPSDiluted:      5.44,
		PERatio:         105.9,
		TotalDebt:       12000000000,
		Cash:            3000000000,
		EnterpriseValue: 559000000000,
		RDExpense:       7000000000,
		GrossProfit:     22000000000,
		OperatingIncome: 8500000000,
		EBITDA:          9500000000,
		EBIT:            8500000000,
		CAGR:            finance.Float(0.15),
	},
	"AZN": {
		CompanyName:     "AstraZeneca PLC",
		Sector:          "Healthcare",
		Industry:        "Drug Manufacturers - General",
		Employees:       76000,
		Price:           68.45,
		MarketCap:       210000000000,
		Beta:            0.65,
		Volume:          1500000,
		AverageVolume:   1800000,
		Revenue:         45000000000,
		NetIncome:       1200000000,
		EPS:             0.38,
		EPSDiluted:      0.37,
		PERatio:         180.1,
		TotalDebt:       28000000000,
		Cash:            8000000000,
		EnterpriseValue: 230000000000,
		RDExpense:       9500000000,
		GrossProfit:     36000000000,
		OperatingIncome: 6000000000,
		EBITDA:          8500000000,
		EBIT:            6000000000,
		CAGR:            finance.Float(0.08),
	},
}

// Profile returns the synthetic financial profile for ticker. Tickers
// outside the table get a generic record whose name carries the ticker.
// Output is deterministic: the same ticker always yields the same record.
func Profile(ticker string) finance.Profile {
	upper := strings.ToUpper(ticker)
	if p, ok := profiles[upper]; ok {
		return p
	}
	return finance.Profile{
		CompanyName:     fmt.Sprintf("%s Company", upper),
		Sector:          "Technology",
		Industry:        "Software",
		Employees:       50000,
		Price:           100.0,
		MarketCap:       5000000000,
		Beta:            1.0,
		Volume:          1000000,
		AverageVolume:   1500000,
		Revenue:         20000000000,
		NetIncome:       2000000000,
		EPS:             5.0,
		EPSDiluted:      4.95,
		PERatio:         20.0,
		TotalDebt:       10000000000,
		Cash:            5000000000,
		EnterpriseValue: 10000000000,
		RDExpense:       3000000000,
		GrossProfit:     12000000000,
		OperatingIncome: 4000000000,
		EBITDA:          6000000000,
		EBIT:            5000000000,
		CAGR:            finance.Float(0.10),
	}
}

// Trial returns the single synthetic study used when mock mode is active.
func Trial(companyName string) types.ClinicalTrial {
	return types.ClinicalTrial{
		Phase:         "PHASE2",
		Title:         fmt.Sprintf("Mock Trial for %s", companyName),
		Interventions: []string{"ABC-123", "XYZ-789"},
		Enrollment:    220,
		Status:        "Recruiting",
		Sponsor:       companyName,
	}
}

// Molecule returns the fixed synthetic compound record used in mock mode.
func Molecule(compoundID string) types.MoleculeData {
	return types.MoleculeData{
		DistinctTargets:    5,
		MaxPhaseByMolecule: map[string]int{compoundID: 2},
	}
}

// SearchResults returns the single well-known placeholder entry served
// when the symbol-search provider fails. Callers treat this as valid
// output, not as an error signal.
func SearchResults() []types.SearchResult {
	return []types.SearchResult{
		{
			Symbol:            "AAPL",
			Name:              "Apple Inc.",
			Exchange:          "NASDAQ",
			ExchangeShortName: "NASDAQ",
			Type:              "stock",
		},
	}
}

// Companies returns the static development company list served by
// /api/mock/companies.
func Companies() []types.MockCompany {
	return []types.MockCompany{
		{
			Name:       "Pfizer Inc.",
			Ticker:     "PFE",
			DomainTags: []string{"Oncology", "Cardiovascular", "Infectious Disease"},
			MarketCap:  150000000000,
			Employees:  80000,
			RDExpense:  8000000000,
			CAGR:       0.08,
		},
		{
			Name:       "Johnson & Johnson",
			Ticker:     "JNJ",
			DomainTags: []string{"Immunology", "Oncology", "Neuroscience"},
			MarketCap:  400000000000,
			Employees:  135000,
			RDExpense:  12000000000,
			CAGR:       0.06,
		},
	}
}
