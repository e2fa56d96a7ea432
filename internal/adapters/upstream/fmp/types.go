package fmp

import "encoding/json"

// ProfileDocument is the provider's company profile shape. Only the
// fields the gateway consumes are declared.
type ProfileDocument struct {
	CompanyName       string      `json:"companyName"`
	Sector            string      `json:"sector"`
	Industry          string      `json:"industry"`
	FullTimeEmployees json.Number `json:"fullTimeEmployees"`
	Price             float64     `json:"price"`
	MarketCap         float64     `json:"marketCap"`
	Beta              float64     `json:"beta"`
	Volume            int64       `json:"volume"`
	AverageVolume     int64       `json:"averageVolume"`
	Description       string      `json:"description"`
}

// Employees parses the employee count, which the provider serves as
// either a number or a quoted string. Unparseable values yield 0.
func (p ProfileDocument) Employees() int {
	n, err := p.FullTimeEmployees.Int64()
	if err != nil {
		return 0
	}
	return int(n)
}

// IncomeStatement is one entry of the income-statement history, most
// recent first.
type IncomeStatement struct {
	Revenue         float64 `json:"revenue"`
	NetIncome       float64 `json:"netIncome"`
	EPS             float64 `json:"eps"`
	EPSDiluted      float64 `json:"epsDiluted"`
	RDExpense       float64 `json:"researchAndDevelopmentExpenses"`
	GrossProfit     float64 `json:"grossProfit"`
	OperatingIncome float64 `json:"operatingIncome"`
	EBITDA          float64 `json:"ebitda"`
	EBIT            float64 `json:"ebit"`
}

// BalanceSheet is one entry of the balance-sheet history, most recent first.
type BalanceSheet struct {
	TotalDebt float64 `json:"totalDebt"`
	Cash      float64 `json:"cashAndCashEquivalents"`
}
