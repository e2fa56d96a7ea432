// Package finance holds the normalized financial profile and the pure
// derivations applied to raw upstream documents.
package finance

// Profile is the stable internal schema for a company's financial data.
// Absent upstream numerics are coerced to zero, except the growth fields
// and CAGR which stay nil to distinguish "not computable" from zero.
type Profile struct {
	// Basic company info
	CompanyName string `json:"company_name"`
	Sector      string `json:"sector"`
	Industry    string `json:"industry"`
	Employees   int    `json:"employees"`

	// Market data
	Price         float64 `json:"price"`
	MarketCap     float64 `json:"market_cap"`
	Beta          float64 `json:"beta"`
	Volume        int64   `json:"volume"`
	AverageVolume int64   `json:"average_volume"`

	// Financial metrics
	Revenue    float64 `json:"revenue"`
	NetIncome  float64 `json:"net_income"`
	EPS        float64 `json:"eps"`
	EPSDiluted float64 `json:"eps_diluted"`
	PERatio    float64 `json:"pe_ratio"`

	// Balance sheet
	TotalDebt       float64 `json:"total_debt"`
	Cash            float64 `json:"cash"`
	EnterpriseValue float64 `json:"enterprise_value"`

	// Income statement
	RDExpense       float64 `json:"rd_expense"`
	GrossProfit     float64 `json:"gross_profit"`
	OperatingIncome float64 `json:"operating_income"`
	EBITDA          float64 `json:"ebitda"`
	EBIT            float64 `json:"ebit"`

	// Growth metrics; nil means not computable from the available history
	CAGR            *float64 `json:"cagr"`
	RevenueGrowth   *float64 `json:"revenue_growth"`
	NetIncomeGrowth *float64 `json:"net_income_growth"`
}

// EnterpriseValue derives enterprise value from market cap, total debt
// and cash. Callers pass zero for missing inputs.
func EnterpriseValue(marketCap, totalDebt, cash float64) float64 {
	return marketCap + totalDebt - cash
}

// PERatio derives the price/earnings ratio. Zero or negative EPS yields
// zero rather than a division result.
func PERatio(price, eps float64) float64 {
	if eps <= 0 {
		return 0
	}
	return price / eps
}

// Growth derives a year-over-year growth percentage. A previous value of
// zero or below means growth is not computable and nil is returned.
func Growth(current, previous float64) *float64 {
	if previous <= 0 {
		return nil
	}
	g := (current - previous) / previous * 100
	return &g
}

// Float returns a pointer to v. Used when populating the nullable
// growth fields from fixed mock values.
func Float(v float64) *float64 {
	return &v
}
