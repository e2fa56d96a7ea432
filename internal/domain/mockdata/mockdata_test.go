package mockdata_test

import (
	"testing"

	"github.com/atlasbio/atlas/internal/domain/mockdata"
	. "github.com/smartystreets/goconvey/convey"
)

func TestProfile(t *testing.T) {
	Convey("Given the mock financial data provider", t, func() {
		Convey("Known tickers return their fixed specific records", func() {
			pfe := mockdata.Profile("PFE")
			So(pfe.CompanyName, ShouldEqual, "Pfizer Inc.")
			So(pfe.MarketCap, ShouldEqual, 139523397000)
			So(pfe.EnterpriseValue, ShouldEqual, 202129397000)
			So(*pfe.CAGR, ShouldEqual, 0.12)

			lly := mockdata.Profile("LLY")
			So(lly.CompanyName, ShouldEqual, "Eli Lilly and Company")
			So(lly.PERatio, ShouldEqual, 105.9)

			azn := mockdata.Profile("AZN")
			So(azn.CompanyName, ShouldEqual, "AstraZeneca PLC")
			So(azn.EPS, ShouldEqual, 0.38)
		})

		Convey("Lookup is case-insensitive against the uppercased ticker", func() {
			So(mockdata.Profile("pfe"), ShouldResemble, mockdata.Profile("PFE"))
		})

		Convey("Unknown tickers fall back to the generic record", func() {
			p := mockdata.Profile("xyz")
			So(p.CompanyName, ShouldEqual, "XYZ Company")
			So(p.Sector, ShouldEqual, "Technology")
			So(p.Price, ShouldEqual, 100.0)
			So(*p.CAGR, ShouldEqual, 0.10)
		})

		Convey("Identical tickers yield identical output across calls", func() {
			So(mockdata.Profile("ACME"), ShouldResemble, mockdata.Profile("ACME"))
			So(mockdata.Profile("PFE"), ShouldResemble, mockdata.Profile("PFE"))
		})

		Convey("Growth fields stay undefined on mock records", func() {
			So(mockdata.Profile("PFE").RevenueGrowth, ShouldBeNil)
			So(mockdata.Profile("ACME").NetIncomeGrowth, ShouldBeNil)
		})
	})
}

func TestTrial(t *testing.T) {
	Convey("Given the synthetic clinical trial", t, func() {
		trial := mockdata.Trial("Acme Bio")

		Convey("It references the requested sponsor", func() {
			So(trial.Sponsor, ShouldEqual, "Acme Bio")
			So(trial.Title, ShouldEqual, "Mock Trial for Acme Bio")
		})

		Convey("The fixed fields are stable", func() {
			So(trial.Phase, ShouldEqual, "PHASE2")
			So(trial.Interventions, ShouldResemble, []string{"ABC-123", "XYZ-789"})
			So(trial.Enrollment, ShouldEqual, 220)
			So(trial.Status, ShouldEqual, "Recruiting")
		})
	})
}

func TestMolecule(t *testing.T) {
	Convey("Given the synthetic molecule record", t, func() {
		data := mockdata.Molecule("CHEMBL25")

		Convey("It carries five targets and phase two for the compound", func() {
			So(data.DistinctTargets, ShouldEqual, 5)
			So(data.MaxPhaseByMolecule, ShouldResemble, map[string]int{"CHEMBL25": 2})
		})
	})
}

func TestSearchResults(t *testing.T) {
	Convey("Given the search fallback", t, func() {
		results := mockdata.SearchResults()

		Convey("It is exactly one well-known symbol", func() {
			So(results, ShouldHaveLength, 1)
			So(results[0].Symbol, ShouldEqual, "AAPL")
			So(results[0].Exchange, ShouldEqual, "NASDAQ")
		})
	})
}

func TestCompanies(t *testing.T) {
	Convey("Given the static mock company list", t, func() {
		companies := mockdata.Companies()

		Convey("It holds the two development records", func() {
			So(companies, ShouldHaveLength, 2)
			So(companies[0].Ticker, ShouldEqual, "PFE")
			So(companies[1].Ticker, ShouldEqual, "JNJ")
			So(companies[1].DomainTags, ShouldContain, "Immunology")
		})
	})
}
