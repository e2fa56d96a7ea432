package fmp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atlasbio/atlas/internal/adapters/upstream/fmp"
	. "github.com/smartystreets/goconvey/convey"
)

func newProviderStub() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apikey") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/profile":
			if r.URL.Query().Get("symbol") == "NOPE" {
				w.Write([]byte(`[]`))
				return
			}
			w.Write([]byte(`[{"companyName":"Pfizer Inc.","sector":"Healthcare","industry":"Drug Manufacturers - General","fullTimeEmployees":"81000","price":24.54,"marketCap":139523397000,"beta":0.44,"volume":40849330,"averageVolume":40776300,"description":"A biopharmaceutical company."}]`))
		case "/income-statement":
			w.Write([]byte(`[{"revenue":63627000000,"netIncome":8020000000,"eps":1.42,"epsDiluted":1.41,"researchAndDevelopmentExpenses":10738000000,"grossProfit":41846000000,"operatingIncome":16483000000,"ebitda":18127000000,"ebit":11114000000},{"revenue":58500000000,"netIncome":5000000000}]`))
		case "/balance-sheet-statement":
			w.Write([]byte(`[{"totalDebt":63649000000,"cashAndCashEquivalents":1043000000}]`))
		case "/search-symbol":
			w.Write([]byte(`[{"symbol":"PFE","name":"Pfizer Inc.","exchange":"NYSE","exchangeShortName":"NYSE","type":"stock"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestProfile(t *testing.T) {
	Convey("Given a financial-data provider stub", t, func() {
		ctx := context.Background()
		srv := newProviderStub()
		defer srv.Close()
		client := fmp.NewClient("test-key", fmp.WithBaseURL(srv.URL))

		Convey("The profile document is decoded from the provider shape", func() {
			doc, err := client.Profile(ctx, "PFE")
			So(err, ShouldBeNil)
			So(doc.CompanyName, ShouldEqual, "Pfizer Inc.")
			So(doc.Employees(), ShouldEqual, 81000)
			So(doc.MarketCap, ShouldEqual, 139523397000)
			So(doc.Description, ShouldEqual, "A biopharmaceutical company.")
		})

		Convey("An empty result set is reported as not found", func() {
			_, err := client.Profile(ctx, "NOPE")
			So(err, ShouldEqual, fmp.ErrNotFound)
		})

		Convey("A missing API key fails before any call is issued", func() {
			unconfigured := fmp.NewClient("", fmp.WithBaseURL(srv.URL))
			So(unconfigured.Configured(), ShouldBeFalse)
			_, err := unconfigured.Profile(ctx, "PFE")
			So(err, ShouldEqual, fmp.ErrNoAPIKey)
		})
	})
}

func TestStatements(t *testing.T) {
	Convey("Given a financial-data provider stub", t, func() {
		ctx := context.Background()
		srv := newProviderStub()
		defer srv.Close()
		client := fmp.NewClient("test-key", fmp.WithBaseURL(srv.URL))

		Convey("Income and balance histories are fetched and joined", func() {
			income, balance, err := client.Statements(ctx, "PFE")
			So(err, ShouldBeNil)
			So(income, ShouldHaveLength, 2)
			So(income[0].EPS, ShouldEqual, 1.42)
			So(income[1].Revenue, ShouldEqual, 58500000000)
			So(balance, ShouldHaveLength, 1)
			So(balance[0].TotalDebt, ShouldEqual, 63649000000)
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given a financial-data provider stub", t, func() {
		ctx := context.Background()
		srv := newProviderStub()
		defer srv.Close()
		client := fmp.NewClient("test-key", fmp.WithBaseURL(srv.URL))

		Convey("Search results pass through unmodified", func() {
			results, err := client.Search(ctx, "pfizer")
			So(err, ShouldBeNil)
			So(results, ShouldHaveLength, 1)
			So(results[0].Symbol, ShouldEqual, "PFE")
		})
	})
}

func TestUpstreamFailure(t *testing.T) {
	Convey("Given a provider returning server errors", t, func() {
		ctx := context.Background()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()
		client := fmp.NewClient("test-key", fmp.WithBaseURL(srv.URL))

		Convey("The status is wrapped in the upstream sentinel", func() {
			_, err := client.Profile(ctx, "PFE")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "status 500")
		})
	})
}
