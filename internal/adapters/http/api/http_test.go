package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/atlasbio/atlas/internal/adapters/http/api"
	"github.com/atlasbio/atlas/internal/adapters/upstream/fmp"
	service "github.com/atlasbio/atlas/internal/app"
	"github.com/atlasbio/atlas/internal/domain/ratelimit"
	"github.com/atlasbio/atlas/internal/domain/types"
	"github.com/atlasbio/atlas/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

type stubFinancial struct {
	configured bool
	profile    fmp.ProfileDocument
	profileErr error
	searchErr  error
}

func (s *stubFinancial) Configured() bool { return s.configured }

func (s *stubFinancial) Profile(ctx context.Context, ticker string) (fmp.ProfileDocument, error) {
	return s.profile, s.profileErr
}

func (s *stubFinancial) Statements(ctx context.Context, ticker string) ([]fmp.IncomeStatement, []fmp.BalanceSheet, error) {
	return nil, nil, nil
}

func (s *stubFinancial) Search(ctx context.Context, query string) ([]types.SearchResult, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return []types.SearchResult{{Symbol: "PFE", Name: "Pfizer Inc."}}, nil
}

type stubTrials struct {
	err error
}

func (s *stubTrials) StudiesBySponsor(ctx context.Context, companyName string) ([]types.ClinicalTrial, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []types.ClinicalTrial{{Title: "Real Study", Sponsor: companyName}}, nil
}

// newTestMux wires a real service over stub upstreams behind the full
// route table.
func newTestMux(opts ...service.Option) *http.ServeMux {
	_ = logger.Init()
	svc := service.New("test-key", opts...)
	mux := http.NewServeMux()
	api.NewServer(svc).Register(context.Background(), mux)
	return mux
}

func doJSON(mux *http.ServeMux, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var decoded map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	return rec, decoded
}

func TestHealthEndpoint(t *testing.T) {
	Convey("Given the registered route table", t, func() {
		mux := newTestMux()

		Convey("GET /health reports healthy with the version", func() {
			rec, body := doJSON(mux, http.MethodGet, "/health", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(body["status"], ShouldEqual, "healthy")
			So(body["version"], ShouldEqual, api.Version)
			So(body["uptime"], ShouldBeGreaterThanOrEqualTo, 0)
		})

		Convey("GET /metrics serves the Prometheus exposition", func() {
			rec, _ := doJSON(mux, http.MethodGet, "/metrics", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "atlas_gateway_")
		})
	})
}

func TestRootEndpoint(t *testing.T) {
	Convey("Given the registered route table", t, func() {
		mux := newTestMux()

		Convey("GET / serves the metadata document", func() {
			rec, body := doJSON(mux, http.MethodGet, "/", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(body["message"], ShouldEqual, "Atlas Company Analyzer API")
			So(body["health"], ShouldEqual, "/health")
		})

		Convey("An unknown path is a 404", func() {
			rec, _ := doJSON(mux, http.MethodGet, "/definitely/not/here", "")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestCompaniesLifecycle(t *testing.T) {
	Convey("Given an empty company collection", t, func() {
		mux := newTestMux()

		Convey("Creating a company normalizes the ticker and applies defaults", func() {
			rec, created := doJSON(mux, http.MethodPost, "/api/companies",
				`{"name":"Acme Bio","ticker":"acm"}`)
			So(rec.Code, ShouldEqual, http.StatusCreated)
			So(created["ticker"], ShouldEqual, "ACM")
			So(created["description"], ShouldEqual, "Company description will be populated here.")
			id := created["id"].(string)

			Convey("The record is readable back by id", func() {
				rec, got := doJSON(mux, http.MethodGet, "/api/companies/"+id, "")
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(got["ticker"], ShouldEqual, "ACM")
				So(got["name"], ShouldEqual, "Acme Bio")
			})

			Convey("And it shows up in the listing", func() {
				req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, req)

				var companies []map[string]any
				So(json.Unmarshal(rec.Body.Bytes(), &companies), ShouldBeNil)
				So(companies, ShouldHaveLength, 1)
			})

			Convey("A second create with the same ticker conflicts", func() {
				rec, body := doJSON(mux, http.MethodPost, "/api/companies",
					`{"name":"Other","ticker":"ACM"}`)
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(body["code"], ShouldEqual, "conflict")
			})

			Convey("A partial update keeps untouched fields", func() {
				rec, updated := doJSON(mux, http.MethodPut, "/api/companies/"+id,
					`{"name":"Acme Biosciences"}`)
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(updated["name"], ShouldEqual, "Acme Biosciences")
				So(updated["ticker"], ShouldEqual, "ACM")
			})

			Convey("Deleting returns the removed record", func() {
				rec, body := doJSON(mux, http.MethodDelete, "/api/companies/"+id, "")
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(body["message"], ShouldEqual, "Company deleted successfully")
				So(body["company"].(map[string]any)["id"], ShouldEqual, id)

				rec, _ = doJSON(mux, http.MethodGet, "/api/companies/"+id, "")
				So(rec.Code, ShouldEqual, http.StatusNotFound)
			})

			Convey("Clearing reports the number removed", func() {
				rec, body := doJSON(mux, http.MethodDelete, "/api/companies", "")
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(body["message"], ShouldEqual, "Cleared 1 companies")
			})
		})

		Convey("Unknown ids map to the not-found taxonomy", func() {
			rec, body := doJSON(mux, http.MethodGet, "/api/companies/missing", "")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
			So(body["code"], ShouldEqual, "not_found")
		})

		Convey("Validation failures are 400s", func() {
			rec, body := doJSON(mux, http.MethodPost, "/api/companies", `{"ticker":"ACM"}`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(body["code"], ShouldEqual, "bad_request")

			rec, _ = doJSON(mux, http.MethodPost, "/api/companies",
				`{"name":"Acme Bio","ticker":"WAYTOOLONGTICKER"}`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)

			rec, _ = doJSON(mux, http.MethodPost, "/api/companies", `not json`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestFinanceEndpoints(t *testing.T) {
	Convey("Given the finance routes", t, func() {
		Convey("Without an API key the profile route reports a configuration error", func() {
			mux := newTestMux(service.WithFinancialProvider(&stubFinancial{configured: false}))
			rec, body := doJSON(mux, http.MethodGet, "/api/finance/profile/PFE", "")
			So(rec.Code, ShouldEqual, http.StatusInternalServerError)
			So(body["code"], ShouldEqual, "config_error")
		})

		Convey("An empty profile result is a 404", func() {
			mux := newTestMux(service.WithFinancialProvider(
				&stubFinancial{configured: true, profileErr: fmp.ErrNotFound}))
			rec, body := doJSON(mux, http.MethodGet, "/api/finance/profile/NOPE", "")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
			So(body["code"], ShouldEqual, "not_found")
		})

		Convey("A missing ticker segment is a 400", func() {
			mux := newTestMux()
			rec, _ := doJSON(mux, http.MethodGet, "/api/finance/profile/", "")
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Search requires a query parameter", func() {
			mux := newTestMux()
			rec, _ := doJSON(mux, http.MethodGet, "/api/finance/search", "")
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("A search fault degrades to the placeholder list", func() {
			mux := newTestMux(service.WithFinancialProvider(
				&stubFinancial{configured: true, searchErr: errors.New("timeout")}))
			req := httptest.NewRequest(http.MethodGet, "/api/finance/search?query=pfizer", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			So(rec.Code, ShouldEqual, http.StatusOK)
			var results []map[string]any
			So(json.Unmarshal(rec.Body.Bytes(), &results), ShouldBeNil)
			So(results, ShouldHaveLength, 1)
			So(results[0]["symbol"], ShouldEqual, "AAPL")
		})
	})
}

func TestTrialsEndpoint(t *testing.T) {
	Convey("Given the clinical-trials route", t, func() {
		Convey("Mock mode serves one synthetic trial", func() {
			mux := newTestMux(service.WithMockMode(true))
			req := httptest.NewRequest(http.MethodGet, "/api/clinical-trials/Acme%20Bio", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			So(rec.Code, ShouldEqual, http.StatusOK)
			var trials []map[string]any
			So(json.Unmarshal(rec.Body.Bytes(), &trials), ShouldBeNil)
			So(trials, ShouldHaveLength, 1)
		})

		Convey("An upstream fault outside mock mode is an upstream error, never mock data", func() {
			mux := newTestMux(
				service.WithMockMode(false),
				service.WithTrialsProvider(&stubTrials{err: errors.New("gateway down")}),
			)
			rec, body := doJSON(mux, http.MethodGet, "/api/clinical-trials/Acme", "")
			So(rec.Code, ShouldEqual, http.StatusInternalServerError)
			So(body["code"], ShouldEqual, "upstream_error")
			So(body["message"], ShouldEqual, "failed to fetch clinical trials")
		})
	})
}

func TestRankingEndpoint(t *testing.T) {
	Convey("Given the ranking route", t, func() {
		mux := newTestMux(service.WithMockMode(true))

		Convey("A valid request yields the placeholder scores", func() {
			rec, body := doJSON(mux, http.MethodPost, "/api/ranking/company",
				`{"company_name":"Acme Bio","ticker":"ACM"}`)
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(body["x"], ShouldEqual, 0.6)
			So(body["y"], ShouldEqual, 0.7)
		})

		Convey("A missing ticker is rejected", func() {
			rec, body := doJSON(mux, http.MethodPost, "/api/ranking/company",
				`{"company_name":"Acme Bio"}`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(body["code"], ShouldEqual, "bad_request")
		})

		Convey("GET is not a registered method", func() {
			rec, _ := doJSON(mux, http.MethodGet, "/api/ranking/company", "")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestMockCompaniesEndpoint(t *testing.T) {
	Convey("Given the development data route", t, func() {
		mux := newTestMux()

		Convey("The static company list is served", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/mock/companies", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			So(rec.Code, ShouldEqual, http.StatusOK)
			var companies []map[string]any
			So(json.Unmarshal(rec.Body.Bytes(), &companies), ShouldBeNil)
			So(companies, ShouldHaveLength, 2)
			So(companies[0]["ticker"], ShouldEqual, "PFE")
		})
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	Convey("Given a handler gated by a two-request window", t, func() {
		mux := newTestMux()
		limiter := ratelimit.New(2, time.Minute)
		handler := api.RateLimitMiddleware(limiter, mux)

		get := func() *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.RemoteAddr = "10.0.0.1:52000"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			return rec
		}

		Convey("Requests beyond the limit are rejected with a retry hint", func() {
			So(get().Code, ShouldEqual, http.StatusOK)
			So(get().Code, ShouldEqual, http.StatusOK)

			rec := get()
			So(rec.Code, ShouldEqual, http.StatusTooManyRequests)
			So(rec.Header().Get("Retry-After"), ShouldEqual, "60")

			var body map[string]any
			So(json.Unmarshal(rec.Body.Bytes(), &body), ShouldBeNil)
			So(body["code"], ShouldEqual, "rate_limited")
			So(body["message"], ShouldEqual, "Rate limit exceeded")
			So(body["retry_after"], ShouldEqual, 60)
		})

		Convey("A different source address has its own budget", func() {
			So(get().Code, ShouldEqual, http.StatusOK)
			So(get().Code, ShouldEqual, http.StatusOK)
			So(get().Code, ShouldEqual, http.StatusTooManyRequests)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.RemoteAddr = "10.0.0.2:52000"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			So(rec.Code, ShouldEqual, http.StatusOK)
		})
	})
}

func TestCORSMiddleware(t *testing.T) {
	Convey("Given a handler wrapped with the CORS layer", t, func() {
		mux := newTestMux()
		handler := api.CORSMiddleware("http://localhost:3001", mux)

		Convey("Responses carry the allowed origin", func() {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "http://localhost:3001")
		})

		Convey("Preflight requests short-circuit", func() {
			req := httptest.NewRequest(http.MethodOptions, "/api/companies", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			So(rec.Code, ShouldEqual, http.StatusNoContent)
			So(rec.Header().Get("Access-Control-Allow-Methods"), ShouldContainSubstring, "DELETE")
		})
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	Convey("Given a handler wrapped with the request-id layer", t, func() {
		mux := newTestMux()
		handler := api.RequestIDMiddleware(mux)

		Convey("A caller-supplied id is echoed back", func() {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("X-Request-ID", "req-123")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			So(rec.Header().Get("X-Request-ID"), ShouldEqual, "req-123")
		})

		Convey("A missing id is generated", func() {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			So(rec.Header().Get("X-Request-ID"), ShouldNotBeEmpty)
		})
	})
}
