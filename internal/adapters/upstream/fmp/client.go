// Package fmp implements the Financial Modeling Prep client used for
// company profiles, financial statements, and symbol search.
package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/atlasbio/atlas/internal/domain/types"
	"github.com/atlasbio/atlas/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL = "https://financialmodelingprep.com/stable"
	defaultTimeout = 15 * time.Second

	providerLabel = "fmp"
)

// Client calls the Financial Modeling Prep REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client. An empty apiKey disables every call; the
// caller is expected to check Configured before issuing requests.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Profile fetches the profile document for ticker. An empty result set
// from the provider is reported as ErrNotFound.
func (c *Client) Profile(ctx context.Context, ticker string) (ProfileDocument, error) {
	if !c.Configured() {
		return ProfileDocument{}, ErrNoAPIKey
	}
	var docs []ProfileDocument
	if err := c.getJSON(ctx, c.endpoint("/profile", url.Values{"symbol": {ticker}}), &docs); err != nil {
		return ProfileDocument{}, err
	}
	if len(docs) == 0 {
		return ProfileDocument{}, ErrNotFound
	}
	return docs[0], nil
}

// Statements fetches the income-statement and balance-sheet histories
// for ticker. The two calls are issued concurrently and joined; they
// populate disjoint fields so ordering between them is irrelevant.
func (c *Client) Statements(ctx context.Context, ticker string) ([]IncomeStatement, []BalanceSheet, error) {
	if !c.Configured() {
		return nil, nil, ErrNoAPIKey
	}

	var (
		wg         sync.WaitGroup
		income     []IncomeStatement
		balance    []BalanceSheet
		incomeErr  error
		balanceErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		incomeErr = c.getJSON(ctx, c.endpoint("/income-statement", url.Values{"symbol": {ticker}}), &income)
	}()
	go func() {
		defer wg.Done()
		balanceErr = c.getJSON(ctx, c.endpoint("/balance-sheet-statement", url.Values{"symbol": {ticker}}), &balance)
	}()
	wg.Wait()

	if incomeErr != nil {
		return nil, nil, incomeErr
	}
	if balanceErr != nil {
		return nil, nil, balanceErr
	}
	return income, balance, nil
}

// Search queries the symbol-search endpoint and returns the provider's
// result list as-is.
func (c *Client) Search(ctx context.Context, query string) ([]types.SearchResult, error) {
	if !c.Configured() {
		return nil, ErrNoAPIKey
	}
	var results []types.SearchResult
	if err := c.getJSON(ctx, c.endpoint("/search-symbol", url.Values{"query": {query}}), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// endpoint builds a provider URL with the API key attached.
func (c *Client) endpoint(path string, params url.Values) string {
	params.Set("apikey", c.apiKey)
	return c.baseURL + path + "?" + params.Encode()
}

// getJSON issues a GET and decodes the JSON body into v.
func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	start := time.Now()
	err := c.doGetJSON(ctx, rawURL, v)
	metrics.RecordUpstreamLatency(providerLabel, float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordUpstreamRequest(providerLabel, "error")
		return err
	}
	metrics.RecordUpstreamRequest(providerLabel, "ok")
	return nil
}

func (c *Client) doGetJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build fmp request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fmp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUpstreamStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode fmp response: %w", err)
	}
	return nil
}
