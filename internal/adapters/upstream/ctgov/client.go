// Package ctgov implements the ClinicalTrials.gov study-search client.
package ctgov

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/atlasbio/atlas/internal/domain/types"
	"github.com/atlasbio/atlas/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL = "https://clinicaltrials.gov/api/v2"
	defaultTimeout = 15 * time.Second

	providerLabel = "ctgov"
)

// Client calls the ClinicalTrials.gov v2 REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// studiesResponse is the registry's search envelope.
type studiesResponse struct {
	Studies []study `json:"studies"`
}

type study struct {
	Phase           string `json:"phase"`
	BriefTitle      string `json:"briefTitle"`
	EnrollmentCount int    `json:"enrollmentCount"`
	OverallStatus   string `json:"overallStatus"`
	LeadSponsorName string `json:"leadSponsorName"`
}

// StudiesBySponsor searches the registry for studies whose lead sponsor
// matches companyName and maps each into the internal trial shape. The
// intervention list is left empty by policy: populating it would need a
// per-study follow-up call.
func (c *Client) StudiesBySponsor(ctx context.Context, companyName string) ([]types.ClinicalTrial, error) {
	params := url.Values{
		"query":  {fmt.Sprintf("sponsor:%q", companyName)},
		"fields": {"NCTId,BriefTitle,Phase,EnrollmentCount,LeadSponsorName,OverallStatus"},
	}

	start := time.Now()
	var decoded studiesResponse
	err := c.getJSON(ctx, c.baseURL+"/studies?"+params.Encode(), &decoded)
	metrics.RecordUpstreamLatency(providerLabel, float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordUpstreamRequest(providerLabel, "error")
		return nil, err
	}
	metrics.RecordUpstreamRequest(providerLabel, "ok")

	trials := make([]types.ClinicalTrial, 0, len(decoded.Studies))
	for _, s := range decoded.Studies {
		trials = append(trials, types.ClinicalTrial{
			Phase:         orDefault(s.Phase, "Unknown"),
			Title:         orDefault(s.BriefTitle, "No title"),
			Interventions: []string{},
			Enrollment:    s.EnrollmentCount,
			Status:        orDefault(s.OverallStatus, "Unknown"),
			Sponsor:       orDefault(s.LeadSponsorName, "Unknown"),
		})
	}
	return trials, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build ctgov request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ctgov request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUpstreamStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode ctgov response: %w", err)
	}
	return nil
}
