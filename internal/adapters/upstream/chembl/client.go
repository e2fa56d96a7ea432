// Package chembl implements the ChEMBL molecule-lookup client.
package chembl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/atlasbio/atlas/internal/domain/types"
	"github.com/atlasbio/atlas/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL = "https://www.ebi.ac.uk/chembl/api/data"
	defaultTimeout = 15 * time.Second

	providerLabel = "chembl"
)

// Client calls the ChEMBL REST API.
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

// moleculeDocument is the subset of the molecule resource the gateway reads.
type moleculeDocument struct {
	Targets  []json.RawMessage `json:"targets"`
	MaxPhase int               `json:"max_phase"`
}

// Molecule looks up a compound by identifier and maps its distinct
// target count and maximum clinical phase.
func (c *Client) Molecule(ctx context.Context, compoundID string) (types.MoleculeData, error) {
	start := time.Now()
	var decoded moleculeDocument
	err := c.getJSON(ctx, c.baseURL+"/molecule/"+compoundID, &decoded)
	metrics.RecordUpstreamLatency(providerLabel, float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordUpstreamRequest(providerLabel, "error")
		return types.MoleculeData{}, err
	}
	metrics.RecordUpstreamRequest(providerLabel, "ok")

	return types.MoleculeData{
		DistinctTargets:    len(decoded.Targets),
		MaxPhaseByMolecule: map[string]int{compoundID: decoded.MaxPhase},
	}, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build chembl request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("chembl request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUpstreamStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode chembl response: %w", err)
	}
	return nil
}
