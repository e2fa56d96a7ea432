// Package ranking holds the placeholder company-ranking scorer.
//
// There is no real scoring logic yet. The endpoint exists so the
// frontend contract is stable; only the two fixed outputs below are
// produced. Do not add heuristics here without a product decision.
package ranking

import (
	"context"

	"github.com/atlasbio/atlas/internal/domain/types"
)

// Scorer produces a fixed ranking for a company.
type Scorer struct {
	mockMode bool
}

// NewScorer creates a Scorer. mockMode selects which fixed output is served.
func NewScorer(mockMode bool) *Scorer {
	return &Scorer{mockMode: mockMode}
}

// Score returns the placeholder maturity/differentiation pair. The input
// is accepted for contract stability but does not influence the result.
func (s *Scorer) Score(ctx context.Context, in types.RankingInput) (types.RankingResult, error) {
	if s.mockMode {
		return types.RankingResult{
			X:         0.6,
			Y:         0.7,
			Rationale: "Mock ranking based on company data analysis",
		}, nil
	}
	return types.RankingResult{
		X:         0.5,
		Y:         0.5,
		Rationale: "AI ranking service not yet implemented",
	}, nil
}
