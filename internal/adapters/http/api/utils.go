package api

import "github.com/atlasbio/atlas/internal/domain/types"

func toRankingInput(req rankingRequest) types.RankingInput {
	return types.RankingInput{
		CompanyName:  req.CompanyName,
		Ticker:       req.Ticker,
		UserCriteria: req.UserCriteria,
		UserWeights:  req.UserWeights,
	}
}
