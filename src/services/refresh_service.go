package services

import (
	"context"

	"networth/src/models"
	"networth/src/repositories"
	"networth/src/schemas"
	"networth/src/utils"
)

// RefreshService re-prices every non-fixed-value holding across both
// portfolios and reports a per-symbol tally. One failed symbol never
// aborts the batch.
type RefreshService struct {
	holdings repositories.HoldingRepository
	pricing  *PricingService
}

func NewRefreshService(holdings repositories.HoldingRepository, pricing *PricingService) *RefreshService {
	return &RefreshService{holdings: holdings, pricing: pricing}
}

// RefreshAll walks holdings sequentially so each one ends up reflecting
// exactly one fetch outcome. Listing failures abort (there is nothing to
// tally); per-holding failures are recorded and skipped.
func (s *RefreshService) RefreshAll(ctx context.Context) (*schemas.RefreshResult, error) {
	logger := utils.LoggerFromContext(ctx)
	result := &schemas.RefreshResult{Errors: []schemas.RefreshError{}}

	for _, portfolio := range models.Portfolios() {
		holdings, err := s.holdings.List(ctx, portfolio)
		if err != nil {
			return nil, err
		}

		for i := range holdings {
			holding := holdings[i]
			if holding.AssetType.IsFixedValue() {
				continue
			}

			price, err := s.pricing.GetPrice(ctx, holding.Symbol, holding.AssetType)
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, schemas.RefreshError{Symbol: holding.Symbol, Error: err.Error()})
				continue
			}

			holding.CurrentPrice = price
			holding.TotalValue = holding.Quantity * price
			if err := s.holdings.Update(ctx, portfolio, &holding); err != nil {
				logger.WithError(err).
					WithField("table", portfolio.TableName()).
					WithField("id", holding.ID).
					Error("failed to persist refreshed price")
				result.Failed++
				result.Errors = append(result.Errors, schemas.RefreshError{Symbol: holding.Symbol, Error: err.Error()})
				continue
			}
			result.Updated++
		}
	}

	return result, nil
}
