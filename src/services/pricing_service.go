package services

import (
	"context"
	"fmt"
	"time"

	"networth/src/clients/yahoo"
	"networth/src/models"
	"networth/src/utils"
)

// PriceTTL is the freshness window of a cached quote. Within it, repeated
// lookups for the same (type, symbol) make no external call.
const PriceTTL = 10 * time.Second

// PricingService owns the process-wide quote cache and all pricing
// decisions. Construct it once and inject it; there is no package-level
// singleton.
type PricingService struct {
	client yahoo.YahooServiceClientI
	cache  *utils.KeyedCache[float64]
}

func NewPricingService(client yahoo.YahooServiceClientI) *PricingService {
	return &PricingService{
		client: client,
		cache:  utils.NewKeyedCache[float64](PriceTTL),
	}
}

// cacheKey derives the cache key from the asset type and the normalized
// provider symbol, so BTC and BTC-USD hash identically.
func cacheKey(assetType models.AssetType, providerSymbol string) string {
	return fmt.Sprintf("%s:%s", assetType, providerSymbol)
}

// GetPrice returns the cached price for (symbol, assetType) when fresh,
// otherwise fetches from the provider and overwrites the entry. Fetch
// failures leave the cache untouched and propagate; there is no
// stale-on-error fallback.
func (s *PricingService) GetPrice(ctx context.Context, symbol string, assetType models.AssetType) (float64, error) {
	if assetType.IsFixedValue() {
		return 1.00, nil
	}

	providerSymbol := assetType.ProviderSymbol(symbol)
	key := cacheKey(assetType, providerSymbol)

	if price, ok := s.cache.Get(key); ok {
		return price, nil
	}

	price, err := s.client.GetQuote(ctx, providerSymbol)
	if err != nil {
		return 0, err
	}

	s.cache.Set(key, price)
	return price, nil
}

// Resolve determines the unit price for a holding and computes its total
// value. Fixed-value types never hit the provider.
func (s *PricingService) Resolve(ctx context.Context, symbol string, assetType models.AssetType, quantity float64) (unitPrice, totalValue float64, err error) {
	if assetType.IsFixedValue() {
		return 1.00, quantity, nil
	}

	unitPrice, err = s.GetPrice(ctx, symbol, assetType)
	if err != nil {
		return 0, 0, err
	}
	return unitPrice, quantity * unitPrice, nil
}
