package controllers

import (
	"context"
	"strings"
	"time"

	"networth/src/clients/yahoo"
	"networth/src/models"
	"networth/src/schemas"
	"networth/src/services"
	"networth/src/utils"
)

const maxTickerSuggestions = 10

type PricesControllerI interface {
	GetPrice(ctx context.Context, symbol string, assetType models.AssetType) (*schemas.PriceResponse, error)
	GetPrices(ctx context.Context, symbols []string, assetType models.AssetType) (map[string]float64, error)
	RefreshAll(ctx context.Context) (*schemas.RefreshResult, error)
	SearchTickers(ctx context.Context, query string, assetType models.AssetType) ([]schemas.TickerSuggestion, error)
}

type PricesController struct {
	Pricing *services.PricingService
	Refresh *services.RefreshService
	Client  yahoo.YahooServiceClientI
}

func NewPricesController(pricing *services.PricingService, refresh *services.RefreshService, client yahoo.YahooServiceClientI) *PricesController {
	return &PricesController{Pricing: pricing, Refresh: refresh, Client: client}
}

func (c *PricesController) GetPrice(ctx context.Context, symbol string, assetType models.AssetType) (*schemas.PriceResponse, error) {
	price, err := c.Pricing.GetPrice(ctx, symbol, assetType)
	if err != nil {
		// Quote failures on single lookups propagate, no silent default
		return nil, utils.InternalServerError(err.Error())
	}
	return &schemas.PriceResponse{
		Symbol:    symbol,
		Type:      string(assetType),
		Price:     price,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// GetPrices resolves each symbol independently; a failed symbol yields 0
// rather than aborting the batch.
func (c *PricesController) GetPrices(ctx context.Context, symbols []string, assetType models.AssetType) (map[string]float64, error) {
	prices := make(map[string]float64, len(symbols))
	for _, symbol := range symbols {
		symbol = strings.TrimSpace(symbol)
		if symbol == "" {
			continue
		}
		price, err := c.Pricing.GetPrice(ctx, symbol, assetType)
		if err != nil {
			prices[symbol] = 0
			continue
		}
		prices[symbol] = price
	}
	return prices, nil
}

func (c *PricesController) RefreshAll(ctx context.Context) (*schemas.RefreshResult, error) {
	result, err := c.Refresh.RefreshAll(ctx)
	if err != nil {
		return nil, utils.InternalServerError(err.Error())
	}
	return result, nil
}

// SearchTickers proxies the provider search, filtered by asset type and
// capped at ten suggestions. An empty query returns an empty list without
// calling the provider.
func (c *PricesController) SearchTickers(ctx context.Context, query string, assetType models.AssetType) ([]schemas.TickerSuggestion, error) {
	suggestions := []schemas.TickerSuggestion{}
	if strings.TrimSpace(query) == "" {
		return suggestions, nil
	}

	quotes, err := c.Client.SearchTickers(ctx, query)
	if err != nil {
		return nil, utils.InternalServerError(err.Error())
	}

	wantedQuoteType := "EQUITY"
	if assetType == models.AssetTypeCrypto {
		wantedQuoteType = "CRYPTOCURRENCY"
	}

	for _, quote := range quotes {
		if quote.Symbol == "" || quote.QuoteType != wantedQuoteType {
			continue
		}
		suggestions = append(suggestions, schemas.TickerSuggestion{Symbol: quote.Symbol, Name: quote.Name()})
		if len(suggestions) == maxTickerSuggestions {
			break
		}
	}
	return suggestions, nil
}
