package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"time"

	"networth/src/config"
	"networth/src/utils/requests"
)

// ErrQuoteUnavailable means the provider returned no usable quote for the
// symbol. ErrInvalidQuote means it returned a price that cannot be trusted
// (non-numeric, NaN, zero or negative). Neither is retried here; retry
// policy belongs to callers.
var (
	ErrQuoteUnavailable = errors.New("quote unavailable")
	ErrInvalidQuote     = errors.New("invalid quote")
)

// Every provider call is bounded; the provider has no SLA.
const requestTimeout = 5 * time.Second

type YahooServiceClientI interface {
	GetQuote(ctx context.Context, symbol string) (float64, error)
	SearchTickers(ctx context.Context, query string) ([]SearchQuote, error)
}

type YahooServiceClient struct {
	API       *requests.ExternalAPIService
	QuoteURL  string
	SearchURL string
}

// NewClient creates a new instance of YahooServiceClient
func NewClient(cfg *config.Config) *YahooServiceClient {
	api := requests.NewExternalAPIService(requestTimeout)
	return &YahooServiceClient{
		API:       api,
		QuoteURL:  cfg.ExternalClients.Yahoo.QuoteURL,
		SearchURL: cfg.ExternalClients.Yahoo.SearchURL,
	}
}

// GetQuote fetches the current price for one provider symbol. It prefers
// the regular market price and falls back to the previous close.
func (c *YahooServiceClient) GetQuote(ctx context.Context, symbol string) (float64, error) {
	endpoint := fmt.Sprintf("%s/v7/finance/quote", c.QuoteURL)

	params := url.Values{}
	params.Add("symbols", symbol)

	resp, err := c.API.Get(ctx, endpoint, params)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrQuoteUnavailable, symbol, err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrQuoteUnavailable, symbol, err)
	}

	var quoteResponse GetQuoteResponse
	if err = json.Unmarshal(responseBody, &quoteResponse); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrQuoteUnavailable, symbol, err)
	}

	if quoteResponse.QuoteResponse.Error != nil {
		return 0, fmt.Errorf("%w: %s: %s", ErrQuoteUnavailable, symbol, quoteResponse.QuoteResponse.Error.Description)
	}
	if len(quoteResponse.QuoteResponse.Result) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrQuoteUnavailable, symbol)
	}

	result := quoteResponse.QuoteResponse.Result[0]
	price := result.RegularMarketPrice
	if price == nil {
		price = result.RegularMarketPreviousClose
	}
	if price == nil {
		return 0, fmt.Errorf("%w: %s: no market price or previous close", ErrQuoteUnavailable, symbol)
	}
	if math.IsNaN(*price) || *price <= 0 {
		return 0, fmt.Errorf("%w: %s: price %v", ErrInvalidQuote, symbol, *price)
	}

	return *price, nil
}

// SearchTickers queries the provider's search endpoint. Type filtering and
// the suggestion limit are the caller's concern.
func (c *YahooServiceClient) SearchTickers(ctx context.Context, query string) ([]SearchQuote, error) {
	endpoint := fmt.Sprintf("%s/v1/finance/search", c.SearchURL)

	params := url.Values{}
	params.Add("q", query)

	resp, err := c.API.Get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var searchResponse SearchResponse
	if err = json.Unmarshal(responseBody, &searchResponse); err != nil {
		return nil, err
	}

	return searchResponse.Quotes, nil
}
