package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"networth/src/clients/yahoo"
	"networth/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockQuoteClient struct {
	prices map[string]float64
	err    error
	calls  []string
}

func (m *mockQuoteClient) GetQuote(_ context.Context, symbol string) (float64, error) {
	m.calls = append(m.calls, symbol)
	if m.err != nil {
		return 0, m.err
	}
	price, ok := m.prices[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %s", yahoo.ErrQuoteUnavailable, symbol)
	}
	return price, nil
}

func (m *mockQuoteClient) SearchTickers(_ context.Context, _ string) ([]yahoo.SearchQuote, error) {
	return nil, nil
}

func TestGetPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("fixed-value types never hit the provider", func(t *testing.T) {
		client := &mockQuoteClient{}
		service := NewPricingService(client)

		for _, assetType := range []models.AssetType{models.AssetTypeCash, models.AssetTypeMisc} {
			price, err := service.GetPrice(ctx, "USD", assetType)
			require.NoError(t, err)
			assert.Equal(t, 1.00, price)
		}
		assert.Empty(t, client.calls)
	})

	t.Run("repeated lookups within the ttl fetch once", func(t *testing.T) {
		client := &mockQuoteClient{prices: map[string]float64{"AAPL": 185.20}}
		service := NewPricingService(client)

		for i := 0; i < 3; i++ {
			price, err := service.GetPrice(ctx, "AAPL", models.AssetTypeStock)
			require.NoError(t, err)
			assert.Equal(t, 185.20, price)
		}
		assert.Equal(t, []string{"AAPL"}, client.calls)
	})

	t.Run("crypto symbol variants share one cache entry", func(t *testing.T) {
		client := &mockQuoteClient{prices: map[string]float64{"BTC-USD": 97000}}
		service := NewPricingService(client)

		price, err := service.GetPrice(ctx, "BTC", models.AssetTypeCrypto)
		require.NoError(t, err)
		assert.Equal(t, float64(97000), price)

		price, err = service.GetPrice(ctx, "BTC-USD", models.AssetTypeCrypto)
		require.NoError(t, err)
		assert.Equal(t, float64(97000), price)

		assert.Equal(t, []string{"BTC-USD"}, client.calls)
	})

	t.Run("metals quote the futures symbol", func(t *testing.T) {
		client := &mockQuoteClient{prices: map[string]float64{"GC=F": 2350.5, "SI=F": 28.1}}
		service := NewPricingService(client)

		price, err := service.GetPrice(ctx, "GOLD", models.AssetTypeGold)
		require.NoError(t, err)
		assert.Equal(t, 2350.5, price)

		price, err = service.GetPrice(ctx, "SILVER", models.AssetTypeSilver)
		require.NoError(t, err)
		assert.Equal(t, 28.1, price)

		assert.Equal(t, []string{"GC=F", "SI=F"}, client.calls)
	})

	t.Run("fetch failures propagate and are not cached", func(t *testing.T) {
		client := &mockQuoteClient{err: errors.New("provider down")}
		service := NewPricingService(client)

		_, err := service.GetPrice(ctx, "AAPL", models.AssetTypeStock)
		require.Error(t, err)

		// the failure left no entry behind, so the next call retries
		client.err = nil
		client.prices = map[string]float64{"AAPL": 185.20}
		price, err := service.GetPrice(ctx, "AAPL", models.AssetTypeStock)
		require.NoError(t, err)
		assert.Equal(t, 185.20, price)
		assert.Equal(t, []string{"AAPL", "AAPL"}, client.calls)
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("fixed-value total equals quantity", func(t *testing.T) {
		service := NewPricingService(&mockQuoteClient{})

		unitPrice, totalValue, err := service.Resolve(ctx, "USD", models.AssetTypeCash, 1500)
		require.NoError(t, err)
		assert.Equal(t, 1.00, unitPrice)
		assert.Equal(t, float64(1500), totalValue)
	})

	t.Run("quoted total is quantity times unit price", func(t *testing.T) {
		client := &mockQuoteClient{prices: map[string]float64{"AAPL": 200}}
		service := NewPricingService(client)

		unitPrice, totalValue, err := service.Resolve(ctx, "AAPL", models.AssetTypeStock, 2.5)
		require.NoError(t, err)
		assert.Equal(t, float64(200), unitPrice)
		assert.Equal(t, float64(500), totalValue)
	})

	t.Run("quote errors zero both values", func(t *testing.T) {
		client := &mockQuoteClient{err: errors.New("provider down")}
		service := NewPricingService(client)

		unitPrice, totalValue, err := service.Resolve(ctx, "AAPL", models.AssetTypeStock, 2.5)
		require.Error(t, err)
		assert.Zero(t, unitPrice)
		assert.Zero(t, totalValue)
	})
}
