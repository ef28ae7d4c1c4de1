package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"networth/src/clients/yahoo"
	"networth/src/models"
	"networth/src/repositories"
	"networth/src/schemas"
	"networth/src/services"
	"networth/src/utils"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuoteClient struct {
	prices map[string]float64
	err    error
}

func (s *stubQuoteClient) GetQuote(_ context.Context, symbol string) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	price, ok := s.prices[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %s", yahoo.ErrQuoteUnavailable, symbol)
	}
	return price, nil
}

func (s *stubQuoteClient) SearchTickers(_ context.Context, _ string) ([]yahoo.SearchQuote, error) {
	return nil, s.err
}

type memoryHoldingRepo struct {
	rows   map[models.Portfolio]map[int]models.Holding
	nextID int
}

func newMemoryHoldingRepo() *memoryHoldingRepo {
	return &memoryHoldingRepo{rows: map[models.Portfolio]map[int]models.Holding{}, nextID: 1}
}

func (r *memoryHoldingRepo) table(portfolio models.Portfolio) map[int]models.Holding {
	if r.rows[portfolio] == nil {
		r.rows[portfolio] = map[int]models.Holding{}
	}
	return r.rows[portfolio]
}

func (r *memoryHoldingRepo) List(_ context.Context, portfolio models.Portfolio) ([]models.Holding, error) {
	var holdings []models.Holding
	for _, h := range r.table(portfolio) {
		holdings = append(holdings, h)
	}
	return holdings, nil
}

func (r *memoryHoldingRepo) GetByID(_ context.Context, portfolio models.Portfolio, id int) (*models.Holding, error) {
	h, ok := r.table(portfolio)[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &h, nil
}

func (r *memoryHoldingRepo) Create(_ context.Context, portfolio models.Portfolio, holding *models.Holding) error {
	holding.ID = r.nextID
	r.nextID++
	r.table(portfolio)[holding.ID] = *holding
	return nil
}

func (r *memoryHoldingRepo) Update(_ context.Context, portfolio models.Portfolio, holding *models.Holding) error {
	if _, ok := r.table(portfolio)[holding.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.table(portfolio)[holding.ID] = *holding
	return nil
}

func (r *memoryHoldingRepo) Delete(_ context.Context, portfolio models.Portfolio, id int) error {
	if _, ok := r.table(portfolio)[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.table(portfolio), id)
	return nil
}

type memoryLogRepo struct {
	logs      []models.ActivityLog
	appendErr error
}

func (r *memoryLogRepo) Append(_ context.Context, log *models.ActivityLog) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	log.ID = len(r.logs) + 1
	r.logs = append(r.logs, *log)
	return nil
}

func (r *memoryLogRepo) List(_ context.Context, filter repositories.ActivityLogFilter) ([]models.ActivityLog, error) {
	var matched []models.ActivityLog
	for i := len(r.logs) - 1; i >= 0; i-- {
		log := r.logs[i]
		if filter.TableName != "" && log.TableName != filter.TableName {
			continue
		}
		if filter.Operation != "" && log.Operation != filter.Operation {
			continue
		}
		if filter.RecordID != nil && log.RecordID != *filter.RecordID {
			continue
		}
		matched = append(matched, log)
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *memoryLogRepo) Count(_ context.Context, filter repositories.ActivityLogFilter) (int, error) {
	filter.Limit = 0
	filter.Offset = 0
	matched, _ := r.List(context.Background(), filter)
	return len(matched), nil
}

func newAssetsFixture(prices map[string]float64) (*AssetsController, *memoryHoldingRepo, *memoryLogRepo) {
	holdings := newMemoryHoldingRepo()
	logs := &memoryLogRepo{}
	pricing := services.NewPricingService(&stubQuoteClient{prices: prices})
	return NewAssetsController(holdings, logs, pricing), holdings, logs
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateHolding(t *testing.T) {
	ctx := context.Background()

	t.Run("prices the holding and appends an insert log", func(t *testing.T) {
		controller, _, logs := newAssetsFixture(map[string]float64{"AAPL": 200})

		response, err := controller.CreateHolding(ctx, models.PortfolioPersonal, &schemas.CreateHoldingRequest{
			Symbol:   "AAPL",
			Name:     "Apple",
			Type:     "STOCK",
			Quantity: floatPtr(2),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, response.ID)
		assert.Equal(t, float64(200), response.CurrentPrice)
		assert.Equal(t, float64(400), response.TotalValue)

		require.Len(t, logs.logs, 1)
		log := logs.logs[0]
		assert.Equal(t, models.PersonalAssetsTable, log.TableName)
		assert.Equal(t, models.OperationInsert, log.Operation)
		assert.Equal(t, 1, log.RecordID)
		assert.Nil(t, log.OldValues)

		var newValues map[string]interface{}
		require.NoError(t, json.Unmarshal(log.NewValues, &newValues))
		assert.Equal(t, models.ActionInitialAdd, newValues["action"])
		assert.Equal(t, "Added AAPL: 2 @ 200.00 = 400.00", newValues["note"])
	})

	t.Run("cash is pinned to 1.00", func(t *testing.T) {
		controller, _, _ := newAssetsFixture(nil)

		response, err := controller.CreateHolding(ctx, models.PortfolioPersonal, &schemas.CreateHoldingRequest{
			Symbol:   "USD",
			Name:     "Cash",
			Type:     "CASH",
			Quantity: floatPtr(1500),
		})
		require.NoError(t, err)
		assert.Equal(t, 1.00, response.CurrentPrice)
		assert.Equal(t, float64(1500), response.TotalValue)
	})

	t.Run("missing fields are a bad request", func(t *testing.T) {
		controller, _, logs := newAssetsFixture(nil)

		_, err := controller.CreateHolding(ctx, models.PortfolioPersonal, &schemas.CreateHoldingRequest{
			Symbol: "AAPL",
			Name:   "Apple",
			Type:   "STOCK",
		})
		var httpErr *utils.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
		assert.Empty(t, logs.logs)
	})

	t.Run("unknown asset types are a bad request", func(t *testing.T) {
		controller, _, _ := newAssetsFixture(nil)

		_, err := controller.CreateHolding(ctx, models.PortfolioPersonal, &schemas.CreateHoldingRequest{
			Symbol:   "AAPL",
			Name:     "Apple",
			Type:     "BOND",
			Quantity: floatPtr(1),
		})
		var httpErr *utils.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("quote failures surface as internal errors without a row", func(t *testing.T) {
		holdings := newMemoryHoldingRepo()
		logs := &memoryLogRepo{}
		pricing := services.NewPricingService(&stubQuoteClient{err: errors.New("provider down")})
		controller := NewAssetsController(holdings, logs, pricing)

		_, err := controller.CreateHolding(ctx, models.PortfolioPersonal, &schemas.CreateHoldingRequest{
			Symbol:   "AAPL",
			Name:     "Apple",
			Type:     "STOCK",
			Quantity: floatPtr(1),
		})
		var httpErr *utils.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 500, httpErr.Code)
		assert.Empty(t, holdings.table(models.PortfolioPersonal))
		assert.Empty(t, logs.logs)
	})
}

func TestUpdateHolding(t *testing.T) {
	ctx := context.Background()

	t.Run("re-prices and logs old and new snapshots", func(t *testing.T) {
		controller, _, logs := newAssetsFixture(map[string]float64{"AAPL": 200})

		_, err := controller.CreateHolding(ctx, models.PortfolioPersonal, &schemas.CreateHoldingRequest{
			Symbol: "AAPL", Name: "Apple", Type: "STOCK", Quantity: floatPtr(2),
		})
		require.NoError(t, err)

		response, err := controller.UpdateHolding(ctx, models.PortfolioPersonal, &schemas.UpdateHoldingRequest{
			ID: 1, Symbol: "AAPL", Name: "Apple", Type: "STOCK", Quantity: floatPtr(3),
		})
		require.NoError(t, err)
		assert.Equal(t, float64(3), response.Quantity)
		assert.Equal(t, float64(600), response.TotalValue)

		require.Len(t, logs.logs, 2)
		log := logs.logs[1]
		assert.Equal(t, models.OperationUpdate, log.Operation)

		var oldValues, newValues map[string]interface{}
		require.NoError(t, json.Unmarshal(log.OldValues, &oldValues))
		require.NoError(t, json.Unmarshal(log.NewValues, &newValues))
		assert.Equal(t, float64(2), oldValues["quantity"])
		assert.Equal(t, float64(3), newValues["quantity"])
		assert.Equal(t, models.ActionManualUpdate, newValues["action"])
		assert.NotContains(t, oldValues, "action")
	})

	t.Run("unknown ids are not found", func(t *testing.T) {
		controller, _, _ := newAssetsFixture(map[string]float64{"AAPL": 200})

		_, err := controller.UpdateHolding(ctx, models.PortfolioPersonal, &schemas.UpdateHoldingRequest{
			ID: 42, Symbol: "AAPL", Name: "Apple", Type: "STOCK", Quantity: floatPtr(1),
		})
		var httpErr *utils.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 404, httpErr.Code)
	})

	t.Run("missing id is a bad request", func(t *testing.T) {
		controller, _, _ := newAssetsFixture(nil)

		_, err := controller.UpdateHolding(ctx, models.PortfolioPersonal, &schemas.UpdateHoldingRequest{
			Symbol: "AAPL", Name: "Apple", Type: "STOCK", Quantity: floatPtr(1),
		})
		var httpErr *utils.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})
}

func TestDeleteHolding(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the row and logs a sell", func(t *testing.T) {
		controller, holdings, logs := newAssetsFixture(map[string]float64{"AAPL": 200})

		_, err := controller.CreateHolding(ctx, models.PortfolioSolo401k, &schemas.CreateHoldingRequest{
			Symbol: "AAPL", Name: "Apple", Type: "STOCK", Quantity: floatPtr(2),
		})
		require.NoError(t, err)

		require.NoError(t, controller.DeleteHolding(ctx, models.PortfolioSolo401k, 1))
		assert.Empty(t, holdings.table(models.PortfolioSolo401k))

		require.Len(t, logs.logs, 2)
		log := logs.logs[1]
		assert.Equal(t, models.Solo401kAssetsTable, log.TableName)
		assert.Equal(t, models.OperationDelete, log.Operation)

		var oldValues, sellValues map[string]interface{}
		require.NoError(t, json.Unmarshal(log.OldValues, &oldValues))
		require.NoError(t, json.Unmarshal(log.NewValues, &sellValues))
		assert.Equal(t, "AAPL", oldValues["symbol"])
		assert.Equal(t, models.ActionSell, sellValues["action"])
		assert.Equal(t, float64(0), sellValues["totalValue"])
		assert.Equal(t, "Sold AAPL", sellValues["note"])
	})

	t.Run("unknown ids are not found", func(t *testing.T) {
		controller, _, _ := newAssetsFixture(nil)

		err := controller.DeleteHolding(ctx, models.PortfolioPersonal, 42)
		var httpErr *utils.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 404, httpErr.Code)
	})
}
