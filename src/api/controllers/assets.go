package controllers

import (
	"context"
	"encoding/json"
	"fmt"

	"networth/src/models"
	"networth/src/repositories"
	"networth/src/schemas"
	"networth/src/services"
	"networth/src/utils"
)

type AssetsControllerI interface {
	ListHoldings(ctx context.Context, portfolio models.Portfolio) ([]*schemas.HoldingResponse, error)
	CreateHolding(ctx context.Context, portfolio models.Portfolio, req *schemas.CreateHoldingRequest) (*schemas.HoldingResponse, error)
	UpdateHolding(ctx context.Context, portfolio models.Portfolio, req *schemas.UpdateHoldingRequest) (*schemas.HoldingResponse, error)
	DeleteHolding(ctx context.Context, portfolio models.Portfolio, id int) error
}

// AssetsController implements the holding lifecycle: every create and
// update re-prices the holding, and every mutation appends exactly one
// activity log row after the entity write succeeds.
type AssetsController struct {
	Holdings repositories.HoldingRepository
	Logs     repositories.ActivityLogRepository
	Pricing  *services.PricingService
}

func NewAssetsController(holdings repositories.HoldingRepository, logs repositories.ActivityLogRepository, pricing *services.PricingService) *AssetsController {
	return &AssetsController{Holdings: holdings, Logs: logs, Pricing: pricing}
}

func (c *AssetsController) ListHoldings(ctx context.Context, portfolio models.Portfolio) ([]*schemas.HoldingResponse, error) {
	holdings, err := c.Holdings.List(ctx, portfolio)
	if err != nil {
		return nil, utils.InternalServerError(err.Error())
	}

	responses := make([]*schemas.HoldingResponse, 0, len(holdings))
	for i := range holdings {
		responses = append(responses, schemas.NewHoldingResponse(&holdings[i]))
	}
	return responses, nil
}

func (c *AssetsController) CreateHolding(ctx context.Context, portfolio models.Portfolio, req *schemas.CreateHoldingRequest) (*schemas.HoldingResponse, error) {
	assetType, err := validateHoldingFields(req.Symbol, req.Name, req.Type, req.Quantity)
	if err != nil {
		return nil, err
	}

	price, total, err := c.Pricing.Resolve(ctx, req.Symbol, assetType, *req.Quantity)
	if err != nil {
		return nil, utils.InternalServerError(err.Error())
	}

	holding := &models.Holding{
		Symbol:       req.Symbol,
		Name:         req.Name,
		AssetType:    assetType,
		Quantity:     *req.Quantity,
		CurrentPrice: price,
		TotalValue:   total,
		Notes:        req.Notes,
	}
	if err := c.Holdings.Create(ctx, portfolio, holding); err != nil {
		logPersistenceError(ctx, err, portfolio.TableName(), 0)
		return nil, utils.InternalServerError(err.Error())
	}

	note := fmt.Sprintf("Added %s: %g @ %.2f = %.2f", holding.Symbol, holding.Quantity, holding.CurrentPrice, holding.TotalValue)
	if err := c.appendLog(ctx, portfolio, holding.ID, models.OperationInsert, nil, holdingSnapshot(holding, models.ActionInitialAdd, note)); err != nil {
		return nil, err
	}

	return schemas.NewHoldingResponse(holding), nil
}

func (c *AssetsController) UpdateHolding(ctx context.Context, portfolio models.Portfolio, req *schemas.UpdateHoldingRequest) (*schemas.HoldingResponse, error) {
	if req.ID == 0 {
		return nil, utils.BadRequest("id is required")
	}
	assetType, err := validateHoldingFields(req.Symbol, req.Name, req.Type, req.Quantity)
	if err != nil {
		return nil, err
	}

	existing, err := c.Holdings.GetByID(ctx, portfolio, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("holding %d not found", req.ID))
	}

	price, total, err := c.Pricing.Resolve(ctx, req.Symbol, assetType, *req.Quantity)
	if err != nil {
		return nil, utils.InternalServerError(err.Error())
	}

	holding := &models.Holding{
		ID:           req.ID,
		Symbol:       req.Symbol,
		Name:         req.Name,
		AssetType:    assetType,
		Quantity:     *req.Quantity,
		CurrentPrice: price,
		TotalValue:   total,
		Notes:        req.Notes,
	}
	if err := c.Holdings.Update(ctx, portfolio, holding); err != nil {
		logPersistenceError(ctx, err, portfolio.TableName(), req.ID)
		return nil, mapRepoError(err, fmt.Sprintf("holding %d not found", req.ID))
	}

	note := fmt.Sprintf("Updated %s: %g @ %.2f = %.2f", holding.Symbol, holding.Quantity, holding.CurrentPrice, holding.TotalValue)
	if err := c.appendLog(ctx, portfolio, holding.ID, models.OperationUpdate, holdingSnapshot(existing, "", ""), holdingSnapshot(holding, models.ActionManualUpdate, note)); err != nil {
		return nil, err
	}

	return schemas.NewHoldingResponse(holding), nil
}

func (c *AssetsController) DeleteHolding(ctx context.Context, portfolio models.Portfolio, id int) error {
	// Read before removal; the SELL log entry references the deleted symbol
	existing, err := c.Holdings.GetByID(ctx, portfolio, id)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("holding %d not found", id))
	}

	if err := c.Holdings.Delete(ctx, portfolio, id); err != nil {
		logPersistenceError(ctx, err, portfolio.TableName(), id)
		return mapRepoError(err, fmt.Sprintf("holding %d not found", id))
	}

	sellValues := map[string]interface{}{
		"action":     models.ActionSell,
		"symbol":     existing.Symbol,
		"totalValue": 0,
		"note":       fmt.Sprintf("Sold %s", existing.Symbol),
	}
	return c.appendLog(ctx, portfolio, id, models.OperationDelete, holdingSnapshot(existing, "", ""), sellValues)
}

// validateHoldingFields enforces the required create/update fields and
// resolves the asset type enum.
func validateHoldingFields(symbol, name, assetType string, quantity *float64) (models.AssetType, error) {
	if symbol == "" || name == "" || assetType == "" || quantity == nil {
		return "", utils.BadRequest("symbol, name, type and quantity are required")
	}
	parsed, err := models.ParseAssetType(assetType)
	if err != nil {
		return "", utils.BadRequest(err.Error())
	}
	return parsed, nil
}

// holdingSnapshot renders the loggable view of a holding. The action and
// note ride inside the snapshot; the log table itself only knows
// INSERT/UPDATE/DELETE.
func holdingSnapshot(h *models.Holding, action, note string) map[string]interface{} {
	snapshot := map[string]interface{}{
		"id":           h.ID,
		"symbol":       h.Symbol,
		"name":         h.Name,
		"type":         string(h.AssetType),
		"quantity":     h.Quantity,
		"currentPrice": h.CurrentPrice,
		"totalValue":   h.TotalValue,
		"notes":        h.Notes,
	}
	if action != "" {
		snapshot["action"] = action
		snapshot["note"] = note
	}
	return snapshot
}

func (c *AssetsController) appendLog(ctx context.Context, portfolio models.Portfolio, recordID int, operation string, oldValues, newValues map[string]interface{}) error {
	log := &models.ActivityLog{
		TableName: portfolio.TableName(),
		RecordID:  recordID,
		Operation: operation,
	}
	if oldValues != nil {
		raw, err := json.Marshal(oldValues)
		if err != nil {
			return utils.InternalServerError(err.Error())
		}
		log.OldValues = raw
	}
	if newValues != nil {
		raw, err := json.Marshal(newValues)
		if err != nil {
			return utils.InternalServerError(err.Error())
		}
		log.NewValues = raw
	}

	if err := c.Logs.Append(ctx, log); err != nil {
		logPersistenceError(ctx, err, "activity_logs", recordID)
		return utils.InternalServerError(err.Error())
	}
	return nil
}

func logPersistenceError(ctx context.Context, err error, table string, id int) {
	utils.LoggerFromContext(ctx).
		WithError(err).
		WithField("table", table).
		WithField("id", id).
		Error("persistence operation failed")
}
