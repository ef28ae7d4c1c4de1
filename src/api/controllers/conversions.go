package controllers

import (
	"context"
	"fmt"
	"time"

	"networth/src/models"
	"networth/src/repositories"
	"networth/src/schemas"
	"networth/src/utils"
)

type ConversionsControllerI interface {
	ListConversions(ctx context.Context) ([]*schemas.ConversionResponse, error)
	CreateConversion(ctx context.Context, req *schemas.CreateConversionRequest) (*schemas.ConversionResponse, error)
	UpdateConversion(ctx context.Context, req *schemas.UpdateConversionRequest) (*schemas.ConversionResponse, error)
	DeleteConversion(ctx context.Context, id int) error
}

type ConversionsController struct {
	Conversions repositories.ConversionRepository
}

func NewConversionsController(conversions repositories.ConversionRepository) *ConversionsController {
	return &ConversionsController{Conversions: conversions}
}

func (c *ConversionsController) ListConversions(ctx context.Context) ([]*schemas.ConversionResponse, error) {
	conversions, err := c.Conversions.List(ctx)
	if err != nil {
		return nil, utils.InternalServerError(err.Error())
	}

	responses := make([]*schemas.ConversionResponse, 0, len(conversions))
	for i := range conversions {
		responses = append(responses, schemas.NewConversionResponse(&conversions[i]))
	}
	return responses, nil
}

func (c *ConversionsController) CreateConversion(ctx context.Context, req *schemas.CreateConversionRequest) (*schemas.ConversionResponse, error) {
	date, taxYear, err := validateConversionFields(req.Amount, req.Date, req.TaxYear)
	if err != nil {
		return nil, err
	}

	conversion := &models.Conversion{
		Amount:         *req.Amount,
		TaxYear:        taxYear,
		ConversionDate: date,
		Notes:          req.Notes,
	}
	if err := c.Conversions.Create(ctx, conversion); err != nil {
		logPersistenceError(ctx, err, "solo_401k_conversions", 0)
		return nil, utils.InternalServerError(err.Error())
	}
	return schemas.NewConversionResponse(conversion), nil
}

func (c *ConversionsController) UpdateConversion(ctx context.Context, req *schemas.UpdateConversionRequest) (*schemas.ConversionResponse, error) {
	if req.ID == 0 {
		return nil, utils.BadRequest("id is required")
	}
	date, taxYear, err := validateConversionFields(req.Amount, req.Date, req.TaxYear)
	if err != nil {
		return nil, err
	}

	conversion := &models.Conversion{
		ID:             req.ID,
		Amount:         *req.Amount,
		TaxYear:        taxYear,
		ConversionDate: date,
		Notes:          req.Notes,
	}
	if err := c.Conversions.Update(ctx, conversion); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("conversion %d not found", req.ID))
	}
	return schemas.NewConversionResponse(conversion), nil
}

func (c *ConversionsController) DeleteConversion(ctx context.Context, id int) error {
	if err := c.Conversions.Delete(ctx, id); err != nil {
		return mapRepoError(err, fmt.Sprintf("conversion %d not found", id))
	}
	return nil
}

func validateConversionFields(amount *float64, dateStr string, taxYear *int) (time.Time, int, error) {
	if amount == nil || dateStr == "" {
		return time.Time{}, 0, utils.BadRequest("amount and date are required")
	}
	date, err := utils.ParseShortDate(dateStr)
	if err != nil {
		return time.Time{}, 0, utils.BadRequest(fmt.Sprintf("invalid date %q, expected MM/DD/YY", dateStr))
	}
	year := date.Year()
	if taxYear != nil {
		year = *taxYear
	}
	return date, year, nil
}
