package controllers

import (
	"context"
	"fmt"

	"networth/src/models"
	"networth/src/repositories"
	"networth/src/schemas"
	"networth/src/utils"
)

type IncomesControllerI interface {
	ListIncomes(ctx context.Context) ([]*schemas.IncomeResponse, error)
	CreateIncome(ctx context.Context, req *schemas.CreateIncomeRequest) (*schemas.IncomeResponse, error)
	UpdateIncome(ctx context.Context, req *schemas.UpdateIncomeRequest) (*schemas.IncomeResponse, error)
	DeleteIncome(ctx context.Context, id int) error
}

type IncomesController struct {
	Incomes repositories.IncomeRepository
}

func NewIncomesController(incomes repositories.IncomeRepository) *IncomesController {
	return &IncomesController{Incomes: incomes}
}

func (c *IncomesController) ListIncomes(ctx context.Context) ([]*schemas.IncomeResponse, error) {
	incomes, err := c.Incomes.List(ctx)
	if err != nil {
		return nil, utils.InternalServerError(err.Error())
	}

	responses := make([]*schemas.IncomeResponse, 0, len(incomes))
	for i := range incomes {
		responses = append(responses, schemas.NewIncomeResponse(&incomes[i]))
	}
	return responses, nil
}

func (c *IncomesController) CreateIncome(ctx context.Context, req *schemas.CreateIncomeRequest) (*schemas.IncomeResponse, error) {
	if req.Source == "" || req.Amount == nil {
		return nil, utils.BadRequest("source and amount are required")
	}

	income := &models.Income{
		Source:    req.Source,
		Amount:    *req.Amount,
		Frequency: req.Frequency,
		Notes:     req.Notes,
	}
	if err := c.Incomes.Create(ctx, income); err != nil {
		logPersistenceError(ctx, err, "incomes", 0)
		return nil, utils.InternalServerError(err.Error())
	}
	return schemas.NewIncomeResponse(income), nil
}

func (c *IncomesController) UpdateIncome(ctx context.Context, req *schemas.UpdateIncomeRequest) (*schemas.IncomeResponse, error) {
	if req.ID == 0 {
		return nil, utils.BadRequest("id is required")
	}
	if req.Source == "" || req.Amount == nil {
		return nil, utils.BadRequest("source and amount are required")
	}

	income := &models.Income{
		ID:        req.ID,
		Source:    req.Source,
		Amount:    *req.Amount,
		Frequency: req.Frequency,
		Notes:     req.Notes,
	}
	if err := c.Incomes.Update(ctx, income); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("income %d not found", req.ID))
	}
	return schemas.NewIncomeResponse(income), nil
}

func (c *IncomesController) DeleteIncome(ctx context.Context, id int) error {
	if err := c.Incomes.Delete(ctx, id); err != nil {
		return mapRepoError(err, fmt.Sprintf("income %d not found", id))
	}
	return nil
}
