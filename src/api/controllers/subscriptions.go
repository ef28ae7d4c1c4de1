package controllers

import (
	"context"
	"fmt"

	"networth/src/models"
	"networth/src/repositories"
	"networth/src/schemas"
	"networth/src/utils"
)

type SubscriptionsControllerI interface {
	ListSubscriptions(ctx context.Context) ([]*schemas.SubscriptionResponse, error)
	CreateSubscription(ctx context.Context, req *schemas.CreateSubscriptionRequest) (*schemas.SubscriptionResponse, error)
	UpdateSubscription(ctx context.Context, req *schemas.UpdateSubscriptionRequest) (*schemas.SubscriptionResponse, error)
	DeleteSubscription(ctx context.Context, id int) error
}

type SubscriptionsController struct {
	Subscriptions repositories.SubscriptionRepository
}

func NewSubscriptionsController(subscriptions repositories.SubscriptionRepository) *SubscriptionsController {
	return &SubscriptionsController{Subscriptions: subscriptions}
}

func (c *SubscriptionsController) ListSubscriptions(ctx context.Context) ([]*schemas.SubscriptionResponse, error) {
	subscriptions, err := c.Subscriptions.List(ctx)
	if err != nil {
		return nil, utils.InternalServerError(err.Error())
	}

	responses := make([]*schemas.SubscriptionResponse, 0, len(subscriptions))
	for i := range subscriptions {
		responses = append(responses, schemas.NewSubscriptionResponse(&subscriptions[i]))
	}
	return responses, nil
}

func (c *SubscriptionsController) CreateSubscription(ctx context.Context, req *schemas.CreateSubscriptionRequest) (*schemas.SubscriptionResponse, error) {
	if req.Name == "" || req.Amount == nil {
		return nil, utils.BadRequest("name and amount are required")
	}

	subscription := &models.Subscription{
		Name:         req.Name,
		Amount:       *req.Amount,
		BillingCycle: req.BillingCycle,
		Notes:        req.Notes,
	}
	if err := c.Subscriptions.Create(ctx, subscription); err != nil {
		logPersistenceError(ctx, err, "subscriptions", 0)
		return nil, utils.InternalServerError(err.Error())
	}
	return schemas.NewSubscriptionResponse(subscription), nil
}

func (c *SubscriptionsController) UpdateSubscription(ctx context.Context, req *schemas.UpdateSubscriptionRequest) (*schemas.SubscriptionResponse, error) {
	if req.ID == 0 {
		return nil, utils.BadRequest("id is required")
	}
	if req.Name == "" || req.Amount == nil {
		return nil, utils.BadRequest("name and amount are required")
	}

	subscription := &models.Subscription{
		ID:           req.ID,
		Name:         req.Name,
		Amount:       *req.Amount,
		BillingCycle: req.BillingCycle,
		Notes:        req.Notes,
	}
	if err := c.Subscriptions.Update(ctx, subscription); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("subscription %d not found", req.ID))
	}
	return schemas.NewSubscriptionResponse(subscription), nil
}

func (c *SubscriptionsController) DeleteSubscription(ctx context.Context, id int) error {
	if err := c.Subscriptions.Delete(ctx, id); err != nil {
		return mapRepoError(err, fmt.Sprintf("subscription %d not found", id))
	}
	return nil
}
