package schemas

import (
	"networth/src/models"
	"networth/src/utils"
)

type CreateSubscriptionRequest struct {
	Name         string   `json:"name"`
	Amount       *float64 `json:"amount"`
	BillingCycle string   `json:"billingCycle"`
	Notes        string   `json:"notes,omitempty"`
}

type UpdateSubscriptionRequest struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Amount       *float64 `json:"amount"`
	BillingCycle string   `json:"billingCycle"`
	Notes        string   `json:"notes,omitempty"`
}

type SubscriptionResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	BillingCycle string  `json:"billingCycle"`
	Notes        string  `json:"notes,omitempty"`
	LastUpdated  string  `json:"lastUpdated"`
}

func NewSubscriptionResponse(s *models.Subscription) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:           s.ID,
		Name:         s.Name,
		Amount:       s.Amount,
		BillingCycle: s.BillingCycle,
		Notes:        s.Notes,
		LastUpdated:  utils.FormatShortDate(s.UpdatedAt),
	}
}
