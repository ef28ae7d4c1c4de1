package schemas

import (
	"networth/src/models"
	"networth/src/utils"
)

type CreateIncomeRequest struct {
	Source    string   `json:"source"`
	Amount    *float64 `json:"amount"`
	Frequency string   `json:"frequency"`
	Notes     string   `json:"notes,omitempty"`
}

type UpdateIncomeRequest struct {
	ID        int      `json:"id"`
	Source    string   `json:"source"`
	Amount    *float64 `json:"amount"`
	Frequency string   `json:"frequency"`
	Notes     string   `json:"notes,omitempty"`
}

type IncomeResponse struct {
	ID          int     `json:"id"`
	Source      string  `json:"source"`
	Amount      float64 `json:"amount"`
	Frequency   string  `json:"frequency"`
	Notes       string  `json:"notes,omitempty"`
	LastUpdated string  `json:"lastUpdated"`
}

func NewIncomeResponse(i *models.Income) *IncomeResponse {
	return &IncomeResponse{
		ID:          i.ID,
		Source:      i.Source,
		Amount:      i.Amount,
		Frequency:   i.Frequency,
		Notes:       i.Notes,
		LastUpdated: utils.FormatShortDate(i.UpdatedAt),
	}
}
