package schemas

import (
	"networth/src/models"
	"networth/src/utils"
)

type CreateConversionRequest struct {
	Amount *float64 `json:"amount"`
	// Date uses the legacy MM/DD/YY display format
	Date    string `json:"date"`
	TaxYear *int   `json:"taxYear"`
	Notes   string `json:"notes,omitempty"`
}

type UpdateConversionRequest struct {
	ID      int      `json:"id"`
	Amount  *float64 `json:"amount"`
	Date    string   `json:"date"`
	TaxYear *int     `json:"taxYear"`
	Notes   string   `json:"notes,omitempty"`
}

type ConversionResponse struct {
	ID          int     `json:"id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	TaxYear     int     `json:"taxYear"`
	Notes       string  `json:"notes,omitempty"`
	LastUpdated string  `json:"lastUpdated"`
}

func NewConversionResponse(c *models.Conversion) *ConversionResponse {
	return &ConversionResponse{
		ID:          c.ID,
		Amount:      c.Amount,
		Date:        utils.FormatShortDate(c.ConversionDate),
		TaxYear:     c.TaxYear,
		Notes:       c.Notes,
		LastUpdated: utils.FormatShortDate(c.UpdatedAt),
	}
}
