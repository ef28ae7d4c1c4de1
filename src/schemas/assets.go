package schemas

import (
	"networth/src/models"
	"networth/src/utils"
)

type CreateHoldingRequest struct {
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Quantity *float64 `json:"quantity"`
	Notes    string   `json:"notes,omitempty"`
}

type UpdateHoldingRequest struct {
	ID       int      `json:"id"`
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Quantity *float64 `json:"quantity"`
	Notes    string   `json:"notes,omitempty"`
}

type HoldingResponse struct {
	ID           int     `json:"id"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Quantity     float64 `json:"quantity"`
	CurrentPrice float64 `json:"currentPrice"`
	TotalValue   float64 `json:"totalValue"`
	Notes        string  `json:"notes,omitempty"`
	LastUpdated  string  `json:"lastUpdated"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}

// NewHoldingResponse renders a holding row with the legacy MM/DD/YY
// display date.
func NewHoldingResponse(h *models.Holding) *HoldingResponse {
	return &HoldingResponse{
		ID:           h.ID,
		Symbol:       h.Symbol,
		Name:         h.Name,
		Type:         string(h.AssetType),
		Quantity:     h.Quantity,
		CurrentPrice: h.CurrentPrice,
		TotalValue:   h.TotalValue,
		Notes:        h.Notes,
		LastUpdated:  utils.FormatShortDate(h.UpdatedAt),
	}
}
