package schemas

import (
	"networth/src/models"
	"networth/src/utils"
)

// UpsertSnapshotRequest creates or overwrites the snapshot for (month, year).
type UpsertSnapshotRequest struct {
	Month  *int     `json:"month"`
	Year   *int     `json:"year"`
	Cash   *float64 `json:"cash"`
	Stocks *float64 `json:"stocks"`
	Crypto *float64 `json:"crypto"`
	Gold   *float64 `json:"gold"`
	Silver *float64 `json:"silver"`
	Misc   *float64 `json:"misc"`
	Notes  string   `json:"notes,omitempty"`
}

type SnapshotResponse struct {
	ID          int     `json:"id"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	Cash        float64 `json:"cash"`
	Stocks      float64 `json:"stocks"`
	Crypto      float64 `json:"crypto"`
	Gold        float64 `json:"gold"`
	Silver      float64 `json:"silver"`
	Misc        float64 `json:"misc"`
	Total       float64 `json:"total"`
	Notes       string  `json:"notes,omitempty"`
	LastUpdated string  `json:"lastUpdated"`
}

func NewSnapshotResponse(s *models.MonthlySnapshot) *SnapshotResponse {
	return &SnapshotResponse{
		ID:          s.ID,
		Month:       s.Month,
		Year:        s.Year,
		Cash:        s.Cash,
		Stocks:      s.Stocks,
		Crypto:      s.Crypto,
		Gold:        s.Gold,
		Silver:      s.Silver,
		Misc:        s.Misc,
		Total:       s.Total(),
		Notes:       s.Notes,
		LastUpdated: utils.FormatShortDate(s.UpdatedAt),
	}
}
