package models

import (
	"time"
)

// Holding is one row of a portfolio table. The invariant
// TotalValue == Quantity * CurrentPrice holds after every successful
// create or update, with CurrentPrice pinned to 1.00 for fixed-value types.
type Holding struct {
	ID           int        `db:"id"`
	Symbol       string     `db:"symbol"`
	Name         string     `db:"name"`
	AssetType    AssetType  `db:"asset_type"`
	Quantity     float64    `db:"quantity"`
	CurrentPrice float64    `db:"current_price"`
	TotalValue   float64    `db:"total_value"`
	Notes        string     `db:"notes"`
	PriceUpdated *time.Time `db:"price_updated_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}
