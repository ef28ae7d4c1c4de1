package models

import "time"

// MonthlySnapshot is a manual valuation estimate, unique per (month, year).
type MonthlySnapshot struct {
	ID        int       `db:"id"`
	Month     int       `db:"month"`
	Year      int       `db:"year"`
	Cash      float64   `db:"cash"`
	Stocks    float64   `db:"stocks"`
	Crypto    float64   `db:"crypto"`
	Gold      float64   `db:"gold"`
	Silver    float64   `db:"silver"`
	Misc      float64   `db:"misc"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Total sums the six category estimates.
func (s *MonthlySnapshot) Total() float64 {
	return s.Cash + s.Stocks + s.Crypto + s.Gold + s.Silver + s.Misc
}
