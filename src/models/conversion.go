package models

import "time"

// Conversion tracks one Solo-401k contribution or Roth conversion for a
// given tax year.
type Conversion struct {
	ID             int       `db:"id"`
	Amount         float64   `db:"amount"`
	TaxYear        int       `db:"tax_year"`
	ConversionDate time.Time `db:"conversion_date"`
	Notes          string    `db:"notes"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
