package models

import "time"

// Income is one recurring or one-off income entry.
type Income struct {
	ID        int       `db:"id"`
	Source    string    `db:"source"`
	Amount    float64   `db:"amount"`
	Frequency string    `db:"frequency"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
