package models

import "time"

// Subscription is one recurring cost entry.
type Subscription struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Amount       float64   `db:"amount"`
	BillingCycle string    `db:"billing_cycle"`
	Notes        string    `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
