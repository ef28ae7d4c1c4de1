package models

import "time"

// Activity log operations.
const (
	OperationInsert = "INSERT"
	OperationUpdate = "UPDATE"
	OperationDelete = "DELETE"
)

// Actions recorded inside the value snapshots of asset mutations.
const (
	ActionInitialAdd   = "INITIAL_ADD"
	ActionManualUpdate = "MANUAL_UPDATE"
	ActionSell         = "SELL"
)

// ActivityLog is one append-only audit row. OldValues/NewValues hold JSON
// snapshots of the source record; either may be null depending on the
// operation. Rows are never mutated or deleted by the application.
type ActivityLog struct {
	ID        int       `db:"id"`
	TableName string    `db:"table_name"`
	RecordID  int       `db:"record_id"`
	Operation string    `db:"operation"`
	OldValues []byte    `db:"old_values"`
	NewValues []byte    `db:"new_values"`
	CreatedAt time.Time `db:"created_at"`
}
