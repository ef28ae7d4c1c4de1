package schemas

import "encoding/json"

// LogRowResponse is the raw activity log row, snapshots left as JSON.
type LogRowResponse struct {
	ID        int             `json:"id"`
	TableName string          `json:"tableName"`
	RecordID  int             `json:"recordId"`
	Operation string          `json:"operation"`
	OldValues json.RawMessage `json:"oldValues,omitempty"`
	NewValues json.RawMessage `json:"newValues,omitempty"`
	CreatedAt string          `json:"createdAt"`
}

// FieldChange is one before/after delta in an UPDATE row.
type FieldChange struct {
	From interface{} `json:"from"`
	To   interface{} `json:"to"`
}

// ActivityLogResponse is a log row with snapshots parsed into objects and,
// for UPDATE rows, the computed field-level changes.
type ActivityLogResponse struct {
	ID        int                    `json:"id"`
	TableName string                 `json:"tableName"`
	RecordID  int                    `json:"recordId"`
	Operation string                 `json:"operation"`
	Portfolio string                 `json:"portfolio,omitempty"`
	OldValues map[string]interface{} `json:"oldValues,omitempty"`
	NewValues map[string]interface{} `json:"newValues,omitempty"`
	Changes   map[string]FieldChange `json:"changes,omitempty"`
	CreatedAt string                 `json:"createdAt"`
}

// PaginatedLogsResponse wraps a page of activity log rows.
type PaginatedLogsResponse struct {
	Logs       []*ActivityLogResponse `json:"logs"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	TotalPages int                    `json:"total_pages"`
	PageSize   int                    `json:"page_size"`
}
