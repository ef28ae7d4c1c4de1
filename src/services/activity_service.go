package services

import (
	"encoding/json"
	"reflect"
	"strings"

	"networth/src/models"
	"networth/src/schemas"
	"networth/src/utils"
)

// Identity and timestamp fields carry no audit value and are excluded from
// diffs, matched case-insensitively.
var excludedDiffFields = map[string]bool{
	"id":        true,
	"createdat": true,
	"updatedat": true,
}

// ComputeChanges returns the field-level before/after deltas between two
// snapshots, or nil when nothing changed. Values are compared structurally,
// so nested objects compare by value; null and absent keys collapse to the
// same sentinel.
func ComputeChanges(oldValues, newValues map[string]interface{}) map[string]schemas.FieldChange {
	if oldValues == nil || newValues == nil {
		return nil
	}

	keys := map[string]bool{}
	for k := range oldValues {
		keys[k] = true
	}
	for k := range newValues {
		keys[k] = true
	}

	changes := map[string]schemas.FieldChange{}
	for key := range keys {
		if excludedDiffFields[strings.ToLower(key)] {
			continue
		}
		from := oldValues[key]
		to := newValues[key]
		if !reflect.DeepEqual(from, to) {
			changes[key] = schemas.FieldChange{From: from, To: to}
		}
	}

	if len(changes) == 0 {
		return nil
	}
	return changes
}

// parseSnapshot decodes a stored JSON snapshot; invalid or empty blobs
// parse to nil rather than failing the whole log read.
func parseSnapshot(raw []byte) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var values map[string]interface{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}

// NewActivityLogResponse parses a log row's snapshots, infers the
// portfolio from the table name and, for UPDATE rows, computes the
// field-level changes.
func NewActivityLogResponse(log *models.ActivityLog) *schemas.ActivityLogResponse {
	response := &schemas.ActivityLogResponse{
		ID:        log.ID,
		TableName: log.TableName,
		RecordID:  log.RecordID,
		Operation: log.Operation,
		Portfolio: string(models.PortfolioForTable(log.TableName)),
		OldValues: parseSnapshot(log.OldValues),
		NewValues: parseSnapshot(log.NewValues),
		CreatedAt: utils.FormatShortDate(log.CreatedAt),
	}
	if log.Operation == models.OperationUpdate {
		response.Changes = ComputeChanges(response.OldValues, response.NewValues)
	}
	return response
}
