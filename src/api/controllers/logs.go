package controllers

import (
	"context"
	"encoding/json"

	"networth/src/models"
	"networth/src/repositories"
	"networth/src/schemas"
	"networth/src/services"
	"networth/src/utils"
)

const defaultLogPageSize = 20

type LogsControllerI interface {
	GetLogs(ctx context.Context, portfolio models.Portfolio, limit int) ([]*schemas.LogRowResponse, error)
	GetActivityLogs(ctx context.Context, filter repositories.ActivityLogFilter) ([]*schemas.ActivityLogResponse, error)
	GetPaginatedLogs(ctx context.Context, filter repositories.ActivityLogFilter, page, pageSize int) (*schemas.PaginatedLogsResponse, error)
}

type LogsController struct {
	Logs repositories.ActivityLogRepository
}

func NewLogsController(logs repositories.ActivityLogRepository) *LogsController {
	return &LogsController{Logs: logs}
}

// GetLogs returns raw rows for one portfolio, snapshots left as stored JSON.
func (c *LogsController) GetLogs(ctx context.Context, portfolio models.Portfolio, limit int) ([]*schemas.LogRowResponse, error) {
	filter := repositories.ActivityLogFilter{TableName: portfolio.TableName(), Limit: limit}
	logs, err := c.Logs.List(ctx, filter)
	if err != nil {
		return nil, utils.InternalServerError(err.Error())
	}

	responses := make([]*schemas.LogRowResponse, 0, len(logs))
	for i := range logs {
		l := logs[i]
		responses = append(responses, &schemas.LogRowResponse{
			ID:        l.ID,
			TableName: l.TableName,
			RecordID:  l.RecordID,
			Operation: l.Operation,
			OldValues: json.RawMessage(l.OldValues),
			NewValues: json.RawMessage(l.NewValues),
			CreatedAt: utils.FormatShortDate(l.CreatedAt),
		})
	}
	return responses, nil
}

// GetActivityLogs returns filtered rows with snapshots parsed into objects.
func (c *LogsController) GetActivityLogs(ctx context.Context, filter repositories.ActivityLogFilter) ([]*schemas.ActivityLogResponse, error) {
	logs, err := c.Logs.List(ctx, filter)
	if err != nil {
		return nil, utils.InternalServerError(err.Error())
	}

	responses := make([]*schemas.ActivityLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, services.NewActivityLogResponse(&logs[i]))
	}
	return responses, nil
}

// GetPaginatedLogs wraps GetActivityLogs with page arithmetic and per-row
// computed changes.
func (c *LogsController) GetPaginatedLogs(ctx context.Context, filter repositories.ActivityLogFilter, page, pageSize int) (*schemas.PaginatedLogsResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultLogPageSize
	}

	total, err := c.Logs.Count(ctx, filter)
	if err != nil {
		return nil, utils.InternalServerError(err.Error())
	}

	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize
	logs, err := c.GetActivityLogs(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &schemas.PaginatedLogsResponse{
		Logs:       logs,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		PageSize:   pageSize,
	}, nil
}
