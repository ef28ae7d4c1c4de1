package handlers

import (
	"context"
	"net/http"
	"strconv"

	"networth/src/models"
	"networth/src/repositories"
	"networth/src/utils"
)

const defaultLogLimit = 50

// GetLogs returns raw log rows for one portfolio.
func (h *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	portfolioStr := r.URL.Query().Get("portfolio")
	if portfolioStr == "" {
		h.HandleErrors(w, utils.BadRequest("portfolio is required"))
		return
	}
	portfolio, err := models.ParsePortfolio(portfolioStr)
	if err != nil {
		h.HandleErrors(w, utils.BadRequest(err.Error()))
		return
	}

	logs, err := h.Logs.GetLogs(ctx, portfolio, intQueryParam(r, "limit", defaultLogLimit))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, logs, http.StatusOK)
}

// activityLogFilter builds the shared filter from query parameters.
func activityLogFilter(r *http.Request) repositories.ActivityLogFilter {
	filter := repositories.ActivityLogFilter{
		TableName: r.URL.Query().Get("table_name"),
		Operation: r.URL.Query().Get("operation"),
	}
	if recordIDStr := r.URL.Query().Get("record_id"); recordIDStr != "" {
		if recordID, err := strconv.Atoi(recordIDStr); err == nil {
			filter.RecordID = &recordID
		}
	}
	return filter
}

// GetActivityLogs returns filtered rows with parsed snapshots.
func (h *Handler) GetActivityLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	filter := activityLogFilter(r)
	filter.Limit = intQueryParam(r, "limit", defaultLogLimit)

	logs, err := h.Logs.GetActivityLogs(ctx, filter)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, logs, http.StatusOK)
}

// GetPaginatedLogs returns a page of rows with computed changes.
func (h *Handler) GetPaginatedLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	page, err := h.Logs.GetPaginatedLogs(ctx,
		activityLogFilter(r),
		intQueryParam(r, "page", 1),
		intQueryParam(r, "page_size", 0),
	)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, page, http.StatusOK)
}
