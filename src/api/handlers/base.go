package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"networth/src/api/controllers"
	"networth/src/models"
	"networth/src/utils"

	"github.com/go-chi/chi/v5"
)

// requestTimeout bounds every inbound request, including its provider calls.
const requestTimeout = 10 * time.Second

type Handler struct {
	Assets        controllers.AssetsControllerI
	Prices        controllers.PricesControllerI
	Logs          controllers.LogsControllerI
	Snapshots     controllers.SnapshotsControllerI
	Incomes       controllers.IncomesControllerI
	Subscriptions controllers.SubscriptionsControllerI
	Conversions   controllers.ConversionsControllerI
}

func Healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	if errors.Is(err, context.DeadlineExceeded) {
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
	} else if errors.As(err, &httpErr) {
		h.respond(w, nil, map[string]string{"error": httpErr.Message}, httpErr.Code)
	} else if err != nil {
		h.respond(w, nil, map[string]string{"error": err.Error()}, http.StatusInternalServerError)
	} else {
		h.respond(w, nil, map[string]string{"error": "Unhandled error"}, http.StatusInternalServerError)
	}
}

// portfolioParam resolves the {portfolio} URL parameter.
func portfolioParam(r *http.Request) (models.Portfolio, error) {
	portfolio, err := models.ParsePortfolio(chi.URLParam(r, "portfolio"))
	if err != nil {
		return "", utils.BadRequest(err.Error())
	}
	return portfolio, nil
}

// idQueryParam resolves the required ?id= query parameter.
func idQueryParam(r *http.Request) (int, error) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		return 0, utils.BadRequest("id is required")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, utils.BadRequest("id must be an integer")
	}
	return id, nil
}

// intQueryParam parses an optional integer query parameter, falling back on
// absence or garbage.
func intQueryParam(r *http.Request, name string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return value
}
