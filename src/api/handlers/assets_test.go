package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"networth/src/models"
	"networth/src/schemas"
	"networth/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssetsController struct {
	holdings  []*schemas.HoldingResponse
	err       error
	deletedID int
	portfolio models.Portfolio
}

func (f *fakeAssetsController) ListHoldings(_ context.Context, portfolio models.Portfolio) ([]*schemas.HoldingResponse, error) {
	f.portfolio = portfolio
	return f.holdings, f.err
}

func (f *fakeAssetsController) CreateHolding(_ context.Context, portfolio models.Portfolio, req *schemas.CreateHoldingRequest) (*schemas.HoldingResponse, error) {
	f.portfolio = portfolio
	if f.err != nil {
		return nil, f.err
	}
	return &schemas.HoldingResponse{ID: 1, Symbol: req.Symbol, Type: req.Type}, nil
}

func (f *fakeAssetsController) UpdateHolding(_ context.Context, portfolio models.Portfolio, req *schemas.UpdateHoldingRequest) (*schemas.HoldingResponse, error) {
	f.portfolio = portfolio
	if f.err != nil {
		return nil, f.err
	}
	return &schemas.HoldingResponse{ID: req.ID, Symbol: req.Symbol, Type: req.Type}, nil
}

func (f *fakeAssetsController) DeleteHolding(_ context.Context, portfolio models.Portfolio, id int) error {
	f.portfolio = portfolio
	f.deletedID = id
	return f.err
}

func newAssetsRouter(controller *fakeAssetsController) *chi.Mux {
	handler := &Handler{Assets: controller}
	router := chi.NewRouter()
	router.Route("/api/assets/{portfolio}", func(r chi.Router) {
		r.Get("/", handler.GetHoldings)
		r.Post("/", handler.CreateHolding)
		r.Put("/", handler.UpdateHolding)
		r.Delete("/", handler.DeleteHolding)
	})
	return router
}

func TestGetHoldings(t *testing.T) {
	t.Run("returns the portfolio's holdings", func(t *testing.T) {
		controller := &fakeAssetsController{holdings: []*schemas.HoldingResponse{{ID: 1, Symbol: "AAPL"}}}
		router := newAssetsRouter(controller)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/assets/personal", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
		assert.Equal(t, models.PortfolioPersonal, controller.portfolio)

		var holdings []schemas.HoldingResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &holdings))
		require.Len(t, holdings, 1)
		assert.Equal(t, "AAPL", holdings[0].Symbol)
	})

	t.Run("unknown portfolios are a bad request", func(t *testing.T) {
		router := newAssetsRouter(&fakeAssetsController{})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/assets/roth_ira", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestCreateHoldingHandler(t *testing.T) {
	t.Run("created holdings come back as 201", func(t *testing.T) {
		controller := &fakeAssetsController{}
		router := newAssetsRouter(controller)

		body := strings.NewReader(`{"symbol":"VTI","name":"Vanguard Total","type":"STOCK","quantity":10}`)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/assets/solo_401k", body))

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, models.PortfolioSolo401k, controller.portfolio)

		var holding schemas.HoldingResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &holding))
		assert.Equal(t, "VTI", holding.Symbol)
	})

	t.Run("malformed bodies are a bad request", func(t *testing.T) {
		router := newAssetsRouter(&fakeAssetsController{})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/assets/personal", strings.NewReader(`{not json`)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("controller errors map to their status", func(t *testing.T) {
		controller := &fakeAssetsController{err: utils.BadRequest("symbol, name, type and quantity are required")}
		router := newAssetsRouter(controller)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/assets/personal", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		assert.Equal(t, "symbol, name, type and quantity are required", payload["error"])
	})
}

func TestUpdateHoldingHandler(t *testing.T) {
	t.Run("not found propagates as 404", func(t *testing.T) {
		controller := &fakeAssetsController{err: utils.NotFound("holding 42 not found")}
		router := newAssetsRouter(controller)

		body := strings.NewReader(`{"id":42,"symbol":"AAPL","name":"Apple","type":"STOCK","quantity":1}`)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/api/assets/personal", body))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestDeleteHoldingHandler(t *testing.T) {
	t.Run("responds with the success envelope", func(t *testing.T) {
		controller := &fakeAssetsController{}
		router := newAssetsRouter(controller)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/assets/personal?id=7", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 7, controller.deletedID)
		assert.JSONEq(t, `{"success":true}`, recorder.Body.String())
	})

	t.Run("missing id is a bad request", func(t *testing.T) {
		router := newAssetsRouter(&fakeAssetsController{})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/assets/personal", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("non-numeric id is a bad request", func(t *testing.T) {
		router := newAssetsRouter(&fakeAssetsController{})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/assets/personal?id=abc", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
