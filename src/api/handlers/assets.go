package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"networth/src/schemas"
	"networth/src/utils"
)

func (h *Handler) GetHoldings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	portfolio, err := portfolioParam(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	holdings, err := h.Assets.ListHoldings(ctx, portfolio)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, holdings, http.StatusOK)
}

func (h *Handler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	portfolio, err := portfolioParam(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.CreateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	holding, err := h.Assets.CreateHolding(ctx, portfolio, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, holding, http.StatusCreated)
}

func (h *Handler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	portfolio, err := portfolioParam(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.UpdateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	holding, err := h.Assets.UpdateHolding(ctx, portfolio, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, holding, http.StatusOK)
}

func (h *Handler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	portfolio, err := portfolioParam(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	id, err := idQueryParam(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Assets.DeleteHolding(ctx, portfolio, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, schemas.DeleteResponse{Success: true}, http.StatusOK)
}
