package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"networth/src/schemas"
	"networth/src/utils"
)

func (h *Handler) GetIncomes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	incomes, err := h.Incomes.ListIncomes(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, incomes, http.StatusOK)
}

func (h *Handler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req schemas.CreateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	income, err := h.Incomes.CreateIncome(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, income, http.StatusCreated)
}

func (h *Handler) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req schemas.UpdateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	income, err := h.Incomes.UpdateIncome(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, income, http.StatusOK)
}

func (h *Handler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idQueryParam(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Incomes.DeleteIncome(ctx, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, schemas.DeleteResponse{Success: true}, http.StatusOK)
}
