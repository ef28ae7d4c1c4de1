package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"networth/src/schemas"
	"networth/src/utils"
)

func (h *Handler) GetConversions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	conversions, err := h.Conversions.ListConversions(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, conversions, http.StatusOK)
}

func (h *Handler) CreateConversion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req schemas.CreateConversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	conversion, err := h.Conversions.CreateConversion(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, conversion, http.StatusCreated)
}

func (h *Handler) UpdateConversion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req schemas.UpdateConversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	conversion, err := h.Conversions.UpdateConversion(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, conversion, http.StatusOK)
}

func (h *Handler) DeleteConversion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idQueryParam(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Conversions.DeleteConversion(ctx, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, schemas.DeleteResponse{Success: true}, http.StatusOK)
}
