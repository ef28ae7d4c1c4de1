package handlers

import (
	"context"
	"net/http"
	"strings"

	"networth/src/models"
	"networth/src/utils"
)

// GetPrices serves both the single-symbol lookup (?symbol=&type=) and the
// multi-symbol map (?symbols=a,b,c). Multi-symbol failures yield 0 per
// symbol; single-symbol failures propagate.
func (h *Handler) GetPrices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	assetType := models.AssetTypeStock
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		parsed, err := models.ParseAssetType(typeStr)
		if err != nil {
			h.HandleErrors(w, utils.BadRequest(err.Error()))
			return
		}
		assetType = parsed
	}

	if symbols := r.URL.Query().Get("symbols"); symbols != "" {
		prices, err := h.Prices.GetPrices(ctx, strings.Split(symbols, ","), assetType)
		if err != nil {
			h.HandleErrors(w, err)
			return
		}
		h.respond(w, r, prices, http.StatusOK)
		return
	}

	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		h.HandleErrors(w, utils.BadRequest("symbol is required"))
		return
	}

	price, err := h.Prices.GetPrice(ctx, symbol, assetType)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, price, http.StatusOK)
}

// RefreshPrices runs the batch refresh over both portfolios.
func (h *Handler) RefreshPrices(w http.ResponseWriter, r *http.Request) {
	// Batch refresh visits every holding; give it more room than a
	// single lookup
	ctx, cancel := context.WithTimeout(r.Context(), 3*requestTimeout)
	defer cancel()

	result, err := h.Prices.RefreshAll(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, result, http.StatusOK)
}

func (h *Handler) SearchTickers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	assetType := models.AssetTypeStock
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		parsed, err := models.ParseAssetType(typeStr)
		if err != nil {
			h.HandleErrors(w, utils.BadRequest(err.Error()))
			return
		}
		assetType = parsed
	}

	suggestions, err := h.Prices.SearchTickers(ctx, r.URL.Query().Get("q"), assetType)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, suggestions, http.StatusOK)
}
