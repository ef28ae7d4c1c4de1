package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"networth/src/schemas"
	"networth/src/utils"
)

func (h *Handler) GetSnapshots(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	snapshots, err := h.Snapshots.ListSnapshots(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, snapshots, http.StatusOK)
}

// UpsertSnapshot creates or overwrites the snapshot for (month, year).
func (h *Handler) UpsertSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req schemas.UpsertSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	snapshot, err := h.Snapshots.UpsertSnapshot(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, snapshot, http.StatusOK)
}

func (h *Handler) DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idQueryParam(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Snapshots.DeleteSnapshot(ctx, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, schemas.DeleteResponse{Success: true}, http.StatusOK)
}
