package controllers

import (
	"context"
	"fmt"

	"networth/src/models"
	"networth/src/repositories"
	"networth/src/schemas"
	"networth/src/utils"
)

type SnapshotsControllerI interface {
	ListSnapshots(ctx context.Context) ([]*schemas.SnapshotResponse, error)
	UpsertSnapshot(ctx context.Context, req *schemas.UpsertSnapshotRequest) (*schemas.SnapshotResponse, error)
	DeleteSnapshot(ctx context.Context, id int) error
}

type SnapshotsController struct {
	Snapshots repositories.SnapshotRepository
}

func NewSnapshotsController(snapshots repositories.SnapshotRepository) *SnapshotsController {
	return &SnapshotsController{Snapshots: snapshots}
}

func (c *SnapshotsController) ListSnapshots(ctx context.Context) ([]*schemas.SnapshotResponse, error) {
	snapshots, err := c.Snapshots.List(ctx)
	if err != nil {
		return nil, utils.InternalServerError(err.Error())
	}

	responses := make([]*schemas.SnapshotResponse, 0, len(snapshots))
	for i := range snapshots {
		responses = append(responses, schemas.NewSnapshotResponse(&snapshots[i]))
	}
	return responses, nil
}

// UpsertSnapshot creates the (month, year) row or overwrites its category
// values; calling it twice for the same key leaves exactly one row.
func (c *SnapshotsController) UpsertSnapshot(ctx context.Context, req *schemas.UpsertSnapshotRequest) (*schemas.SnapshotResponse, error) {
	if req.Month == nil || req.Year == nil {
		return nil, utils.BadRequest("month and year are required")
	}
	if *req.Month < 1 || *req.Month > 12 {
		return nil, utils.BadRequest(fmt.Sprintf("invalid month: %d", *req.Month))
	}

	snapshot := &models.MonthlySnapshot{
		Month:  *req.Month,
		Year:   *req.Year,
		Cash:   valueOrZero(req.Cash),
		Stocks: valueOrZero(req.Stocks),
		Crypto: valueOrZero(req.Crypto),
		Gold:   valueOrZero(req.Gold),
		Silver: valueOrZero(req.Silver),
		Misc:   valueOrZero(req.Misc),
		Notes:  req.Notes,
	}
	if err := c.Snapshots.Upsert(ctx, snapshot); err != nil {
		logPersistenceError(ctx, err, "monthly_snapshots", snapshot.ID)
		return nil, utils.InternalServerError(err.Error())
	}
	return schemas.NewSnapshotResponse(snapshot), nil
}

func (c *SnapshotsController) DeleteSnapshot(ctx context.Context, id int) error {
	if err := c.Snapshots.Delete(ctx, id); err != nil {
		return mapRepoError(err, fmt.Sprintf("snapshot %d not found", id))
	}
	return nil
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
