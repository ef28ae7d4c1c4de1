package repositories

import (
	"context"

	"networth/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SnapshotRepository interface {
	List(ctx context.Context) ([]models.MonthlySnapshot, error)
	Upsert(ctx context.Context, snapshot *models.MonthlySnapshot) error
	Delete(ctx context.Context, id int) error
}

type snapshotRepo struct {
	db *pgxpool.Pool
}

func NewSnapshotRepository(db *pgxpool.Pool) SnapshotRepository {
	return &snapshotRepo{db: db}
}

func (r *snapshotRepo) List(ctx context.Context) ([]models.MonthlySnapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, month, year, cash, stocks, crypto, gold, silver, misc, notes, created_at, updated_at
		FROM monthly_snapshots
		ORDER BY year DESC, month DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []models.MonthlySnapshot
	for rows.Next() {
		var s models.MonthlySnapshot
		if err := rows.Scan(&s.ID, &s.Month, &s.Year, &s.Cash, &s.Stocks, &s.Crypto, &s.Gold, &s.Silver, &s.Misc, &s.Notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

// Upsert creates the (month, year) row or overwrites its category values.
func (r *snapshotRepo) Upsert(ctx context.Context, snapshot *models.MonthlySnapshot) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO monthly_snapshots (month, year, cash, stocks, crypto, gold, silver, misc, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (month, year) DO UPDATE SET
			cash = EXCLUDED.cash,
			stocks = EXCLUDED.stocks,
			crypto = EXCLUDED.crypto,
			gold = EXCLUDED.gold,
			silver = EXCLUDED.silver,
			misc = EXCLUDED.misc,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`,
		snapshot.Month,
		snapshot.Year,
		snapshot.Cash,
		snapshot.Stocks,
		snapshot.Crypto,
		snapshot.Gold,
		snapshot.Silver,
		snapshot.Misc,
		snapshot.Notes,
	).Scan(&snapshot.ID, &snapshot.CreatedAt, &snapshot.UpdatedAt)
}

func (r *snapshotRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM monthly_snapshots WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
