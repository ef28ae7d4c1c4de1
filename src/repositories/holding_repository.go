package repositories

import (
	"context"
	"fmt"

	"networth/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HoldingRepository interface {
	List(ctx context.Context, portfolio models.Portfolio) ([]models.Holding, error)
	GetByID(ctx context.Context, portfolio models.Portfolio, id int) (*models.Holding, error)
	Create(ctx context.Context, portfolio models.Portfolio, holding *models.Holding) error
	Update(ctx context.Context, portfolio models.Portfolio, holding *models.Holding) error
	Delete(ctx context.Context, portfolio models.Portfolio, id int) error
}

type holdingRepo struct {
	db *pgxpool.Pool
}

func NewHoldingRepository(db *pgxpool.Pool) HoldingRepository {
	return &holdingRepo{db: db}
}

const holdingColumns = `id, symbol, name, asset_type, quantity, current_price, total_value, notes, price_updated_at, created_at, updated_at`

func scanHolding(row pgx.Row, h *models.Holding) error {
	return row.Scan(
		&h.ID,
		&h.Symbol,
		&h.Name,
		&h.AssetType,
		&h.Quantity,
		&h.CurrentPrice,
		&h.TotalValue,
		&h.Notes,
		&h.PriceUpdated,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
}

func (r *holdingRepo) List(ctx context.Context, portfolio models.Portfolio) ([]models.Holding, error) {
	// Portfolio maps to a whitelisted table name, never user input
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY symbol ASC`, holdingColumns, portfolio.TableName())
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []models.Holding
	for rows.Next() {
		var h models.Holding
		if err := scanHolding(rows, &h); err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

func (r *holdingRepo) GetByID(ctx context.Context, portfolio models.Portfolio, id int) (*models.Holding, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, holdingColumns, portfolio.TableName())
	var h models.Holding
	if err := scanHolding(r.db.QueryRow(ctx, query, id), &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *holdingRepo) Create(ctx context.Context, portfolio models.Portfolio, holding *models.Holding) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (symbol, name, asset_type, quantity, current_price, total_value, notes, price_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at, updated_at`, portfolio.TableName())
	return r.db.QueryRow(ctx, query,
		holding.Symbol,
		holding.Name,
		holding.AssetType,
		holding.Quantity,
		holding.CurrentPrice,
		holding.TotalValue,
		holding.Notes,
	).Scan(&holding.ID, &holding.CreatedAt, &holding.UpdatedAt)
}

func (r *holdingRepo) Update(ctx context.Context, portfolio models.Portfolio, holding *models.Holding) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET
			symbol = $1,
			name = $2,
			asset_type = $3,
			quantity = $4,
			current_price = $5,
			total_value = $6,
			notes = $7,
			price_updated_at = NOW(),
			updated_at = NOW()
		WHERE id = $8
		RETURNING created_at, updated_at`, portfolio.TableName())
	return r.db.QueryRow(ctx, query,
		holding.Symbol,
		holding.Name,
		holding.AssetType,
		holding.Quantity,
		holding.CurrentPrice,
		holding.TotalValue,
		holding.Notes,
		holding.ID,
	).Scan(&holding.CreatedAt, &holding.UpdatedAt)
}

func (r *holdingRepo) Delete(ctx context.Context, portfolio models.Portfolio, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, portfolio.TableName())
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
