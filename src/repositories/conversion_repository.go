package repositories

import (
	"context"

	"networth/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ConversionRepository interface {
	List(ctx context.Context) ([]models.Conversion, error)
	GetByID(ctx context.Context, id int) (*models.Conversion, error)
	Create(ctx context.Context, conversion *models.Conversion) error
	Update(ctx context.Context, conversion *models.Conversion) error
	Delete(ctx context.Context, id int) error
}

type conversionRepo struct {
	db *pgxpool.Pool
}

func NewConversionRepository(db *pgxpool.Pool) ConversionRepository {
	return &conversionRepo{db: db}
}

func (r *conversionRepo) List(ctx context.Context) ([]models.Conversion, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, amount, tax_year, conversion_date, notes, created_at, updated_at
		FROM solo_401k_conversions ORDER BY conversion_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversions []models.Conversion
	for rows.Next() {
		var c models.Conversion
		if err := rows.Scan(&c.ID, &c.Amount, &c.TaxYear, &c.ConversionDate, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		conversions = append(conversions, c)
	}
	return conversions, rows.Err()
}

func (r *conversionRepo) GetByID(ctx context.Context, id int) (*models.Conversion, error) {
	var c models.Conversion
	err := r.db.QueryRow(ctx, `
		SELECT id, amount, tax_year, conversion_date, notes, created_at, updated_at
		FROM solo_401k_conversions WHERE id = $1`, id).
		Scan(&c.ID, &c.Amount, &c.TaxYear, &c.ConversionDate, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *conversionRepo) Create(ctx context.Context, conversion *models.Conversion) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO solo_401k_conversions (amount, tax_year, conversion_date, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		conversion.Amount, conversion.TaxYear, conversion.ConversionDate, conversion.Notes,
	).Scan(&conversion.ID, &conversion.CreatedAt, &conversion.UpdatedAt)
}

func (r *conversionRepo) Update(ctx context.Context, conversion *models.Conversion) error {
	return r.db.QueryRow(ctx, `
		UPDATE solo_401k_conversions
		SET amount = $1, tax_year = $2, conversion_date = $3, notes = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at`,
		conversion.Amount, conversion.TaxYear, conversion.ConversionDate, conversion.Notes, conversion.ID,
	).Scan(&conversion.CreatedAt, &conversion.UpdatedAt)
}

func (r *conversionRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM solo_401k_conversions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
