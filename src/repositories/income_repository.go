package repositories

import (
	"context"

	"networth/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IncomeRepository interface {
	List(ctx context.Context) ([]models.Income, error)
	GetByID(ctx context.Context, id int) (*models.Income, error)
	Create(ctx context.Context, income *models.Income) error
	Update(ctx context.Context, income *models.Income) error
	Delete(ctx context.Context, id int) error
}

type incomeRepo struct {
	db *pgxpool.Pool
}

func NewIncomeRepository(db *pgxpool.Pool) IncomeRepository {
	return &incomeRepo{db: db}
}

func (r *incomeRepo) List(ctx context.Context) ([]models.Income, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, source, amount, frequency, notes, created_at, updated_at
		FROM incomes ORDER BY source ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []models.Income
	for rows.Next() {
		var i models.Income
		if err := rows.Scan(&i.ID, &i.Source, &i.Amount, &i.Frequency, &i.Notes, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		incomes = append(incomes, i)
	}
	return incomes, rows.Err()
}

func (r *incomeRepo) GetByID(ctx context.Context, id int) (*models.Income, error) {
	var i models.Income
	err := r.db.QueryRow(ctx, `
		SELECT id, source, amount, frequency, notes, created_at, updated_at
		FROM incomes WHERE id = $1`, id).
		Scan(&i.ID, &i.Source, &i.Amount, &i.Frequency, &i.Notes, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *incomeRepo) Create(ctx context.Context, income *models.Income) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO incomes (source, amount, frequency, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		income.Source, income.Amount, income.Frequency, income.Notes,
	).Scan(&income.ID, &income.CreatedAt, &income.UpdatedAt)
}

func (r *incomeRepo) Update(ctx context.Context, income *models.Income) error {
	return r.db.QueryRow(ctx, `
		UPDATE incomes
		SET source = $1, amount = $2, frequency = $3, notes = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at`,
		income.Source, income.Amount, income.Frequency, income.Notes, income.ID,
	).Scan(&income.CreatedAt, &income.UpdatedAt)
}

func (r *incomeRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM incomes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
