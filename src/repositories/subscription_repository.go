package repositories

import (
	"context"

	"networth/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriptionRepository interface {
	List(ctx context.Context) ([]models.Subscription, error)
	GetByID(ctx context.Context, id int) (*models.Subscription, error)
	Create(ctx context.Context, subscription *models.Subscription) error
	Update(ctx context.Context, subscription *models.Subscription) error
	Delete(ctx context.Context, id int) error
}

type subscriptionRepo struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) SubscriptionRepository {
	return &subscriptionRepo{db: db}
}

func (r *subscriptionRepo) List(ctx context.Context) ([]models.Subscription, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, amount, billing_cycle, notes, created_at, updated_at
		FROM subscriptions ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subscriptions []models.Subscription
	for rows.Next() {
		var s models.Subscription
		if err := rows.Scan(&s.ID, &s.Name, &s.Amount, &s.BillingCycle, &s.Notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, s)
	}
	return subscriptions, rows.Err()
}

func (r *subscriptionRepo) GetByID(ctx context.Context, id int) (*models.Subscription, error) {
	var s models.Subscription
	err := r.db.QueryRow(ctx, `
		SELECT id, name, amount, billing_cycle, notes, created_at, updated_at
		FROM subscriptions WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Amount, &s.BillingCycle, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *subscriptionRepo) Create(ctx context.Context, subscription *models.Subscription) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO subscriptions (name, amount, billing_cycle, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		subscription.Name, subscription.Amount, subscription.BillingCycle, subscription.Notes,
	).Scan(&subscription.ID, &subscription.CreatedAt, &subscription.UpdatedAt)
}

func (r *subscriptionRepo) Update(ctx context.Context, subscription *models.Subscription) error {
	return r.db.QueryRow(ctx, `
		UPDATE subscriptions
		SET name = $1, amount = $2, billing_cycle = $3, notes = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at`,
		subscription.Name, subscription.Amount, subscription.BillingCycle, subscription.Notes, subscription.ID,
	).Scan(&subscription.CreatedAt, &subscription.UpdatedAt)
}

func (r *subscriptionRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM subscriptions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
