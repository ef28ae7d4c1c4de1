package repositories

import (
	"context"
	"fmt"

	"networth/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityLogFilter narrows log reads. Zero values mean "no filter".
type ActivityLogFilter struct {
	TableName string
	RecordID  *int
	Operation string
	Limit     int
	Offset    int
}

type ActivityLogRepository interface {
	Append(ctx context.Context, log *models.ActivityLog) error
	List(ctx context.Context, filter ActivityLogFilter) ([]models.ActivityLog, error)
	Count(ctx context.Context, filter ActivityLogFilter) (int, error)
}

type activityLogRepo struct {
	db *pgxpool.Pool
}

func NewActivityLogRepository(db *pgxpool.Pool) ActivityLogRepository {
	return &activityLogRepo{db: db}
}

func (r *activityLogRepo) Append(ctx context.Context, log *models.ActivityLog) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO activity_logs (table_name, record_id, operation, old_values, new_values)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		log.TableName,
		log.RecordID,
		log.Operation,
		log.OldValues,
		log.NewValues,
	).Scan(&log.ID, &log.CreatedAt)
}

// filterClause builds the WHERE clause shared by List and Count.
func (f ActivityLogFilter) filterClause() (string, []interface{}) {
	clause := ""
	args := []interface{}{}
	add := func(cond string, value interface{}) {
		args = append(args, value)
		if clause == "" {
			clause = " WHERE "
		} else {
			clause += " AND "
		}
		clause += fmt.Sprintf(cond, len(args))
	}

	if f.TableName != "" {
		add("table_name = $%d", f.TableName)
	}
	if f.RecordID != nil {
		add("record_id = $%d", *f.RecordID)
	}
	if f.Operation != "" {
		add("operation = $%d", f.Operation)
	}
	return clause, args
}

func (r *activityLogRepo) List(ctx context.Context, filter ActivityLogFilter) ([]models.ActivityLog, error) {
	clause, args := filter.filterClause()
	query := `SELECT id, table_name, record_id, operation, old_values, new_values, created_at FROM activity_logs` +
		clause + ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET %d`, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.ActivityLog
	for rows.Next() {
		var l models.ActivityLog
		if err := rows.Scan(&l.ID, &l.TableName, &l.RecordID, &l.Operation, &l.OldValues, &l.NewValues, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *activityLogRepo) Count(ctx context.Context, filter ActivityLogFilter) (int, error) {
	clause, args := filter.filterClause()
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM activity_logs`+clause, args...).Scan(&total)
	return total, err
}
