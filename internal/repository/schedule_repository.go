package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/shift-scheduler/internal/domain"
)

// ScheduleRepository encapsulates shift persistence. Every query takes
// the organization id as an explicit filter; there is no unscoped path.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) error
	// ListWindow returns shifts with start_ts >= start AND end_ts <= end.
	// The two bounds are applied independently, not as a range
	// intersection; shifts straddling either edge are excluded.
	ListWindow(ctx context.Context, orgID string, start, end time.Time) ([]domain.Schedule, error)
}

type scheduleRepository struct {
	pool *pgxpool.Pool
}

// NewScheduleRepository instantiates the repository.
func NewScheduleRepository(pool *pgxpool.Pool) ScheduleRepository {
	return &scheduleRepository{pool: pool}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	const query = `
        INSERT INTO schedules (org_id, title, start_ts, end_ts, user_id, created_by)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		schedule.OrgID,
		schedule.Title,
		schedule.StartTS,
		schedule.EndTS,
		schedule.UserID,
		schedule.CreatedBy,
	).Scan(&schedule.ID, &schedule.CreatedAt)
}

func (r *scheduleRepository) ListWindow(ctx context.Context, orgID string, start, end time.Time) ([]domain.Schedule, error) {
	const query = `
        SELECT id, org_id, title, start_ts, end_ts, user_id, created_by, created_at
        FROM schedules
        WHERE org_id=$1 AND start_ts >= $2 AND end_ts <= $3
        ORDER BY start_ts ASC`

	rows, err := r.pool.Query(ctx, query, orgID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSchedules(rows)
}

func scanSchedules(rows pgx.Rows) ([]domain.Schedule, error) {
	var result []domain.Schedule
	for rows.Next() {
		var schedule domain.Schedule
		if err := rows.Scan(
			&schedule.ID,
			&schedule.OrgID,
			&schedule.Title,
			&schedule.StartTS,
			&schedule.EndTS,
			&schedule.UserID,
			&schedule.CreatedBy,
			&schedule.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, schedule)
	}
	return result, rows.Err()
}
