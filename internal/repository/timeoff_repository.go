package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/shift-scheduler/internal/domain"
)

// TimeOffRepository encapsulates time-off request persistence, always
// scoped by organization id.
type TimeOffRepository interface {
	Create(ctx context.Context, request *domain.TimeOffRequest) error
	ListByOrg(ctx context.Context, orgID string) ([]domain.TimeOffRequest, error)
	UpdateStatus(ctx context.Context, orgID, id string, status domain.TimeOffStatus) error
}

type timeOffRepository struct {
	pool *pgxpool.Pool
}

// NewTimeOffRepository instantiates the repository.
func NewTimeOffRepository(pool *pgxpool.Pool) TimeOffRepository {
	return &timeOffRepository{pool: pool}
}

func (r *timeOffRepository) Create(ctx context.Context, request *domain.TimeOffRequest) error {
	const query = `
        INSERT INTO time_off_requests (org_id, user_id, start_date, end_date, reason, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		request.OrgID,
		request.UserID,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt)
}

func (r *timeOffRepository) ListByOrg(ctx context.Context, orgID string) ([]domain.TimeOffRequest, error) {
	const query = `
        SELECT id, org_id, user_id, start_date, end_date, reason, status, created_at
        FROM time_off_requests
        WHERE org_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TimeOffRequest
	for rows.Next() {
		var request domain.TimeOffRequest
		if err := rows.Scan(
			&request.ID,
			&request.OrgID,
			&request.UserID,
			&request.StartDate,
			&request.EndDate,
			&request.Reason,
			&request.Status,
			&request.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}

func (r *timeOffRepository) UpdateStatus(ctx context.Context, orgID, id string, status domain.TimeOffStatus) error {
	const query = `
        UPDATE time_off_requests SET status=$1
        WHERE id=$2 AND org_id=$3`
	cmd, err := r.pool.Exec(ctx, query, status, id, orgID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
