package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/repository"
)

// SchedulingJobRepository implements repository.SchedulingJobRepository
// for PostgreSQL.
type SchedulingJobRepository struct {
	db querier
}

// NewSchedulingJobRepository creates a new SchedulingJobRepository.
func NewSchedulingJobRepository(db querier) *SchedulingJobRepository {
	return &SchedulingJobRepository{db: db}
}

// Create inserts a new scheduling job with the status and status message
// it carries; callers set PENDING.
func (r *SchedulingJobRepository) Create(ctx context.Context, job *domain.SchedulingJob) error {
	query := `
		INSERT INTO scheduling_jobs (name, start_date, end_date, status, status_message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		job.Name, job.StartDate, job.EndDate, job.Status, job.StatusMessage,
	).Scan(&job.ID, &job.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create scheduling job: %w", err)
	}

	return nil
}

// GetByID retrieves a scheduling job by ID.
func (r *SchedulingJobRepository) GetByID(ctx context.Context, id int) (*domain.SchedulingJob, error) {
	query := `
		SELECT id, name, start_date, end_date, status, status_message, created_at
		FROM scheduling_jobs WHERE id = $1
	`

	var job domain.SchedulingJob
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID, &job.Name, &job.StartDate, &job.EndDate,
		&job.Status, &job.StatusMessage, &job.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &repository.NotFoundError{ResourceType: "SchedulingJob", ResourceID: fmt.Sprintf("%d", id)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduling job: %w", err)
	}

	return &job, nil
}

// GetAll retrieves every scheduling job, most recent first.
func (r *SchedulingJobRepository) GetAll(ctx context.Context) ([]domain.SchedulingJob, error) {
	query := `
		SELECT id, name, start_date, end_date, status, status_message, created_at
		FROM scheduling_jobs ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduling jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.SchedulingJob
	for rows.Next() {
		var job domain.SchedulingJob
		if err := rows.Scan(
			&job.ID, &job.Name, &job.StartDate, &job.EndDate,
			&job.Status, &job.StatusMessage, &job.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan scheduling job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scheduling jobs: %w", err)
	}

	return jobs, nil
}

// Update persists a scheduling job's mutable fields, principally the
// Status/StatusMessage lifecycle pair.
func (r *SchedulingJobRepository) Update(ctx context.Context, job *domain.SchedulingJob) error {
	query := `
		UPDATE scheduling_jobs
		SET name = $2, start_date = $3, end_date = $4, status = $5, status_message = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		job.ID, job.Name, job.StartDate, job.EndDate, job.Status, job.StatusMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to update scheduling job: %w", err)
	}

	return requireRowsAffected(result, "SchedulingJob", fmt.Sprintf("%d", job.ID))
}

// Delete removes a scheduling job.
func (r *SchedulingJobRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM scheduling_jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scheduling job: %w", err)
	}

	return requireRowsAffected(result, "SchedulingJob", fmt.Sprintf("%d", id))
}

// Count returns the total number of scheduling jobs.
func (r *SchedulingJobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scheduling_jobs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count scheduling jobs: %w", err)
	}
	return count, nil
}
